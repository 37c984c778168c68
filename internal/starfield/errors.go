package starfield

import "fmt"

// ConfigurationError reports a configuration that cannot produce a map.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("starfield: invalid %s: %s", e.Field, e.Reason)
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// AssetLookupError reports a tile variant that does not resolve to an entry in
// its density's asset pool. It is never fatal: placement substitutes the first
// dense asset.
type AssetLookupError struct {
	Index    int
	Density  Density
	Variant  int
	PoolSize int
}

func (e *AssetLookupError) Error() string {
	return fmt.Sprintf("starfield: tile %d: %s variant %d outside pool of %d", e.Index, e.Density, e.Variant, e.PoolSize)
}
