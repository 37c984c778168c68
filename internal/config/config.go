// Package config loads starfield settings from a config file, an optional .env
// file and STARFIELD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"starfield/internal/starfield"
)

// EnvPrefix prefixes every environment override, e.g. STARFIELD_COLUMNS.
const EnvPrefix = "STARFIELD"

// Loader resolves settings. Precedence, highest first: explicit overrides,
// environment, config file, built-in defaults.
type Loader struct {
	// ConfigFile is an optional yaml/toml/json file.
	ConfigFile string
	// EnvFile is loaded into the process environment when present.
	EnvFile string
}

// Load returns the resolved configuration. Missing optional files are not an
// error; unreadable or malformed ones are.
func (l Loader) Load(overrides map[string]string) (starfield.Config, error) {
	if l.EnvFile != "" {
		if err := godotenv.Load(l.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return starfield.Config{}, fmt.Errorf("load %s: %w", l.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if l.ConfigFile != "" {
		v.SetConfigFile(l.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return starfield.Config{}, fmt.Errorf("read config %s: %w", l.ConfigFile, err)
		}
	}

	values := make(map[string]string)
	for _, key := range starfield.Keys() {
		if !v.IsSet(key) {
			continue
		}
		values[key] = flatten(v.Get(key))
	}
	for key, value := range overrides {
		values[key] = value
	}
	return starfield.FromMap(values), nil
}

// flatten turns viper values into the flag-style strings FromMap expects;
// lists become comma-separated.
func flatten(value any) string {
	switch v := value.(type) {
	case []any:
		return strings.Join(cast.ToStringSlice(v), ",")
	case []string:
		return strings.Join(v, ",")
	default:
		return cast.ToString(v)
	}
}
