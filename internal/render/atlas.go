package render

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// Atlas caches synthesised textures by spec. Eviction is harmless because a
// miss simply re-synthesises the same pixels.
type Atlas struct {
	cache *ristretto.Cache[string, []byte]
}

// NewAtlas allocates an atlas holding up to maxBytes of pixel data.
func NewAtlas(maxBytes int64) (*Atlas, error) {
	if maxBytes <= 0 {
		maxBytes = 16 << 20
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 4096,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("texture cache: %w", err)
	}
	return &Atlas{cache: cache}, nil
}

func (a *Atlas) key(spec TextureSpec) string {
	return fmt.Sprintf("%d|%d|%d|%s", spec.Kind, spec.Density, spec.Size, spec.Asset)
}

// Texture returns the RGBA pixels for spec, synthesising on a miss.
func (a *Atlas) Texture(spec TextureSpec) []byte {
	key := a.key(spec)
	if pix, ok := a.cache.Get(key); ok {
		return pix
	}
	pix := Synthesize(spec)
	a.cache.Set(key, pix, int64(len(pix)))
	a.cache.Wait()
	return pix
}

// Cached reports whether spec is currently held in the cache.
func (a *Atlas) Cached(spec TextureSpec) bool {
	_, ok := a.cache.Get(a.key(spec))
	return ok
}

// Close releases the cache's background goroutines.
func (a *Atlas) Close() { a.cache.Close() }
