// Package source loads decoded raster input for the pipeline. Decoding of
// vector formats (SVG/PDF/EPS) is a collaborator concern; this package
// handles the standard raster containers and caches decoded images so
// repeated pipeline runs over the same source skip disk I/O.
package source

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/iconpress/iconpress/internal/raster"
)

// Cache provides thread-safe caching of loaded source images.
//
// Images are stored as straight-alpha NRGBA keyed by the exact path string,
// so relative and absolute paths to the same file occupy separate entries.
// Cached images remain in memory until Evict or Clear; long-running callers
// should clean up once a source is superseded.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*image.NRGBA
}

// NewCache creates an empty source cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*image.NRGBA)}
}

// Load returns the decoded image for path, reading and decoding it on the
// first call and serving the cached copy afterwards.
func (c *Cache) Load(path string) (*image.NRGBA, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	img := raster.ToNRGBA(decoded)

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()
	return img, nil
}

// Evict removes a single cached image.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear removes all cached images.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*image.NRGBA)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}
