package texture

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/breakout3d/internal/logger"
)

// Uploader turns decoded images into GPU texture handles.
type Uploader interface {
	Upload(img *image.RGBA) (uint32, error)
	Delete(id uint32)
}

// Cache deduplicates textures by key. File textures are keyed by path, so two
// models referencing the same image share one GPU texture.
type Cache struct {
	uploader Uploader
	byKey    map[string]uint32
	readFile func(string) ([]byte, error)
}

// NewCache creates an empty cache uploading through u.
func NewCache(u Uploader) *Cache {
	return &Cache{
		uploader: u,
		byKey:    make(map[string]uint32),
		readFile: os.ReadFile,
	}
}

// Len returns the number of distinct textures held.
func (c *Cache) Len() int {
	return len(c.byKey)
}

// Load returns the texture for the image file at path, decoding and
// uploading it on first use.
func (c *Cache) Load(path string) (uint32, error) {
	if id, ok := c.byKey[path]; ok {
		return id, nil
	}
	data, err := c.readFile(path)
	if err != nil {
		return 0, fmt.Errorf("read texture: %w", err)
	}
	return c.LoadBytes(path, data)
}

// LoadBytes is Load for images already in memory, such as ones embedded in a
// model file. key identifies the image for deduplication and format detection.
func (c *Cache) LoadBytes(key string, data []byte) (uint32, error) {
	if id, ok := c.byKey[key]; ok {
		return id, nil
	}
	img, err := Decode(data, key)
	if err != nil {
		return 0, err
	}
	return c.store(key, ToRGBA(img, true))
}

// Solid returns a 1x1 texture of the given color, shared by every caller
// asking for the same color.
func (c *Cache) Solid(col color.RGBA) (uint32, error) {
	key := fmt.Sprintf("solid:#%02x%02x%02x%02x", col.R, col.G, col.B, col.A)
	if id, ok := c.byKey[key]; ok {
		return id, nil
	}
	return c.store(key, Solid(col))
}

func (c *Cache) store(key string, img *image.RGBA) (uint32, error) {
	id, err := c.uploader.Upload(img)
	if err != nil {
		return 0, fmt.Errorf("upload texture %s: %w", key, err)
	}
	c.byKey[key] = id
	logger.Debug("texture loaded",
		zap.String("key", key),
		zap.Uint32("id", id),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return id, nil
}

// Destroy deletes every cached texture.
func (c *Cache) Destroy() {
	for key, id := range c.byKey {
		c.uploader.Delete(id)
		delete(c.byKey, key)
	}
}
