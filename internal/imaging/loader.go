package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"strings"
	"sync"

	_ "github.com/xfmoulet/qoi"   // Register QOI format decoder
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultMimeType is assumed for payloads that carry no data URI prefix.
const DefaultMimeType = "image/png"

// Payload is an encoded image split out of its transport form.
type Payload struct {
	// MimeType is the declared type from the data URI, or DefaultMimeType.
	MimeType string

	// Data holds the raw encoded image bytes.
	Data []byte
}

// ParsePayload accepts either a data URI ("data:image/png;base64,...") or a
// bare base64 string and returns the raw encoded bytes.
//
// Standard and unpadded base64 alphabets are both accepted. Any failure wraps
// ErrDecode.
func ParsePayload(payload string) (*Payload, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return nil, decodeError(errors.New("empty payload"))
	}

	mimeType := DefaultMimeType
	encoded := payload
	if strings.HasPrefix(payload, "data:") {
		comma := strings.IndexByte(payload, ',')
		if comma < 0 {
			return nil, decodeError(errors.New("data URI has no ',' separator"))
		}
		header := payload[len("data:"):comma]
		params := strings.Split(header, ";")
		if !strings.EqualFold(params[len(params)-1], "base64") {
			return nil, decodeError(fmt.Errorf("data URI %q is not base64 encoded", header))
		}
		if params[0] != "" {
			mimeType = params[0]
		}
		encoded = payload[comma+1:]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if rawErr != nil {
			return nil, decodeError(fmt.Errorf("invalid base64: %w", err))
		}
		data = raw
	}

	return &Payload{MimeType: mimeType, Data: data}, nil
}

// Decode turns a data URI or bare base64 payload into a PixelBuffer.
//
// # Errors
//
//   - Returns an error wrapping ErrDecode if the payload is not valid base64
//   - Returns an error wrapping ErrDecode if the bytes are not a supported image
func Decode(payload string) (*PixelBuffer, error) {
	p, err := ParsePayload(payload)
	if err != nil {
		return nil, err
	}
	buf, _, err := DecodeBytes(p.Data)
	return buf, err
}

// DecodeBytes decodes raw encoded image bytes and reports the detected format
// name ("png", "jpeg", "gif", "webp", "bmp", "tiff" or "qoi").
func DecodeBytes(data []byte) (*PixelBuffer, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", decodeError(err)
	}
	return FromImage(img), format, nil
}

type cachedImage struct {
	img    image.Image
	format string
}

// ImageCache provides thread-safe caching of decoded image files to avoid
// redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Cached
// images are shared and must never be drawn on; LoadBuffer always returns a
// private copy.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
// For long-running processes handling many images, consider periodic cleanup to
// prevent unbounded memory growth.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]cachedImage
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]cachedImage),
	}
}

// Load retrieves an image from the cache or loads it from disk if not cached.
//
// The image is cached using the exact path string provided. Different paths to
// the same file (e.g., relative vs absolute) will result in separate cache
// entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns an error wrapping ErrDecode if the file is not a supported image
func (c *ImageCache) Load(path string) (image.Image, error) {
	entry, err := c.load(path)
	if err != nil {
		return nil, err
	}
	return entry.img, nil
}

// LoadBuffer returns a fresh PixelBuffer for the image at path.
func (c *ImageCache) LoadBuffer(path string) (*PixelBuffer, error) {
	img, err := c.Load(path)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

func (c *ImageCache) load(path string) (cachedImage, error) {
	c.mu.RLock()
	if entry, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return entry, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return cachedImage{}, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return cachedImage{}, decodeError(err)
	}

	entry := cachedImage{img: img, format: format}
	c.mu.Lock()
	c.images[path] = entry
	c.mu.Unlock()

	return entry, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]cachedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// ImageInfo contains metadata about a decoded image.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the decoder that recognised the data, e.g. "png" or "jpeg".
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image has an alpha (transparency) channel.
	HasAlpha bool `json:"has_alpha"`

	// SizeBytes is the size of the encoded image in bytes.
	SizeBytes int64 `json:"size_bytes"`
}

// LoadImageInfo returns metadata for an image file, loading it into the cache.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	entry, err := cache.load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return describe(entry.img, entry.format, stat.Size()), nil
}

// InspectPayload decodes a payload and returns its metadata.
func InspectPayload(payload string) (*ImageInfo, error) {
	p, err := ParsePayload(payload)
	if err != nil {
		return nil, err
	}
	img, format, err := image.Decode(bytes.NewReader(p.Data))
	if err != nil {
		return nil, decodeError(err)
	}
	return describe(img, format, int64(len(p.Data))), nil
}

// describe derives ImageInfo from the decoder's concrete image type:
//   - *image.RGBA64, *image.NRGBA64, *image.Gray16 -> "16-bit"
//   - All other types -> "8-bit"
func describe(img image.Image, format string, size int64) *ImageInfo {
	hasAlpha := false
	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		hasAlpha = true
	case *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
		colorDepth = "16-bit"
	case *image.Gray16:
		colorDepth = "16-bit"
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		ColorDepth: colorDepth,
		HasAlpha:   hasAlpha,
		SizeBytes:  size,
	}
}
