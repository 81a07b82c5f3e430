package imaging

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// CropResult contains the cropped image data
type CropResult struct {
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
}

// Crop extracts a rectangular region from a buffer, optionally rescaled with
// a Lanczos filter. The region is clipped to the buffer first.
func Crop(buf *PixelBuffer, region Rect, scale float64) (*CropResult, error) {
	area := region.Clip(buf.Width(), buf.Height())
	if area.Empty() {
		return nil, fmt.Errorf("crop region %s does not overlap the %dx%d image",
			region, buf.Width(), buf.Height())
	}

	cropped := imaging.Crop(buf.img, area)
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f collapses the crop to nothing", scale)
		}
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	out := &PixelBuffer{img: cropped}
	uri, err := EncodeDataURI(out)
	if err != nil {
		return nil, err
	}

	return &CropResult{
		Width:    out.Width(),
		Height:   out.Height(),
		Image:    uri,
		MimeType: PNGMimeType,
	}, nil
}
