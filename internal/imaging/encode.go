package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// PNGMimeType is the only output format produced by the encoder.
const PNGMimeType = "image/png"

// EncodePNG writes buf to w as PNG.
func EncodePNG(w io.Writer, buf *PixelBuffer) error {
	if buf == nil {
		return &ImageError{Op: "encode", Kind: ErrEncode}
	}
	if err := imaging.Encode(w, buf.img, imaging.PNG); err != nil {
		return encodeError(err)
	}
	return nil
}

// EncodeDataURI serializes buf as "data:image/png;base64,<...>".
func EncodeDataURI(buf *PixelBuffer) (string, error) {
	var out bytes.Buffer
	if err := EncodePNG(&out, buf); err != nil {
		return "", err
	}
	return "data:" + PNGMimeType + ";base64," + base64.StdEncoding.EncodeToString(out.Bytes()), nil
}

// Save writes buf to path as PNG. Any other extension is rejected with
// ErrEncode so a ".jpg" path never produces a lossy file.
func Save(buf *PixelBuffer, path string) error {
	if buf == nil {
		return &ImageError{Op: "save", Kind: ErrEncode}
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		return &ImageError{Op: "save", Kind: ErrEncode, Err: fmt.Errorf("output %q must have a .png extension", path)}
	}
	if err := imaging.Save(buf.img, path); err != nil {
		return &ImageError{Op: "save", Kind: ErrEncode, Err: err}
	}
	return nil
}
