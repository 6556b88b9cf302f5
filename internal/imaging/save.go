package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// DefaultJPEGQuality is used when Save is given a quality outside 1-100.
const DefaultJPEGQuality = 90

// encoderFor picks the encoder for path's extension.
func encoderFor(path string, quality int) (imgio.Encoder, error) {
	if quality < 1 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	switch FormatFromPath(path) {
	case "png":
		return imgio.PNGEncoder(), nil
	case "jpeg":
		return imgio.JPEGEncoder(quality), nil
	case "bmp":
		return func(w io.Writer, img image.Image) error { return bmp.Encode(w, img) }, nil
	case "webp":
		return func(w io.Writer, img image.Image) error { return nativewebp.Encode(w, img, nil) }, nil
	case "tga":
		return tga.Encode, nil
	}
	return nil, fmt.Errorf("unsupported output format %q (use .png, .jpg, .bmp, .webp or .tga)", filepath.Ext(path))
}

// Save writes img to path in the format implied by its extension: PNG,
// JPEG (at quality), BMP, lossless WebP or TGA. Parent directories must exist.
//
// An unsupported extension is reported before any file is created. Create
// and encode failures are *AccessError values.
func Save(img image.Image, path string, quality int) error {
	enc, err := encoderFor(path, quality)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return &AccessError{Op: "create", Path: path, Err: err}
	}
	if err := enc(f, img); err != nil {
		f.Close()
		return &AccessError{Op: "encode", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &AccessError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// EncodePNGBase64 encodes img as PNG and returns it base64-encoded, the form
// in which tool results carry images.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imgio.PNGEncoder()(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
