package imageeditor

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	pngMimeType = "image/png"
	maxSide     = 1024
)

var ErrUndecodableImage = errors.New("image could not be decoded")

// normalize decodes any supported format, bounds it to maxSide and
// re-encodes it as PNG.
func normalize(data []byte) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	return encode(bound(img))
}

// mockEdit approximates an edit locally from keywords in the instruction.
func mockEdit(data []byte, instruction string) ([]byte, error) {
	img, err := decode(data)
	if err != nil {
		return nil, err
	}
	img = bound(img)

	var out image.Image = img
	switch p := strings.ToLower(instruction); {
	case strings.Contains(p, "black and white"), strings.Contains(p, "grayscale"), strings.Contains(p, "greyscale"), strings.Contains(p, "retro"):
		out = imaging.Grayscale(img)
	case strings.Contains(p, "invert"), strings.Contains(p, "negative"):
		out = imaging.Invert(img)
	case strings.Contains(p, "blur"), strings.Contains(p, "soft"):
		out = imaging.Blur(img, 2.5)
	case strings.Contains(p, "flip"), strings.Contains(p, "mirror"):
		out = imaging.FlipH(img)
	case strings.Contains(p, "bright"):
		out = imaging.AdjustBrightness(img, 20)
	default:
		out = imaging.Sharpen(imaging.AdjustSaturation(img, 25), 0.5)
	}
	return encode(out)
}

func decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodableImage, err)
	}
	return img, nil
}

func bound(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxSide && b.Dy() <= maxSide {
		return img
	}
	return imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)
}

func encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
