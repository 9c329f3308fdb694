// Package classifier contains adapter implementations of the classifier
// port: image preprocessing and bridges to scorer backends. The model
// itself lives outside this repository.
package classifier

import (
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// DecodeImage decodes JPEG or PNG bytes into an image.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ResizeSquare scales the image to size x size RGBA, the fixed input
// shape the model expects. Aspect ratio is not preserved; the deployed
// models were trained on squashed squares.
func ResizeSquare(img image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// EncodePNG re-encodes a preprocessed image for transport to an
// external scorer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}
