package classifier

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testPNG encodes a small solid image.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))
	return buf.Bytes()
}

func TestDecodeImage(t *testing.T) {
	img, err := DecodeImage(bytes.NewReader(testPNG(t, 10, 6)))
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())
	assert.Equal(t, 6, img.Bounds().Dy())
}

func TestDecodeImageRejectsGarbage(t *testing.T) {
	_, err := DecodeImage(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestResizeSquare(t *testing.T) {
	img, err := DecodeImage(bytes.NewReader(testPNG(t, 10, 6)))
	require.NoError(t, err)

	resized := ResizeSquare(img, 64)
	assert.Equal(t, 64, resized.Bounds().Dx())
	assert.Equal(t, 64, resized.Bounds().Dy())
}

func TestSortedPredictions(t *testing.T) {
	preds := SortedPredictions([]float64{0.1, 0.7, 0.2})

	require.Len(t, preds, 3)
	assert.Equal(t, 1, preds[0].Index)
	assert.Equal(t, 2, preds[1].Index)
	assert.Equal(t, 0, preds[2].Index)
	assert.Equal(t, 0.7, preds[0].Score)
}

func TestSortedPredictionsStableOnTies(t *testing.T) {
	preds := SortedPredictions([]float64{0.5, 0.5})
	assert.Equal(t, 0, preds[0].Index, "ties keep vector order")
	assert.Equal(t, 1, preds[1].Index)
}

func TestStaticAdapter(t *testing.T) {
	ctx := context.Background()
	adapter := NewStaticAdapter([]float64{0.05, 0.90, 0.05})

	preds, err := adapter.Classify(ctx, bytes.NewReader(testPNG(t, 8, 8)))
	require.NoError(t, err)
	assert.Equal(t, 1, preds[0].Index)
}

func TestStaticAdapterRejectsBadImage(t *testing.T) {
	adapter := NewStaticAdapter([]float64{0.5, 0.5})
	_, err := adapter.Classify(context.Background(), strings.NewReader("junk"))
	assert.Error(t, err)
}

func TestStaticAdapterNeedsTwoScores(t *testing.T) {
	adapter := NewStaticAdapter([]float64{1.0})
	_, err := adapter.Classify(context.Background(), bytes.NewReader(testPNG(t, 8, 8)))
	assert.Error(t, err)
}
