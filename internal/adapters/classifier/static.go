package classifier

import (
	"context"
	"fmt"
	"io"

	"github.com/example/freshpos/internal/core/resolver"
)

// StaticAdapter implements secondary.Classifier with a fixed score
// vector. The doctor self-test uses it to exercise the scan pipeline
// without a scorer process; the image bytes still get decoded so input
// problems surface.
type StaticAdapter struct {
	scores []float64
}

// NewStaticAdapter creates a classifier that always answers with the
// given probability vector.
func NewStaticAdapter(scores []float64) *StaticAdapter {
	return &StaticAdapter{scores: scores}
}

// Classify validates the input image and returns the fixed predictions.
func (a *StaticAdapter) Classify(ctx context.Context, r io.Reader) ([]resolver.Prediction, error) {
	if _, err := DecodeImage(r); err != nil {
		return nil, err
	}
	if len(a.scores) < 2 {
		return nil, fmt.Errorf("static classifier needs at least two scores, have %d", len(a.scores))
	}
	return SortedPredictions(a.scores), nil
}
