package secondary

import (
	"context"
	"io"

	"github.com/example/freshpos/internal/core/resolver"
)

// Classifier defines the secondary port for the image model. The model
// itself (training, weights, runtime) lives outside this repository.
// Implementations own decoding and resizing of the raw bytes; a decode
// failure surfaces the same way a model failure does.
type Classifier interface {
	// Classify scores one encoded image against the label catalog and
	// returns predictions sorted descending by score, index-aligned
	// with the catalog.
	Classify(ctx context.Context, r io.Reader) ([]resolver.Prediction, error)
}
