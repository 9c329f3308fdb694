package classifier

import (
	"context"
	"fmt"
	"io"

	"github.com/example/freshpos/internal/core/resolver"
)

// UnavailableAdapter implements secondary.Classifier when no scorer is
// configured. Every call errors, which the checkout degrades to its
// fallback resolution; doctor reports the missing configuration.
type UnavailableAdapter struct{}

// NewUnavailableAdapter creates the no-scorer classifier.
func NewUnavailableAdapter() *UnavailableAdapter {
	return &UnavailableAdapter{}
}

// Classify always fails with a configuration hint.
func (a *UnavailableAdapter) Classify(ctx context.Context, r io.Reader) ([]resolver.Prediction, error) {
	return nil, fmt.Errorf("no classifier command configured; set classifier_command in .freshpos/config.json")
}
