package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sort"

	"github.com/example/freshpos/internal/core/resolver"
)

// CommandAdapter implements secondary.Classifier by piping the
// preprocessed image to an external scorer process (the model runtime
// is not a Go concern). The scorer reads a PNG on stdin and writes a
// JSON array of per-label probabilities on stdout, index-aligned with
// the label catalog.
type CommandAdapter struct {
	command   string
	args      []string
	inputSize int
}

// NewCommandAdapter creates a classifier bridge to an external scorer.
func NewCommandAdapter(command string, args []string, inputSize int) *CommandAdapter {
	return &CommandAdapter{command: command, args: args, inputSize: inputSize}
}

// Classify preprocesses the image and runs the scorer. Decode, process
// and parse failures all surface as errors; callers degrade to the
// fallback resolution.
func (a *CommandAdapter) Classify(ctx context.Context, r io.Reader) ([]resolver.Prediction, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}

	var stdin bytes.Buffer
	if err := EncodePNG(&stdin, ResizeSquare(img, a.inputSize)); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, a.command, a.args...)
	cmd.Stdin = &stdin

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("scorer %s failed: %w", a.command, err)
	}

	var scores []float64
	if err := json.Unmarshal(out, &scores); err != nil {
		return nil, fmt.Errorf("failed to parse scorer output: %w", err)
	}

	return SortedPredictions(scores), nil
}

// SortedPredictions converts a probability vector into predictions
// sorted descending by score, index-aligned with the catalog.
func SortedPredictions(scores []float64) []resolver.Prediction {
	preds := make([]resolver.Prediction, len(scores))
	for i, s := range scores {
		preds[i] = resolver.Prediction{Index: i, Score: s}
	}
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].Score > preds[j].Score
	})
	return preds
}
