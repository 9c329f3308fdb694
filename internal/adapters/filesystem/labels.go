// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bufio"
	"context"
	"os"
	"strings"
)

// DefaultLabels is the built-in catalog used when no labels file exists.
var DefaultLabels = []string{"Apple", "Banana", "Orange", "Pear", "Peach"}

// LabelFileAdapter implements secondary.LabelSource from a labels file,
// one product name per line, index-aligned with the classifier output.
type LabelFileAdapter struct {
	path string
}

// NewLabelFileAdapter creates a label catalog adapter reading the given file.
func NewLabelFileAdapter(path string) *LabelFileAdapter {
	return &LabelFileAdapter{path: path}
}

// Labels returns the catalog. A missing file falls back to the built-in
// default set; blank lines are skipped, surrounding whitespace trimmed.
func (a *LabelFileAdapter) Labels(ctx context.Context) ([]string, error) {
	f, err := os.Open(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return append([]string(nil), DefaultLabels...), nil
		}
		return nil, err
	}
	defer f.Close()

	var labels []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			labels = append(labels, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(labels) == 0 {
		return append([]string(nil), DefaultLabels...), nil
	}
	return labels, nil
}
