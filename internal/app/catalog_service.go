package app

import (
	"context"
	"fmt"

	"github.com/example/freshpos/internal/ports/secondary"
)

// CatalogServiceImpl implements the CatalogService interface.
type CatalogServiceImpl struct {
	labelSource secondary.LabelSource
}

// NewCatalogService creates a new CatalogService with injected dependencies.
func NewCatalogService(labelSource secondary.LabelSource) *CatalogServiceImpl {
	return &CatalogServiceImpl{labelSource: labelSource}
}

// Labels returns the ordered product names.
func (s *CatalogServiceImpl) Labels(ctx context.Context) ([]string, error) {
	labels, err := s.labelSource.Labels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load label catalog: %w", err)
	}
	return labels, nil
}
