package secondary

import "context"

// LabelSource defines the secondary port for the product label catalog.
// The returned slice is index-aligned with the classifier output vector.
type LabelSource interface {
	// Labels returns the ordered product names. Implementations fall
	// back to a built-in default set when the catalog is unavailable.
	Labels(ctx context.Context) ([]string, error)
}
