// Package resolver contains the pure decision logic that turns classifier
// output into either an auto-accepted label or a two-way disambiguation.
// No side effects; callers own logging and cart mutation.
package resolver

// UnknownLabel is used when a classifier index falls outside the catalog.
const UnknownLabel = "Unknown"

// Default decision thresholds. A close second place or a weak absolute
// score both mean the image is plausibly either of two similar products.
const (
	DefaultScoreGap      = 0.40
	DefaultMinConfidence = 0.75
)

// Prediction is one classifier output entry, index-aligned with the
// label catalog.
type Prediction struct {
	Index int
	Score float64
}

// Thresholds holds the confident/ambiguous decision parameters.
type Thresholds struct {
	ScoreGap      float64 // minimum lead over second place
	MinConfidence float64 // minimum absolute top score
}

// DefaultThresholds returns the deployed decision parameters.
func DefaultThresholds() Thresholds {
	return Thresholds{ScoreGap: DefaultScoreGap, MinConfidence: DefaultMinConfidence}
}

// Kind discriminates resolution outcomes.
type Kind int

const (
	// Confident means the top label can be added without confirmation.
	Confident Kind = iota
	// Ambiguous means a human must pick between the top two labels.
	Ambiguous
)

// Resolution is the outcome of resolving one scan.
type Resolution struct {
	Kind       Kind
	Label      string // set when Confident
	CandidateA string // set when Ambiguous, top-1 label
	CandidateB string // set when Ambiguous, top-2 label
	Degraded   bool   // true when produced by Fallback
}

// Resolve applies the decision rule to classifier predictions.
// preds must be sorted descending by score with at least two entries;
// shorter input degrades the same way a failed classifier does.
func Resolve(preds []Prediction, labels []string, th Thresholds) Resolution {
	if len(preds) < 2 {
		return Fallback(labels)
	}

	top, second := preds[0], preds[1]
	if top.Score-second.Score < th.ScoreGap || top.Score < th.MinConfidence {
		return Resolution{
			Kind:       Ambiguous,
			CandidateA: LabelAt(labels, top.Index),
			CandidateB: LabelAt(labels, second.Index),
		}
	}

	return Resolution{Kind: Confident, Label: LabelAt(labels, top.Index)}
}

// Fallback is the degraded resolution used when the classifier or the
// image decode fails: a confident result at catalog index 0, so the
// checkout always completes a scan decisively instead of hanging.
// Callers must log the underlying failure; this is not a business result.
func Fallback(labels []string) Resolution {
	return Resolution{Kind: Confident, Label: LabelAt(labels, 0), Degraded: true}
}

// LabelAt maps a classifier index through the catalog, substituting
// UnknownLabel for anything out of range.
func LabelAt(labels []string, idx int) string {
	if idx < 0 || idx >= len(labels) {
		return UnknownLabel
	}
	return labels[idx]
}
