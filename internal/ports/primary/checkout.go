// Package primary defines the primary ports (driving interfaces) for the
// application, plus their request/response types.
package primary

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/example/freshpos/internal/core/scan"
)

// CheckoutService defines the primary port for one checkout session:
// scanning, disambiguation, cart editing, settlement, and reset. Every
// method is one atomic state transition.
type CheckoutService interface {
	// Scan feeds one physical scan input through dedup, classification
	// and resolution. Depending on the session state it adds a line,
	// opens a disambiguation choice, queues, blocks, or ignores a
	// duplicate.
	Scan(ctx context.Context, req ScanRequest) (*ScanResponse, error)

	// Choose resolves the pending disambiguation with one of its two
	// candidates and adds that label to the cart.
	Choose(ctx context.Context, label string) (*ScanResponse, error)

	// CancelChoice discards the pending disambiguation without adding
	// anything.
	CancelChoice(ctx context.Context) error

	// AddItem adds a catalog item directly, bypassing the classifier.
	AddItem(ctx context.Context, name string) (*CartLine, error)

	// RemoveLine deletes a cart line by its stable id.
	RemoveLine(ctx context.Context, id string) error

	// StartEdit begins a keypad quantity edit for a line.
	StartEdit(ctx context.Context, id string) error

	// PressDigit appends a digit (0-9) to the edit buffer.
	PressDigit(ctx context.Context, digit int) error

	// Backspace removes the last digit from the edit buffer.
	Backspace(ctx context.Context) error

	// ConfirmEdit applies the buffered quantity. Invalid input leaves
	// the prior quantity unchanged; the edit state always clears.
	ConfirmEdit(ctx context.Context) error

	// CancelEdit abandons the edit without applying anything.
	CancelEdit(ctx context.Context) error

	// CartView returns a snapshot of the session for rendering.
	CartView(ctx context.Context) (*CartView, error)

	// Pay settles a non-empty cart into a consolidated bill and
	// transitions the session to the bill view.
	Pay(ctx context.Context) (*Bill, error)

	// NewOrder resets the session to an empty pos view: cart, pending
	// choice, scan dedup memory, and edit state all clear.
	NewOrder(ctx context.Context) error
}

// ScanRequest carries one physical scan input.
type ScanRequest struct {
	Kind     scan.SourceKind
	Identity string    // upload id or capture hash, stable per input
	Image    io.Reader // raw encoded image bytes
}

// ScanOutcome discriminates what a scan (or choice) did to the session.
type ScanOutcome string

const (
	// OutcomeAdded means a line item was added to the cart.
	OutcomeAdded ScanOutcome = "added"
	// OutcomeNeedsChoice means the scan was ambiguous and a
	// disambiguation choice is now pending.
	OutcomeNeedsChoice ScanOutcome = "needs_choice"
	// OutcomeDuplicate means the input was already processed; nothing
	// changed.
	OutcomeDuplicate ScanOutcome = "duplicate"
	// OutcomeBlocked means the session refused the scan (drop policy
	// while a choice is pending).
	OutcomeBlocked ScanOutcome = "blocked"
	// OutcomeQueued means the scan was parked until the pending choice
	// resolves (queue policy).
	OutcomeQueued ScanOutcome = "queued"
)

// ScanResponse reports what a scan or choice did.
type ScanResponse struct {
	Outcome    ScanOutcome
	Line       *CartLine // set when Outcome is OutcomeAdded
	CandidateA string    // set when Outcome is OutcomeNeedsChoice
	CandidateB string    // set when Outcome is OutcomeNeedsChoice
	Degraded   bool      // true when the classifier failed and the scan fell back
	Reason     string    // set when Outcome is OutcomeBlocked
}

// CartLine is one cart entry as exposed to adapters.
type CartLine struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
	LineTotal decimal.Decimal
}

// ChoiceView describes a pending disambiguation.
type ChoiceView struct {
	CandidateA string
	CandidateB string
}

// EditView describes an in-progress keypad edit.
type EditView struct {
	LineID string
	Name   string
	Buffer string
}

// CartView is a rendering snapshot of the session.
type CartView struct {
	View    string // "pos" or "bill"
	Lines   []CartLine
	Total   decimal.Decimal
	Pending *ChoiceView
	Edit    *EditView
}

// BillLine is one consolidated line on the final bill.
type BillLine struct {
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
	LineTotal decimal.Decimal
}

// Bill is the settled, consolidated receipt.
type Bill struct {
	Lines []BillLine
	Total decimal.Decimal
}
