// Package checkout contains the pure session state machine for one
// checkout: the pos/bill lifecycle, the disambiguation choice, and the
// keypad quantity edit. Guards evaluate preconditions without side
// effects; the app layer applies the transitions.
package checkout

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// View is the top-level session view.
type View string

const (
	// ViewPOS is the active scanning/editing view.
	ViewPOS View = "pos"
	// ViewBill is the settled, read-only consolidated view.
	ViewBill View = "bill"
)

// PendingChoice holds the two candidates of an ambiguous scan awaiting
// a human pick. At most one exists at a time.
type PendingChoice struct {
	CandidateA string
	CandidateB string
}

// Matches reports whether the picked label is one of the candidates.
func (p PendingChoice) Matches(label string) bool {
	return label == p.CandidateA || label == p.CandidateB
}

// Edit is an in-progress keypad quantity edit, keyed by the stable line
// id rather than a list position.
type Edit struct {
	LineID string
	Buffer string
}

// PendingScanPolicy decides what happens to a new scan arriving while a
// disambiguation choice is still open.
type PendingScanPolicy string

const (
	// PolicyDrop rejects the new scan until the choice resolves.
	PolicyDrop PendingScanPolicy = "drop"
	// PolicyQueue parks the new scan and runs it after the choice
	// resolves. One slot; the newest scan wins it.
	PolicyQueue PendingScanPolicy = "queue"
	// PolicySupersede cancels the open choice and processes the new
	// scan immediately.
	PolicySupersede PendingScanPolicy = "supersede"
)

// ValidPendingScanPolicy reports whether s names a known policy.
func ValidPendingScanPolicy(s string) bool {
	switch PendingScanPolicy(s) {
	case PolicyDrop, PolicyQueue, PolicySupersede:
		return true
	}
	return false
}

// ScanContext provides context for scan acceptance guards.
type ScanContext struct {
	View          View
	ChoicePending bool
	Policy        PendingScanPolicy
}

// CanScan evaluates whether a new scan may enter the pipeline.
// Rules:
// - View must be pos
// - While a choice is pending, only the supersede policy lets a scan
//   through directly; queue parks it; drop rejects it
func CanScan(ctx ScanContext) GuardResult {
	if ctx.View != ViewPOS {
		return GuardResult{Allowed: false, Reason: "cannot scan while the order is settled; start a new order first"}
	}
	if ctx.ChoicePending && ctx.Policy == PolicyDrop {
		return GuardResult{Allowed: false, Reason: "a disambiguation choice is pending; pick or cancel first"}
	}
	return GuardResult{Allowed: true}
}

// AddItemContext provides context for the manual catalog-button path.
type AddItemContext struct {
	View          View
	ChoicePending bool
}

// CanAddItem evaluates whether a manual catalog add is allowed.
// Rules:
// - View must be pos
// - A pending choice suppresses the catalog-button path
func CanAddItem(ctx AddItemContext) GuardResult {
	if ctx.View != ViewPOS {
		return GuardResult{Allowed: false, Reason: "cannot add items while the order is settled; start a new order first"}
	}
	if ctx.ChoicePending {
		return GuardResult{Allowed: false, Reason: "a disambiguation choice is pending; pick or cancel first"}
	}
	return GuardResult{Allowed: true}
}

// ChooseContext provides context for resolving a pending choice.
type ChooseContext struct {
	View    View
	Pending *PendingChoice
	Pick    string
}

// CanChoose evaluates whether the pick resolves the open choice.
// Rules:
// - View must be pos
// - A choice must be pending
// - The pick must be one of its two candidates
func CanChoose(ctx ChooseContext) GuardResult {
	if ctx.View != ViewPOS {
		return GuardResult{Allowed: false, Reason: "order is already settled"}
	}
	if ctx.Pending == nil {
		return GuardResult{Allowed: false, Reason: "no disambiguation choice is pending"}
	}
	if !ctx.Pending.Matches(ctx.Pick) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("%q is not one of the offered candidates (%s, %s)", ctx.Pick, ctx.Pending.CandidateA, ctx.Pending.CandidateB),
		}
	}
	return GuardResult{Allowed: true}
}

// RemoveContext provides context for deleting a cart line.
type RemoveContext struct {
	View View
}

// CanRemoveLine evaluates whether a cart line may be deleted.
// Rules:
// - View must be pos
func CanRemoveLine(ctx RemoveContext) GuardResult {
	if ctx.View != ViewPOS {
		return GuardResult{Allowed: false, Reason: "order is already settled"}
	}
	return GuardResult{Allowed: true}
}

// PayContext provides context for settling the order.
type PayContext struct {
	View      View
	CartEmpty bool
}

// CanPay evaluates whether the order can settle into a bill.
// Rules:
// - View must be pos
// - Cart must be non-empty
func CanPay(ctx PayContext) GuardResult {
	if ctx.View != ViewPOS {
		return GuardResult{Allowed: false, Reason: "order is already settled"}
	}
	if ctx.CartEmpty {
		return GuardResult{Allowed: false, Reason: "cart is empty"}
	}
	return GuardResult{Allowed: true}
}

// EditContext provides context for starting a keypad edit.
type EditContext struct {
	View       View
	LineExists bool
	LineID     string
}

// CanStartEdit evaluates whether a quantity edit may begin.
// Rules:
// - View must be pos
// - The target line must exist
func CanStartEdit(ctx EditContext) GuardResult {
	if ctx.View != ViewPOS {
		return GuardResult{Allowed: false, Reason: "order is already settled"}
	}
	if !ctx.LineExists {
		return GuardResult{Allowed: false, Reason: fmt.Sprintf("line %s not found", ctx.LineID)}
	}
	return GuardResult{Allowed: true}
}
