// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// all business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/example/freshpos/internal/ports/primary"
)

// ReceiptAdapter renders the checkout session state as receipt text.
// It depends only on the CheckoutService interface.
type ReceiptAdapter struct {
	service primary.CheckoutService
	out     io.Writer
}

// NewReceiptAdapter creates a new ReceiptAdapter with the given service.
func NewReceiptAdapter(service primary.CheckoutService, out io.Writer) *ReceiptAdapter {
	return &ReceiptAdapter{
		service: service,
		out:     out,
	}
}

// Render prints the current session: pending choice, in-progress edit,
// and the running receipt, newest line first.
func (a *ReceiptAdapter) Render(ctx context.Context) error {
	view, err := a.service.CartView(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if view.Pending != nil {
		warn := color.New(color.FgYellow, color.Bold)
		warn.Fprintln(a.out, "Ambiguous scan - pick one:")
		fmt.Fprintf(a.out, "  [a] %s\n", view.Pending.CandidateA)
		fmt.Fprintf(a.out, "  [b] %s\n", view.Pending.CandidateB)
		fmt.Fprintln(a.out, "  (pick a | pick b | cancel)")
		fmt.Fprintln(a.out)
	}

	if view.Edit != nil {
		buf := view.Edit.Buffer
		if buf == "" {
			buf = "0"
		}
		fmt.Fprintf(a.out, "Editing quantity for %s: [%s]\n", view.Edit.Name, buf)
		fmt.Fprintln(a.out, "  (digits 0-9 | back | ok | esc)")
		fmt.Fprintln(a.out)
	}

	if len(view.Lines) == 0 {
		fmt.Fprintln(a.out, "Cart is empty.")
		return nil
	}

	fmt.Fprintf(a.out, "%-4s %-16s %4s %10s %10s\n", "#", "ITEM", "QTY", "UNIT", "TOTAL")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────")
	for i, line := range view.Lines {
		fmt.Fprintf(a.out, "%-4d %-16s %4d %10s %10s\n",
			i+1, line.Name, line.Qty,
			"€"+line.UnitPrice.StringFixed(2),
			"€"+line.LineTotal.StringFixed(2))
	}
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────")
	total := color.New(color.Bold)
	total.Fprintf(a.out, "%36s %10s\n", "Total:", "€"+view.Total.StringFixed(2))

	return nil
}

// RenderBill prints the settled, consolidated bill.
func (a *ReceiptAdapter) RenderBill(ctx context.Context, bill *primary.Bill) error {
	head := color.New(color.FgGreen, color.Bold)
	head.Fprintln(a.out, "Final Receipt")
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────")
	for _, line := range bill.Lines {
		fmt.Fprintf(a.out, "%-16s (x%d) %24s\n", line.Name, line.Qty, "€"+line.LineTotal.StringFixed(2))
	}
	fmt.Fprintln(a.out, "──────────────────────────────────────────────────")
	fmt.Fprintf(a.out, "Total Paid: €%s\n", bill.Total.StringFixed(2))
	head.Fprintln(a.out, "Payment Successful!")
	return nil
}

// RenderScanOutcome prints what a scan did.
func (a *ReceiptAdapter) RenderScanOutcome(resp *primary.ScanResponse) {
	switch resp.Outcome {
	case primary.OutcomeAdded:
		if resp.Degraded {
			color.New(color.FgRed).Fprintln(a.out, "! classifier unavailable, added fallback item")
		}
		fmt.Fprintf(a.out, "✓ Added %s (€%s)\n", resp.Line.Name, resp.Line.UnitPrice.StringFixed(2))
	case primary.OutcomeNeedsChoice:
		fmt.Fprintf(a.out, "? Ambiguous: %s or %s\n", resp.CandidateA, resp.CandidateB)
	case primary.OutcomeDuplicate:
		fmt.Fprintln(a.out, "Already scanned ✓")
	case primary.OutcomeBlocked:
		fmt.Fprintf(a.out, "Blocked: %s\n", resp.Reason)
	case primary.OutcomeQueued:
		fmt.Fprintln(a.out, "Scan queued until the pending choice resolves")
	}
}
