// Package app implements the primary ports. Services own the mutable
// per-session state and orchestrate core logic with the secondary ports.
package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/example/freshpos/internal/core/cart"
	"github.com/example/freshpos/internal/core/checkout"
	"github.com/example/freshpos/internal/core/resolver"
	"github.com/example/freshpos/internal/core/scan"
	"github.com/example/freshpos/internal/ports/primary"
	"github.com/example/freshpos/internal/ports/secondary"
)

// queuedScan is one parked scan input under the queue policy. The
// identity was already marked consumed when the scan was parked, so a
// re-render of the same input stays a duplicate while it waits.
type queuedScan struct {
	kind     scan.SourceKind
	identity string
	data     []byte
}

// CheckoutServiceImpl implements the CheckoutService interface. All
// methods lock the session mutex; each call is one atomic transition.
type CheckoutServiceImpl struct {
	priceRepo   secondary.PriceRepository
	labelSource secondary.LabelSource
	classifier  secondary.Classifier
	thresholds  resolver.Thresholds
	policy      checkout.PendingScanPolicy
	logger      *zap.Logger

	mu          sync.Mutex
	view        checkout.View
	cart        *cart.Cart
	fingerprint scan.Fingerprint
	pending     *checkout.PendingChoice
	edit        *checkout.Edit
	queued      *queuedScan
}

// NewCheckoutService creates a new CheckoutService with injected
// dependencies. A nil logger disables diagnostics.
func NewCheckoutService(
	priceRepo secondary.PriceRepository,
	labelSource secondary.LabelSource,
	classifier secondary.Classifier,
	thresholds resolver.Thresholds,
	policy checkout.PendingScanPolicy,
	logger *zap.Logger,
) *CheckoutServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutServiceImpl{
		priceRepo:   priceRepo,
		labelSource: labelSource,
		classifier:  classifier,
		thresholds:  thresholds,
		policy:      policy,
		logger:      logger,
		view:        checkout.ViewPOS,
		cart:        cart.New(),
	}
}

// Scan feeds one physical scan input through dedup, classification and
// resolution.
func (s *CheckoutServiceImpl) Scan(ctx context.Context, req primary.ScanRequest) (*primary.ScanResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := checkout.CanScan(checkout.ScanContext{
		View:          s.view,
		ChoicePending: s.pending != nil,
		Policy:        s.policy,
	})
	if !guard.Allowed {
		if s.view != checkout.ViewPOS {
			return nil, guard.Error()
		}
		return &primary.ScanResponse{Outcome: primary.OutcomeBlocked, Reason: guard.Reason}, nil
	}

	if !s.fingerprint.ShouldProcess(req.Kind, req.Identity) {
		return &primary.ScanResponse{Outcome: primary.OutcomeDuplicate}, nil
	}
	// Consume the identity before classification runs: a re-render
	// arriving mid-classification must see the input as already handled.
	s.fingerprint.MarkProcessed(req.Kind, req.Identity)

	var data []byte
	if req.Image != nil {
		var err error
		if data, err = io.ReadAll(req.Image); err != nil {
			// Unreadable input degrades like any classifier failure below.
			s.logger.Error("failed to read scan input", zap.String("identity", req.Identity), zap.Error(err))
			data = nil
		}
	}

	if s.pending != nil {
		switch s.policy {
		case checkout.PolicyQueue:
			s.queued = &queuedScan{kind: req.Kind, identity: req.Identity, data: data}
			return &primary.ScanResponse{Outcome: primary.OutcomeQueued}, nil
		case checkout.PolicySupersede:
			s.pending = nil
		}
	}

	return s.processScan(ctx, req.Kind, req.Identity, data), nil
}

// processScan classifies buffered input and applies the resolution.
// Caller holds the mutex.
func (s *CheckoutServiceImpl) processScan(ctx context.Context, kind scan.SourceKind, identity string, data []byte) *primary.ScanResponse {
	labels := s.labels(ctx)

	var res resolver.Resolution
	preds, err := s.classifier.Classify(ctx, bytes.NewReader(data))
	if err != nil {
		// Degraded checkout beats a stalled one: fall back to a default
		// confident pick and surface the failure in the log.
		s.logger.Error("classifier unavailable, degrading to fallback label",
			zap.String("source", string(kind)),
			zap.String("identity", identity),
			zap.Error(err))
		res = resolver.Fallback(labels)
	} else {
		res = resolver.Resolve(preds, labels, s.thresholds)
	}

	if res.Kind == resolver.Ambiguous {
		s.pending = &checkout.PendingChoice{CandidateA: res.CandidateA, CandidateB: res.CandidateB}
		return &primary.ScanResponse{
			Outcome:    primary.OutcomeNeedsChoice,
			CandidateA: res.CandidateA,
			CandidateB: res.CandidateB,
		}
	}

	line := s.insert(ctx, res.Label)
	return &primary.ScanResponse{Outcome: primary.OutcomeAdded, Line: line, Degraded: res.Degraded}
}

// Choose resolves the pending disambiguation with one of its candidates.
func (s *CheckoutServiceImpl) Choose(ctx context.Context, label string) (*primary.ScanResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := checkout.CanChoose(checkout.ChooseContext{View: s.view, Pending: s.pending, Pick: label})
	if !guard.Allowed {
		return nil, guard.Error()
	}

	line := s.insert(ctx, label)
	resp := &primary.ScanResponse{Outcome: primary.OutcomeAdded, Line: line}

	s.drainQueued(ctx)
	return resp, nil
}

// CancelChoice discards the pending disambiguation without adding anything.
func (s *CheckoutServiceImpl) CancelChoice(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return fmt.Errorf("no disambiguation choice is pending")
	}
	s.pending = nil

	s.drainQueued(ctx)
	return nil
}

// drainQueued runs the parked scan, if any, once no choice is pending.
// Its outcome lands in the session state (a new line or a new pending
// choice) and is observable through CartView. Caller holds the mutex.
func (s *CheckoutServiceImpl) drainQueued(ctx context.Context) {
	if s.queued == nil || s.pending != nil {
		return
	}
	q := s.queued
	s.queued = nil
	resp := s.processScan(ctx, q.kind, q.identity, q.data)
	s.logger.Info("processed queued scan",
		zap.String("identity", q.identity),
		zap.String("outcome", string(resp.Outcome)))
}

// AddItem adds a catalog item directly, bypassing the classifier.
func (s *CheckoutServiceImpl) AddItem(ctx context.Context, name string) (*primary.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := checkout.CanAddItem(checkout.AddItemContext{View: s.view, ChoicePending: s.pending != nil})
	if !guard.Allowed {
		return nil, guard.Error()
	}

	return s.insert(ctx, name), nil
}

// insert prices and prepends one line, clearing any in-progress edit
// and any pending choice. Caller holds the mutex.
func (s *CheckoutServiceImpl) insert(ctx context.Context, name string) *primary.CartLine {
	price, err := s.priceRepo.PriceOf(ctx, name)
	if err != nil {
		// A broken pricebook must not block checkout; the item rings up
		// at zero and the failure is logged for reconciliation.
		s.logger.Error("price lookup failed, using zero", zap.String("item", name), zap.Error(err))
		price = decimal.Zero
	}

	item := s.cart.Insert(name, price)
	s.edit = nil
	s.pending = nil

	line := toCartLine(item)
	return &line
}

// RemoveLine deletes a cart line by its stable id. Removing the line
// under edit cancels the edit.
func (s *CheckoutServiceImpl) RemoveLine(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := checkout.CanRemoveLine(checkout.RemoveContext{View: s.view})
	if !guard.Allowed {
		return guard.Error()
	}
	if !s.cart.Remove(id) {
		return fmt.Errorf("line %s not found", id)
	}
	if s.edit != nil && s.edit.LineID == id {
		s.edit = nil
	}
	return nil
}

// StartEdit begins a keypad quantity edit for a line.
func (s *CheckoutServiceImpl) StartEdit(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists := s.cart.Get(id)
	guard := checkout.CanStartEdit(checkout.EditContext{View: s.view, LineExists: exists, LineID: id})
	if !guard.Allowed {
		return guard.Error()
	}

	s.edit = &checkout.Edit{LineID: id}
	return nil
}

// PressDigit appends a digit to the edit buffer.
func (s *CheckoutServiceImpl) PressDigit(ctx context.Context, digit int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return fmt.Errorf("no quantity edit in progress")
	}
	if digit < 0 || digit > 9 {
		return fmt.Errorf("digit must be 0-9, got %d", digit)
	}
	s.edit.Buffer += fmt.Sprintf("%d", digit)
	return nil
}

// Backspace removes the last digit from the edit buffer.
func (s *CheckoutServiceImpl) Backspace(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return fmt.Errorf("no quantity edit in progress")
	}
	if len(s.edit.Buffer) > 0 {
		s.edit.Buffer = s.edit.Buffer[:len(s.edit.Buffer)-1]
	}
	return nil
}

// ConfirmEdit applies the buffered quantity. Invalid input is silently
// ignored (fat-fingered entry must never block checkout); the edit
// state clears either way.
func (s *CheckoutServiceImpl) ConfirmEdit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edit == nil {
		return fmt.Errorf("no quantity edit in progress")
	}

	if qty, ok := cart.ParseQuantity(s.edit.Buffer); ok {
		s.cart.SetQuantity(s.edit.LineID, qty)
	}
	s.edit = nil
	return nil
}

// CancelEdit abandons the edit without applying anything.
func (s *CheckoutServiceImpl) CancelEdit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edit = nil
	return nil
}

// CartView returns a snapshot of the session for rendering.
func (s *CheckoutServiceImpl) CartView(ctx context.Context) (*primary.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.cart.Items()
	view := &primary.CartView{
		View:  string(s.view),
		Lines: make([]primary.CartLine, len(items)),
		Total: s.cart.Total(),
	}
	for i, item := range items {
		view.Lines[i] = toCartLine(item)
	}

	if s.pending != nil {
		view.Pending = &primary.ChoiceView{CandidateA: s.pending.CandidateA, CandidateB: s.pending.CandidateB}
	}
	if s.edit != nil {
		name := ""
		if item, ok := s.cart.Get(s.edit.LineID); ok {
			name = item.Name
		}
		view.Edit = &primary.EditView{LineID: s.edit.LineID, Name: name, Buffer: s.edit.Buffer}
	}

	return view, nil
}

// Pay settles a non-empty cart into a consolidated bill. Settlement
// discards any pending choice, in-progress edit, and queued scan; the
// bill view is read-only until NewOrder.
func (s *CheckoutServiceImpl) Pay(ctx context.Context) (*primary.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	guard := checkout.CanPay(checkout.PayContext{View: s.view, CartEmpty: s.cart.Empty()})
	if !guard.Allowed {
		return nil, guard.Error()
	}

	bill := s.cart.Consolidate()
	s.pending = nil
	s.edit = nil
	s.queued = nil
	s.view = checkout.ViewBill

	out := &primary.Bill{Total: bill.Total, Lines: make([]primary.BillLine, len(bill.Lines))}
	for i, line := range bill.Lines {
		out.Lines[i] = primary.BillLine{
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Qty:       line.Qty,
			LineTotal: line.LineTotal,
		}
	}
	return out, nil
}

// NewOrder resets the session to an empty pos view. Allowed from any
// view; clears cart, pending choice, edit state, queued scan, and scan
// dedup memory.
func (s *CheckoutServiceImpl) NewOrder(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	s.pending = nil
	s.edit = nil
	s.queued = nil
	s.fingerprint.Reset()
	s.view = checkout.ViewPOS
	return nil
}

// labels loads the catalog, degrading to nil on hard failure so label
// mapping falls through to the Unknown sentinel.
func (s *CheckoutServiceImpl) labels(ctx context.Context) []string {
	labels, err := s.labelSource.Labels(ctx)
	if err != nil {
		s.logger.Error("label catalog unavailable", zap.Error(err))
		return nil
	}
	return labels
}

func toCartLine(item cart.LineItem) primary.CartLine {
	return primary.CartLine{
		ID:        item.ID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Qty:       item.Qty,
		LineTotal: item.LineTotal(),
	}
}
