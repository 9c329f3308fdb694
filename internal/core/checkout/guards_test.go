package checkout

import "testing"

func TestCanScan(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ScanContext
		wantAllowed bool
	}{
		{
			name:        "can scan in pos view with nothing pending",
			ctx:         ScanContext{View: ViewPOS, Policy: PolicyDrop},
			wantAllowed: true,
		},
		{
			name:        "cannot scan in bill view",
			ctx:         ScanContext{View: ViewBill, Policy: PolicyDrop},
			wantAllowed: false,
		},
		{
			name:        "drop policy blocks scan while choice pending",
			ctx:         ScanContext{View: ViewPOS, ChoicePending: true, Policy: PolicyDrop},
			wantAllowed: false,
		},
		{
			name:        "queue policy admits scan while choice pending",
			ctx:         ScanContext{View: ViewPOS, ChoicePending: true, Policy: PolicyQueue},
			wantAllowed: true,
		},
		{
			name:        "supersede policy admits scan while choice pending",
			ctx:         ScanContext{View: ViewPOS, ChoicePending: true, Policy: PolicySupersede},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanScan(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (reason %q)", result.Allowed, tt.wantAllowed, result.Reason)
			}
		})
	}
}

func TestCanAddItem(t *testing.T) {
	tests := []struct {
		name        string
		ctx         AddItemContext
		wantAllowed bool
	}{
		{
			name:        "can add in pos view",
			ctx:         AddItemContext{View: ViewPOS},
			wantAllowed: true,
		},
		{
			name:        "pending choice suppresses catalog buttons",
			ctx:         AddItemContext{View: ViewPOS, ChoicePending: true},
			wantAllowed: false,
		},
		{
			name:        "cannot add in bill view",
			ctx:         AddItemContext{View: ViewBill},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanAddItem(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestCanChoose(t *testing.T) {
	pending := &PendingChoice{CandidateA: "AppleA", CandidateB: "AppleB"}

	tests := []struct {
		name        string
		ctx         ChooseContext
		wantAllowed bool
	}{
		{
			name:        "picking candidate A allowed",
			ctx:         ChooseContext{View: ViewPOS, Pending: pending, Pick: "AppleA"},
			wantAllowed: true,
		},
		{
			name:        "picking candidate B allowed",
			ctx:         ChooseContext{View: ViewPOS, Pending: pending, Pick: "AppleB"},
			wantAllowed: true,
		},
		{
			name:        "picking an unoffered label rejected",
			ctx:         ChooseContext{View: ViewPOS, Pending: pending, Pick: "Banana"},
			wantAllowed: false,
		},
		{
			name:        "no pending choice rejected",
			ctx:         ChooseContext{View: ViewPOS, Pending: nil, Pick: "AppleA"},
			wantAllowed: false,
		},
		{
			name:        "settled order rejected even with a valid pick",
			ctx:         ChooseContext{View: ViewBill, Pending: pending, Pick: "AppleA"},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanChoose(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (reason %q)", result.Allowed, tt.wantAllowed, result.Reason)
			}
		})
	}
}

func TestCanRemoveLine(t *testing.T) {
	if result := CanRemoveLine(RemoveContext{View: ViewPOS}); !result.Allowed {
		t.Errorf("Allowed = false in pos view, reason %q", result.Reason)
	}
	if result := CanRemoveLine(RemoveContext{View: ViewBill}); result.Allowed {
		t.Error("Allowed = true in bill view, want false")
	}
}

func TestCanPay(t *testing.T) {
	tests := []struct {
		name        string
		ctx         PayContext
		wantAllowed bool
	}{
		{
			name:        "non-empty cart in pos view settles",
			ctx:         PayContext{View: ViewPOS, CartEmpty: false},
			wantAllowed: true,
		},
		{
			name:        "empty cart cannot settle",
			ctx:         PayContext{View: ViewPOS, CartEmpty: true},
			wantAllowed: false,
		},
		{
			name:        "already settled order cannot settle again",
			ctx:         PayContext{View: ViewBill, CartEmpty: false},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanPay(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestCanStartEdit(t *testing.T) {
	tests := []struct {
		name        string
		ctx         EditContext
		wantAllowed bool
	}{
		{
			name:        "existing line in pos view",
			ctx:         EditContext{View: ViewPOS, LineExists: true, LineID: "l1"},
			wantAllowed: true,
		},
		{
			name:        "missing line rejected",
			ctx:         EditContext{View: ViewPOS, LineExists: false, LineID: "l9"},
			wantAllowed: false,
		},
		{
			name:        "bill view rejected",
			ctx:         EditContext{View: ViewBill, LineExists: true, LineID: "l1"},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanStartEdit(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
		})
	}
}

func TestValidPendingScanPolicy(t *testing.T) {
	for _, valid := range []string{"drop", "queue", "supersede"} {
		if !ValidPendingScanPolicy(valid) {
			t.Errorf("ValidPendingScanPolicy(%q) = false, want true", valid)
		}
	}
	if ValidPendingScanPolicy("defer") {
		t.Error(`ValidPendingScanPolicy("defer") = true, want false`)
	}
}
