package resolver

import "testing"

var labels = []string{"AppleA", "AppleB", "Banana", "Orange"}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		preds []Prediction
		want  Resolution
	}{
		{
			name:  "confident when gap and confidence both clear",
			preds: []Prediction{{Index: 2, Score: 0.90}, {Index: 0, Score: 0.05}},
			want:  Resolution{Kind: Confident, Label: "Banana"},
		},
		{
			name:  "confident at exact boundary values",
			preds: []Prediction{{Index: 0, Score: 0.75}, {Index: 1, Score: 0.35}},
			want:  Resolution{Kind: Confident, Label: "AppleA"},
		},
		{
			name:  "ambiguous when gap too small",
			preds: []Prediction{{Index: 0, Score: 0.80}, {Index: 1, Score: 0.45}},
			want:  Resolution{Kind: Ambiguous, CandidateA: "AppleA", CandidateB: "AppleB"},
		},
		{
			name:  "ambiguous when absolute confidence too low",
			preds: []Prediction{{Index: 3, Score: 0.70}, {Index: 2, Score: 0.10}},
			want:  Resolution{Kind: Ambiguous, CandidateA: "Orange", CandidateB: "Banana"},
		},
		{
			name:  "ambiguous when both conditions fail",
			preds: []Prediction{{Index: 1, Score: 0.50}, {Index: 2, Score: 0.40}},
			want:  Resolution{Kind: Ambiguous, CandidateA: "AppleB", CandidateB: "Banana"},
		},
		{
			name:  "candidate order follows score order",
			preds: []Prediction{{Index: 3, Score: 0.60}, {Index: 0, Score: 0.39}},
			want:  Resolution{Kind: Ambiguous, CandidateA: "Orange", CandidateB: "AppleA"},
		},
		{
			name:  "out of range index maps to Unknown",
			preds: []Prediction{{Index: 9, Score: 0.50}, {Index: 1, Score: 0.45}},
			want:  Resolution{Kind: Ambiguous, CandidateA: "Unknown", CandidateB: "AppleB"},
		},
		{
			name:  "out of range confident index maps to Unknown",
			preds: []Prediction{{Index: 42, Score: 0.99}, {Index: 1, Score: 0.01}},
			want:  Resolution{Kind: Confident, Label: "Unknown"},
		},
		{
			name:  "single prediction degrades to fallback",
			preds: []Prediction{{Index: 2, Score: 0.99}},
			want:  Resolution{Kind: Confident, Label: "AppleA", Degraded: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.preds, labels, DefaultThresholds())
			if got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFallback(t *testing.T) {
	got := Fallback(labels)
	if got.Kind != Confident || got.Label != "AppleA" || !got.Degraded {
		t.Errorf("Fallback() = %+v, want degraded Confident(AppleA)", got)
	}

	empty := Fallback(nil)
	if empty.Label != UnknownLabel {
		t.Errorf("Fallback(nil).Label = %q, want %q", empty.Label, UnknownLabel)
	}
}

func TestLabelAt(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		want string
	}{
		{name: "first label", idx: 0, want: "AppleA"},
		{name: "last label", idx: 3, want: "Orange"},
		{name: "past the end", idx: 4, want: "Unknown"},
		{name: "negative index", idx: -1, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LabelAt(labels, tt.idx); got != tt.want {
				t.Errorf("LabelAt(%d) = %q, want %q", tt.idx, got, tt.want)
			}
		})
	}
}
