package expr

import (
	"math"
	"strings"
	"testing"
)

var testVars = map[string]float64{
	"quantity":   100,
	"avgCost":    50,
	"mark":       55,
	"multiplier": 1,
	"feesTotal":  10,
}

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"1 + 2", 3},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"-5 + 2", -3},
		{"--4", 4},
		{"-(2 + 3)", -5},
		{"1.5 * 2", 3},
		{".5 + .25", 0.75},
		{"quantity * (mark - avgCost) - feesTotal", 490},
		{"quantity * mark * multiplier", 5500},
		{"mark - avgCost", 5},
	}
	for _, tt := range tests {
		got, err := Eval(tt.src, testVars)
		if err != nil {
			t.Errorf("Eval(%q): %v", tt.src, err)
			continue
		}
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"unknown variable", "quantity * price"},
		{"illegal character", "quantity ^ 2"},
		{"two dots", "1.2.3"},
		{"trailing garbage", "1 + 2 3"},
		{"unbalanced paren", "(1 + 2"},
		{"dangling operator", "1 +"},
		{"division by zero", "1 / 0"},
		{"zero over zero", "0 / 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Eval(tt.src, testVars); err == nil {
				t.Errorf("Eval(%q): want error", tt.src)
			}
		})
	}
}

func TestEval_SourceLengthCeiling(t *testing.T) {
	src := "1" + strings.Repeat("+1", MaxSourceLen)
	_, err := Eval(src, nil)
	if err == nil || !strings.Contains(err.Error(), "longer") {
		t.Errorf("want length error, got %v", err)
	}

	// Right at the bound is fine.
	at := "1" + strings.Repeat(" ", MaxSourceLen-1)
	if got, err := Eval(at, nil); err != nil || got != 1 {
		t.Errorf("Eval at max length = %v, %v", got, err)
	}
}

func TestEval_NodeCeiling(t *testing.T) {
	// 127 additions fit in 256 bytes but overflow the node ceiling.
	src := "1" + strings.Repeat("+1", 127)
	if len(src) > MaxSourceLen {
		t.Fatalf("test source too long: %d", len(src))
	}
	_, err := Eval(src, nil)
	if err == nil || !strings.Contains(err.Error(), "complex") {
		t.Errorf("want node-count error, got %v", err)
	}
}

func TestEval_DepthCeiling(t *testing.T) {
	src := strings.Repeat("(", 40) + "1" + strings.Repeat(")", 40)
	_, err := Eval(src, nil)
	if err == nil || !strings.Contains(err.Error(), "nested") {
		t.Errorf("want depth error, got %v", err)
	}

	// Modest nesting is fine.
	if got, err := Eval("((((1))))", nil); err != nil || got != 1 {
		t.Errorf("Eval modest nesting = %v, %v", got, err)
	}
}

func TestEval_NoVars(t *testing.T) {
	// nil bindings reject every identifier.
	if _, err := Eval("quantity", nil); err == nil {
		t.Error("want unknown-variable error with nil bindings")
	}
	if got, err := Eval("2*21", nil); err != nil || got != 42 {
		t.Errorf("Eval(2*21) = %v, %v", got, err)
	}
}
