package tools

import (
	"context"
	"testing"

	"github.com/reagent-labs/reagent/pkg/agent"
)

func TestCalculatorEvaluates(t *testing.T) {
	cases := []struct {
		expr string
		want string
	}{
		{"15 * 7 + 23", "128"},
		{"15*7+23", "128"},
		{"2 + 3 * 4", "14"},
		{"(2 + 3) * 4", "20"},
		{"10 / 4", "2.5"},
		{"-3 + 5", "2"},
		{"2 * (3 + (4 - 1))", "12"},
		{"0.1 + 0.4", "0.5"},
		{"7", "7"},
	}

	calc := &CalculatorTool{}
	for _, tc := range cases {
		resp, err := calc.Invoke(context.Background(), agent.ToolRequest{Input: tc.expr})
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.expr, err)
			continue
		}
		if resp.Content != tc.want {
			t.Errorf("%s = %q, want %q", tc.expr, resp.Content, tc.want)
		}
	}
}

func TestCalculatorRejectsForeignCharacters(t *testing.T) {
	calc := &CalculatorTool{}
	for _, expr := range []string{"2 + x", "import os", "1; DROP TABLE users"} {
		resp, err := calc.Invoke(context.Background(), agent.ToolRequest{Input: expr})
		if err != nil {
			t.Errorf("%s: charset rejection should be an observation, got error %v", expr, err)
			continue
		}
		if resp.Content != "Invalid characters in expression" {
			t.Errorf("%s: content = %q", expr, resp.Content)
		}
	}
}

func TestCalculatorErrors(t *testing.T) {
	calc := &CalculatorTool{}
	for _, expr := range []string{"1 / 0", "2 +", "(1 + 2", "", ". + 3", "1 2", "2**3"} {
		if _, err := calc.Invoke(context.Background(), agent.ToolRequest{Input: expr}); err == nil {
			t.Errorf("%q: expected an error", expr)
		}
	}
}
