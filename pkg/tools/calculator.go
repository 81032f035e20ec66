// Package tools implements the built-in tool layer: arithmetic, weather
// lookup, SQL execution, file I/O and GitHub REST calls. Every tool takes a
// string input and produces a string observation; failures are reported as
// errors and converted to observation text at the loop boundary.
package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/reagent-labs/reagent/pkg/agent"
)

// CalculatorTool evaluates arithmetic expressions with the usual precedence
// rules. Input is restricted to digits, + - * / . ( ) and spaces.
type CalculatorTool struct{}

func (c *CalculatorTool) Spec() agent.ToolSpec {
	return agent.ToolSpec{
		Name:        "calculate",
		Description: "Evaluate a mathematical expression, e.g. '15 * 7 + 23'. Supports + - * / and parentheses.",
	}
}

func (c *CalculatorTool) Invoke(_ context.Context, req agent.ToolRequest) (agent.ToolResponse, error) {
	expression := strings.TrimSpace(req.Input)
	if expression == "" {
		return agent.ToolResponse{}, fmt.Errorf("empty expression")
	}
	if !validExpressionChars(expression) {
		return agent.ToolResponse{Content: "Invalid characters in expression"}, nil
	}

	p := &exprParser{input: expression}
	result, err := p.parseExpr()
	if err != nil {
		return agent.ToolResponse{}, err
	}
	p.skipSpaces()
	if p.pos != len(p.input) {
		return agent.ToolResponse{}, fmt.Errorf("unexpected %q at position %d", p.input[p.pos], p.pos)
	}

	return agent.ToolResponse{Content: strconv.FormatFloat(result, 'f', -1, 64)}, nil
}

func validExpressionChars(expression string) bool {
	for _, r := range expression {
		switch {
		case r >= '0' && r <= '9':
		case strings.ContainsRune("+-*/.() ", r):
		default:
			return false
		}
	}
	return true
}

// exprParser is a small recursive-descent parser:
//
//	expr    = term { ('+'|'-') term }
//	term    = unary { ('*'|'/') unary }
//	unary   = { '-' | '+' } primary
//	primary = number | '(' expr ')'
type exprParser struct {
	input string
	pos   int
}

func (p *exprParser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, nil
		}
		op := p.input[p.pos]
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *exprParser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		if p.pos >= len(p.input) {
			return left, nil
		}
		op := p.input[p.pos]
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
		} else {
			if math.Abs(right) < 1e-12 {
				return 0, fmt.Errorf("division by zero")
			}
			left /= right
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	p.skipSpaces()
	negative := false
	for p.pos < len(p.input) && (p.input[p.pos] == '-' || p.input[p.pos] == '+') {
		if p.input[p.pos] == '-' {
			negative = !negative
		}
		p.pos++
		p.skipSpaces()
	}
	value, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	if negative {
		value = -value
	}
	return value, nil
}

func (p *exprParser) parsePrimary() (float64, error) {
	p.skipSpaces()
	if p.pos >= len(p.input) {
		return 0, fmt.Errorf("unexpected end of expression")
	}
	if p.input[p.pos] == '(' {
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return 0, fmt.Errorf("missing closing parenthesis")
		}
		p.pos++
		return value, nil
	}

	start := p.pos
	for p.pos < len(p.input) && (p.input[p.pos] >= '0' && p.input[p.pos] <= '9' || p.input[p.pos] == '.') {
		p.pos++
	}
	if start == p.pos {
		return 0, fmt.Errorf("expected a number at position %d", start)
	}
	value, err := strconv.ParseFloat(p.input[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", p.input[start:p.pos])
	}
	return value, nil
}

func (p *exprParser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

var _ agent.Tool = (*CalculatorTool)(nil)
