package agent

import (
	"regexp"
	"strings"
)

// Action is the model's request to invoke a named tool.
type Action struct {
	Tool  string
	Input string
	// Log keeps the full raw model response the action was parsed from; it is
	// replayed into the scratchpad as the Thought line for this step.
	Log string
}

// Finish is the model's terminal answer.
type Finish struct {
	Output string
	Log    string
}

// Decision is the outcome of one model call: exactly one of Action or Finish
// is set.
type Decision struct {
	Action *Action
	Finish *Finish
}

var (
	actionRe      = regexp.MustCompile(`(?is)Action:\s*(.*?)\n\s*Action Input:\s*(.*)`)
	finalAnswerRe = regexp.MustCompile(`(?is)Final Answer:\s*(.*)`)
)

// ParseDecision turns raw model text into a Decision. An Action/Action Input
// pair wins over a Final Answer. Text matching neither pattern becomes the
// final answer as-is: terminating on malformed output beats looping on it.
// ParseDecision never fails.
func ParseDecision(raw string) Decision {
	if m := actionRe.FindStringSubmatch(raw); m != nil {
		tool := strings.TrimSpace(m[1])
		input := strings.TrimSpace(m[2])
		input = strings.Trim(input, `"`)
		return Decision{Action: &Action{Tool: tool, Input: input, Log: raw}}
	}
	if m := finalAnswerRe.FindStringSubmatch(raw); m != nil {
		return Decision{Finish: &Finish{Output: strings.TrimSpace(m[1]), Log: raw}}
	}
	return Decision{Finish: &Finish{Output: raw, Log: raw}}
}
