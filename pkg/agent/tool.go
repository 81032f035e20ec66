package agent

import "context"

// ToolSpec describes a callable capability exposed to the model.
type ToolSpec struct {
	Name        string
	Description string
}

// ToolRequest carries the input for a single tool invocation. Every tool in
// this runtime takes a single string and returns a single string observation.
type ToolRequest struct {
	SessionID string
	Input     string
}

// ToolResponse is the result of a tool invocation.
type ToolResponse struct {
	Content  string
	Metadata map[string]string
}

// Tool is a named, invocable capability with a string-in/string-out contract.
type Tool interface {
	Spec() ToolSpec
	Invoke(ctx context.Context, req ToolRequest) (ToolResponse, error)
}
