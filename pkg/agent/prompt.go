package agent

import (
	"fmt"
	"strings"
)

const defaultSystemPrompt = "You are a helpful AI assistant. " +
	"Answer the user's question by making use of the available tools. " +
	"Strictly follow the Thought/Action/Action Input/Observation format. " +
	"If you have the final answer, output it in the 'Final Answer:' format."

// BuildPrompt renders the full model prompt from the run state: system
// instructions, the tool catalog, prior chat history, the current user input
// and the scratchpad of completed steps. It is a pure function of its inputs.
func BuildPrompt(systemPrompt string, specs []ToolSpec, state RunState) string {
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = defaultSystemPrompt
	}

	var sb strings.Builder
	sb.Grow(4096)

	sb.WriteString(systemPrompt)

	if len(specs) > 0 {
		names := make([]string, 0, len(specs))
		for _, spec := range specs {
			names = append(names, spec.Name)
		}
		sb.WriteString("\n\nYou have access to the following tools: ")
		sb.WriteString(strings.Join(names, ", "))
		sb.WriteString("\n")
		for _, spec := range specs {
			sb.WriteString(fmt.Sprintf("%s: %s\n", spec.Name, spec.Description))
		}
	}

	if history := renderHistory(state.ChatHistory); history != "" {
		sb.WriteString("\nConversation history:\n")
		sb.WriteString(history)
	}

	sb.WriteString("\nBegin!\n\n")
	sb.WriteString(strings.TrimSpace(state.Input))
	sb.WriteString("\n")

	if scratchpad := renderScratchpad(state.Steps); scratchpad != "" {
		sb.WriteString("\n")
		sb.WriteString(scratchpad)
	}

	return sb.String()
}

// renderScratchpad formats completed steps as alternating Thought/Observation
// lines, preserving insertion order.
func renderScratchpad(steps []Step) string {
	if len(steps) == 0 {
		return ""
	}
	lines := make([]string, 0, len(steps))
	for _, step := range steps {
		lines = append(lines, fmt.Sprintf("Thought: %s\nObservation: %s",
			strings.TrimSpace(step.Action.Log), strings.TrimSpace(step.Observation)))
	}
	return strings.Join(lines, "\n")
}

func renderHistory(history []Message) string {
	if len(history) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, msg := range history {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}
		role := msg.Role
		if role == "" {
			role = "user"
		}
		sb.WriteString(fmt.Sprintf("[%s] %s\n", role, content))
	}
	return sb.String()
}
