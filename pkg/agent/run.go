package agent

// Message is one prior chat turn carried into the prompt.
type Message struct {
	Role    string
	Content string
}

// Step is one completed loop iteration: the action the model chose and the
// observation its tool produced.
type Step struct {
	Action      Action
	Observation string
}

// RunState is the per-invocation state of the agent loop. It is created fresh
// for every run, mutated only by the runner, and discarded when Run returns.
// Steps is append-only and its order is significant: the scratchpad replays it
// verbatim, so reordering entries changes what the model sees.
type RunState struct {
	Input       string
	ChatHistory []Message
	Steps       []Step
	Outcome     *Decision
}
