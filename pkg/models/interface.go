package models

import "context"

// Agent is the completion interface the runtime drives. Implementations take
// a fully rendered text prompt and return the model's raw response.
type Agent interface {
	Generate(context.Context, string) (any, error)
}
