package llm

import "context"

// Client sends a single prompt to a text-generation service and returns the
// plain-text response.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
