package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnavailable marks calls made against a client that failed to initialize.
var ErrUnavailable = errors.New("generative client unavailable")

// Unavailable stands in for a client whose construction failed. Every call
// fails with the original construction error.
type Unavailable struct {
	Err error
}

func (u Unavailable) Generate(context.Context, string) (string, error) {
	if u.Err == nil {
		return "", ErrUnavailable
	}
	return "", fmt.Errorf("%w: %w", ErrUnavailable, u.Err)
}
