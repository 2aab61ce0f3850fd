package testutil

import (
	"context"
	"fmt"
)

// FailingSource is a level source whose every read fails with ErrSimulated.
type FailingSource struct{}

// Read always fails.
func (FailingSource) Read(_ context.Context, name string) ([]byte, error) {
	return nil, fmt.Errorf("reading %s: %w", name, ErrSimulated)
}
