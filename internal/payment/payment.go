package payment

import (
	"context"
	"errors"
	"fmt"
)

// Gateway looks up a single transaction at the payment provider.
type Gateway interface {
	GetTransaction(ctx context.Context, reference string) (*Transaction, error)
}

// ErrNoTransaction is returned when the provider answered 2xx but the body
// holds no transaction record.
var ErrNoTransaction = errors.New("no transaction record in response")

// StatusError is a non-2xx answer from the provider.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("payvessel error: status %d", e.StatusCode)
}
