package structs

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("no rows in result set")
	ErrNotCustomer  = errors.New("only customers may place orders")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUnauthorized = errors.New("unauthorized")
)

// RemoteCallError wraps a failed call to the upstream marketplace API,
// carrying the server message when one was provided.
type RemoteCallError struct {
	Status int
	Msg    string
}

func (e *RemoteCallError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("upstream returned %d", e.Status)
}
