package responses

import (
	"errors"

	"farmstand/internal/structs"
)

// FromError maps service errors onto the canned response set. Upstream
// failures keep the remote status and message so the browser can show
// what the backend said.
func FromError(err error) structs.Response {
	var remoteErr *structs.RemoteCallError
	if errors.As(err, &remoteErr) {
		return structs.Response{
			Code:    remoteErr.Status,
			Status:  "error",
			Message: remoteErr.Msg,
		}
	}

	switch {
	case errors.Is(err, structs.ErrNotCustomer):
		return NotCustomer
	case errors.Is(err, structs.ErrEmptyCart):
		return EmptyCart
	case errors.Is(err, structs.ErrNotFound):
		return NotFound
	case errors.Is(err, structs.ErrUnauthorized):
		return Unauthorized
	case errors.Is(err, structs.ErrBadRequest):
		return BadRequest
	}

	return InternalErr
}
