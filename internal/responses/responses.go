package responses

import "farmstand/internal/structs"

const (
	UnauthorizedCode = 401
	ForbiddenCode    = 403
)

var (
	Success = structs.Response{
		Code:   200,
		Status: "success",
	}
	BadRequest = structs.Response{
		Code:    400,
		Status:  "error",
		Message: "bad request",
	}
	Unauthorized = structs.Response{
		Code:    UnauthorizedCode,
		Status:  "error",
		Message: "unauthorized",
	}
	Forbidden = structs.Response{
		Code:    ForbiddenCode,
		Status:  "error",
		Message: "forbidden",
	}
	NotFound = structs.Response{
		Code:    404,
		Status:  "error",
		Message: "not found",
	}
	EmptyCart = structs.Response{
		Code:    400,
		Status:  "error",
		Message: "your cart is empty",
	}
	NotCustomer = structs.Response{
		Code:    ForbiddenCode,
		Status:  "error",
		Message: "please login as a customer to place orders",
	}
	InternalErr = structs.Response{
		Code:    500,
		Status:  "error",
		Message: "internal error",
	}
)
