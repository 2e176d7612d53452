package serverutils

import (
	"github.com/go-playground/validator/v10"
)

// Response is the JSON envelope every endpoint returns.
type Response[T any] struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) Response[any] {
	return Response[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

var validate = validator.New()

// ValidateRequest runs struct-tag validation on a bound request DTO.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
