// Package respond defines the uniform envelope every service operation
// returns. The transport copies Code onto the HTTP status and serializes the
// envelope verbatim; it never interprets the body.
package respond

import "net/http"

// Fixed messages reused across services.
const (
	MsgSuccess          = "Operation successful"
	MsgInternalError    = "Something Bad Happened. Please try again later."
	MsgFailedDependency = "Error occurred while processing the request"
)

// Response wraps every service result, success or failure.
type Response[T any] struct {
	Code         int      `json:"code"`
	IsSuccessful bool     `json:"isSuccessful"`
	Message      string   `json:"message"`
	Data         *T       `json:"data,omitempty"`
	Errors       []string `json:"errors,omitempty"`
}

// PagedResult carries one page of a filtered listing.
type PagedResult[T any] struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalCount int `json:"totalCount"`
	Payload    []T `json:"payload"`
}

// Ok builds a 200 envelope with data.
func Ok[T any](data T) Response[T] {
	return Response[T]{
		Code:         http.StatusOK,
		IsSuccessful: true,
		Message:      MsgSuccess,
		Data:         &data,
	}
}

// Created builds a 201 envelope with data.
func Created[T any](data T, message string) Response[T] {
	if message == "" {
		message = "Created successfully"
	}
	return Response[T]{
		Code:         http.StatusCreated,
		IsSuccessful: true,
		Message:      message,
		Data:         &data,
	}
}

// BadRequest flags caller-supplied data that failed validation.
func BadRequest[T any](message string, errs ...string) Response[T] {
	return failure[T](http.StatusBadRequest, message, errs)
}

// Forbidden flags an actor lacking rights over the target resource.
func Forbidden[T any](message string, errs ...string) Response[T] {
	return failure[T](http.StatusForbidden, message, errs)
}

// NotFound flags a referenced entity that is absent or inactive.
func NotFound[T any](message string, errs ...string) Response[T] {
	return failure[T](http.StatusNotFound, message, errs)
}

// FailedDependency flags a persistence operation that reported failure even
// though business preconditions held.
func FailedDependency[T any](message string, errs ...string) Response[T] {
	return failure[T](http.StatusFailedDependency, message, errs)
}

// InternalServerError flags an unexpected failure. The message must stay
// generic; details belong in server-side logs only.
func InternalServerError[T any](message string, errs ...string) Response[T] {
	return failure[T](http.StatusInternalServerError, message, errs)
}

func failure[T any](code int, message string, errs []string) Response[T] {
	return Response[T]{
		Code:         code,
		IsSuccessful: false,
		Message:      message,
		Errors:       errs,
	}
}
