// Package response provides the HTTP response helpers of the rating service.
// Rating endpoints answer with the bare rating mapping that clients expect.
// Every other answer, failures included, uses the data/error envelope.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/agentstation/tripmap/pkg/errors"
)

// Response is the envelope used for health and error answers.
type Response struct {
	Data  any    `json:"data"`
	Error *Error `json:"error"`
}

// Error represents an API error with code, message, and optional details.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Success wraps data in the envelope.
func Success(data any) Response {
	return Response{Data: data}
}

// Fail creates an error envelope.
func Fail(code, message, details string) Response {
	return Response{
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes an enveloped response with the given status code.
func JSON(w http.ResponseWriter, status int, resp Response) {
	Raw(w, status, resp)
}

// Raw writes v as JSON without the envelope.
func Raw(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// headers are already sent, nothing useful to do on failure
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success(data))
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadRequest, Fail("BAD_REQUEST", message, details))
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusUnauthorized, Fail("UNAUTHORIZED", message, details))
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, details))
}

// MethodNotAllowed writes a 405 error response.
func MethodNotAllowed(w http.ResponseWriter, method string) {
	JSON(w, http.StatusMethodNotAllowed, Fail(
		"METHOD_NOT_ALLOWED",
		"Method not allowed",
		"Method "+method+" is not supported for this endpoint",
	))
}

// RequestTooLarge writes a 413 error response.
func RequestTooLarge(w http.ResponseWriter, limit int64) {
	JSON(w, http.StatusRequestEntityTooLarge, Fail(
		"REQUEST_TOO_LARGE",
		"Request body too large",
		"Bodies are limited to "+humanize.IBytes(uint64(limit)),
	))
}

// InternalError writes a 500 error response without exposing err.
func InternalError(w http.ResponseWriter, _ error) {
	JSON(w, http.StatusInternalServerError, Fail(
		"INTERNAL_ERROR",
		"Internal server error",
		"An unexpected error occurred",
	))
}

// ErrorFromType maps typed errors to appropriate HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	var (
		notFound   *errors.NotFoundError
		validation *errors.ValidationError
		parse      *errors.ParseError
	)
	switch {
	case errors.As(err, &notFound):
		NotFound(w, notFound.Error(), "")
	case errors.As(err, &validation):
		BadRequest(w, validation.Error(), "")
	case errors.As(err, &parse):
		BadRequest(w, "Malformed request body", parse.Message)
	default:
		InternalError(w, err)
	}
}
