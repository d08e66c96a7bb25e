package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crmbridge/acrm-cust/internal"
)

// Envelope statuses used across all responses of the gateway.
const (
	StatusOK                  = "OK"
	StatusBadRequest          = "BAD REQUEST"
	StatusUnauthorized        = "UNAUTHORIZED"
	StatusInternalServerError = "INTERNAL SERVER ERROR"
)

// Envelope is the fixed response form of the gateway. Every response,
// success or failure, is shaped like this.
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Body    interface{} `json:"body,omitempty"`
}

// statusText maps an HTTP status code onto the envelope status field.
func statusText(code int) string {
	switch {
	case code < http.StatusBadRequest:
		return StatusOK
	case code == http.StatusUnauthorized:
		return StatusUnauthorized
	case code < http.StatusInternalServerError:
		return StatusBadRequest
	default:
		return StatusInternalServerError
	}
}

// Respond converts a Go value to JSON and sends it to the client with the
// corresponding status code.
func Respond(ctx *gin.Context, data interface{}, statusCode int) error {
	v, ok := internal.DataFromContext(ctx)
	if ok {
		v.StatusCode = statusCode
	}

	// If there is nothing to marshal then set status code and return.
	if data == nil || statusCode == http.StatusNoContent {
		ctx.Status(statusCode)
		return nil
	}

	ctx.JSON(statusCode, data)

	return nil
}

// RespondOK sends a success envelope with the given data payload.
func RespondOK(ctx *gin.Context, data interface{}) error {
	return Respond(ctx, Envelope{Status: StatusOK, Data: data}, http.StatusOK)
}

// RespondError sends an error response back to the client, wrapped in the
// envelope. Expected errors carry their own status code and optionally the
// request body to echo; anything else becomes a generic 500.
func RespondError(ctx *gin.Context, err error) error {
	if webErr, ok := err.(*Error); ok {
		envelope := Envelope{
			Status:  statusText(webErr.Status),
			Message: webErr.Err.Error(),
			Body:    webErr.Body,
		}

		return Respond(ctx, envelope, webErr.Status)
	}

	envelope := Envelope{
		Status:  StatusInternalServerError,
		Message: ErrUnexpected.Error(),
	}

	return Respond(ctx, envelope, http.StatusInternalServerError)
}
