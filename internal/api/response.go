// Package api defines the shared JSON envelope used by every handler.
package api

import "github.com/gin-gonic/gin"

// Response is the success envelope. Success is derived from the status
// code so handlers cannot produce an inconsistent pair.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

// ErrorResponse is the failure envelope rendered for every rejected
// request: validation failures, not-found lookups and infra errors alike.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
}

// OK writes a success envelope with the given status code.
func OK(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Response{
		StatusCode: status,
		Success:    status < 400,
		Data:       data,
		Message:    message,
	})
}

// Fail writes a failure envelope with the given status code.
func Fail(c *gin.Context, status int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	c.JSON(status, ErrorResponse{
		StatusCode: status,
		Success:    false,
		Message:    message,
		Errors:     errs,
	})
}

// AbortFail writes a failure envelope and aborts the middleware chain.
func AbortFail(c *gin.Context, status int, message string) {
	c.Abort()
	Fail(c, status, message)
}
