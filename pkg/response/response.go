package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorItem is one entry of the error envelope. Param is set only for
// validation failures and names the offending field.
type ErrorItem struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorBody is the uniform error shape every consumer depends on:
// {"errors":[{"msg":"..."}, ...]}.
type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}

// OK writes the payload as-is with status 200. Success responses carry no
// wrapper.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Fail writes a single-message error envelope with status 400. Business
// failures (not-found, forbidden, conflicts, store faults) all share this
// status; the message carries the distinction.
func Fail(c *gin.Context, msg string) {
	FailWith(c, http.StatusBadRequest, msg)
}

// FailWith writes a single-message error envelope with an explicit status.
func FailWith(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorBody{Errors: []ErrorItem{{Msg: msg}}})
}

// FieldErrors writes a validation failure, preserving the order of the items.
func FieldErrors(c *gin.Context, items []ErrorItem) {
	c.JSON(http.StatusBadRequest, ErrorBody{Errors: items})
}

// AbortWith writes the envelope and aborts the request; for middleware use.
func AbortWith(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{Errors: []ErrorItem{{Msg: msg}}})
}
