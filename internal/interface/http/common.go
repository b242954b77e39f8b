package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/devconnect/devconnect-api/internal/application"
	"github.com/devconnect/devconnect-api/pkg/response"
)

// fail converts an engine outcome into the error envelope. Every business
// failure kind shares status 400; unclassified store faults surface their
// message the same way.
func fail(c *gin.Context, err error) {
	var e *application.Error
	if errors.As(err, &e) {
		response.Fail(c, e.Message)
		return
	}
	response.Fail(c, err.Error())
}
