package handlers

import (
	"net/http"

	"github.com/devpals/devpals-go/internal/apperr"
	"github.com/devpals/devpals-go/pkg/response"
	"github.com/gin-gonic/gin"
)

// writeError maps a service error to its HTTP status via the error kind.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindForbidden:
		status = http.StatusForbidden
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindBadRequest:
		status = http.StatusBadRequest
	}
	c.JSON(status, response.ErrorResponse{Error: err.Error()})
}
