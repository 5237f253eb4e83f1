package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var businessStatus = map[string]struct {
	status  int
	message string
}{
	"invalid_time_format": {http.StatusBadRequest, "Times must be zero-padded HH:MM."},
	"invalid_date":        {http.StatusBadRequest, "Date must be YYYY-MM-DD."},
	"invalid_state":       {http.StatusBadRequest, "Event is not in a state that allows this action."},
	"event_not_found":     {http.StatusNotFound, "Event not found."},
}

// Business writes a known business error, or a 500 with fallbackCode when
// err carries no recognised code.
func Business(c *gin.Context, err error, fallbackCode string) {
	if code, ok := AsBusiness(err); ok {
		if m, known := businessStatus[code]; known {
			Write(c, m.status, code, m.message)
			return
		}
	}
	Internal(c, fallbackCode, "Unexpected error.")
}
