package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Writer writes error bodies. Verbose gates whether the underlying cause of
// a 500 is exposed to the caller.
type Writer struct {
	Verbose bool
}

func (w Writer) Err(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Internal("An internal server error occurred", err)
	}

	body := gin.H{"message": e.Message}
	if len(e.Errors) > 0 {
		body["errors"] = e.Errors
	}
	if e.Detail != "" {
		body["error"] = e.Detail
	}
	if w.Verbose && e.Status == http.StatusInternalServerError && e.cause != nil {
		body["error"] = e.cause.Error()
	}
	c.AbortWithStatusJSON(e.Status, body)
}
