package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/techagentng/dailyreport/errors"
)

// JSON writes the standard envelope used by every JSON endpoint.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		errMessage = err.Error()
	}
	responsedata := gin.H{
		"message":   message,
		"data":      data,
		"errors":    errMessage,
		"status":    http.StatusText(status),
		"timestamp": time.Now().Format("2006-01-02 15:04:05"),
	}

	c.JSON(status, responsedata)
}

// HandleErrors maps err to its status; anything that is not an *errors.Error becomes a 500
// with no detail exposed.
func HandleErrors(c *gin.Context, err error) {
	status := errors.StatusOf(err)
	if status == http.StatusInternalServerError {
		JSON(c, "", status, nil, errors.ErrInternalServerError)
		return
	}
	JSON(c, "", status, nil, err)
}
