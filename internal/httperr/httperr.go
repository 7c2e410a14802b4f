package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the body of every non-2xx JSON response.
type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// StatusTable maps business codes to HTTP statuses.
type StatusTable map[string]int

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func TooManyRequests(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond writes err using the table. Business errors whose code is not in
// the table and infrastructure errors become a 500 with a generic message;
// the underlying error is attached to the gin context so it can be logged.
func (t StatusTable) Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		if status, ok := t[be.Code]; ok {
			message := be.Message
			if message == "" {
				message = be.Code
			}
			Write(c, status, be.Code, message)
			return
		}
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "unexpected error, please retry")
}
