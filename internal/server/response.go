package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/katalvlaran/hungarian/hungarian"
)

// envelope is the body of every JSON response: code 0 on success, the HTTP
// status otherwise.
type envelope struct {
	Code      int    `json:"code"`
	Msg       string `json:"msg"`
	Data      any    `json:"data,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Code: 0, Msg: "success", Data: data, RequestID: c.GetString(ctxRequestID)})
}

func failure(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, envelope{Code: status, Msg: msg, RequestID: c.GetString(ctxRequestID)})
}

// statusOf maps a solve error to an HTTP status: size limits are 413,
// solver bugs 500, anything else is the caller's input.
func statusOf(err error) int {
	var tooBig *http.MaxBytesError
	switch {
	case errors.As(err, &tooBig), errors.Is(err, hungarian.ErrTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, hungarian.ErrInvariant):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
