// Package handler exposes chart reference resolution over HTTP.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chartref/internal/descriptor"
	"chartref/internal/diagnostic"
)

// Response is the envelope of every API response.
type Response struct {
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      any         `json:"data,omitempty"`
	Errors    []ErrorItem `json:"errors,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// ErrorItem is one validation problem.
type ErrorItem struct {
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// Success writes a 200 response carrying data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{
		Code:      http.StatusOK,
		Message:   "success",
		Data:      data,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Error writes an error response.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, Response{
		Code:      code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// ValidationError writes a 400 response listing errors.
func ValidationError(c *gin.Context, errors []ErrorItem) {
	c.JSON(http.StatusBadRequest, Response{
		Code:      http.StatusBadRequest,
		Message:   "validation failed",
		Errors:    errors,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// bindingError reports a descriptor build failure.
func bindingError(c *gin.Context, err error) {
	var derr *descriptor.Error
	if errors.As(err, &derr) {
		ValidationError(c, errorItems(derr.Diagnostics.Errors))
		return
	}

	Error(c, http.StatusBadRequest, err.Error())
}

func errorItems(ds []diagnostic.Diagnostic) []ErrorItem {
	items := make([]ErrorItem, 0, len(ds))
	for _, d := range ds {
		items = append(items, ErrorItem{Field: d.Field, Code: d.Code, Message: d.Message})
	}

	return items
}
