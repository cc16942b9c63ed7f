package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praveen-sripati/society-backend/internal/error/code"
)

// SuccessResponse is the uniform success envelope
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the uniform failure envelope
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Success sends a 200 envelope
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 envelope
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends the failure envelope for an error code with its canonical message
func Fail(c *gin.Context, errorCode int) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{
		Success: false,
		Error:   code.GetMessage(errorCode),
	})
}

// FailWithMessage sends the failure envelope with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string) {
	c.JSON(code.GetStatus(errorCode), ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// ParamError sends a 400 failure envelope
func ParamError(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrValidation)
	}
	FailWithMessage(c, code.ErrValidation, message)
}

// NotFound sends a 404 failure envelope
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrRecordNotFound)
	}
	FailWithMessage(c, code.ErrRecordNotFound, message)
}

// Forbidden sends a 403 failure envelope
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrForbidden)
	}
	FailWithMessage(c, code.ErrForbidden, message)
}

// ServerError sends a generic 500 failure envelope; internal detail is never
// included in the body.
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown)
}
