package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error response shape: {"error": "<message>"}
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse writes the payload as-is with a 200 status
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse writes the payload as-is with a 201 status
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse writes an error body with the given status
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// AppErrorResponse writes an AppError using its own status and message
func AppErrorResponse(c *gin.Context, err *AppError) {
	c.JSON(err.Status, ErrorBody{Error: err.Message})
}

// HandleError maps any error to a response. AppErrors keep their status and
// client-safe message; everything else becomes a generic 500. The process
// always responds, it never lets a request die without a body.
func HandleError(c *gin.Context, err error) {
	if appErr, ok := AsAppError(err); ok {
		AppErrorResponse(c, appErr)
		return
	}
	ErrorResponse(c, http.StatusInternalServerError, "internal server error")
}
