package utils

import "github.com/gin-gonic/gin"

// ErrorBody is the payload under the "error" key of every failure response.
type ErrorBody struct {
	Message string      `json:"message"`
	Code    string      `json:"code"`
	Details interface{} `json:"details,omitempty"`
	Stack   string      `json:"stack,omitempty"`
}

func RespondJSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondError(c *gin.Context, appErr *AppError) {
	c.JSON(appErr.Status, gin.H{"error": ErrorBody{
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	}})
}
