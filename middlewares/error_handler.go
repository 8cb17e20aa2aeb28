package middlewares

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/menu-service/utils"
)

// ErrorHandler is the centralized error responder. Handlers push errors
// with c.Error instead of writing a response; after the chain finishes the
// last error is logged and rendered as the uniform error body. Typed
// AppError values keep their status and code, anything else becomes a 500.
func ErrorHandler(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		appErr := &utils.AppError{
			Status:  http.StatusInternalServerError,
			Code:    "INTERNAL_ERROR",
			Message: "Internal Server Error",
		}
		var typed *utils.AppError
		if errors.As(err, &typed) {
			appErr = typed
		}

		utils.ErrorLogger.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": appErr.Status,
		}).Error(err.Error())

		if c.Writer.Written() {
			return
		}

		body := utils.ErrorBody{
			Message: appErr.Message,
			Code:    appErr.Code,
			Details: appErr.Details,
		}
		if !production && appErr.Status == http.StatusInternalServerError {
			body.Message = err.Error()
		}
		c.JSON(appErr.Status, gin.H{"error": body})
	}
}

// Recovery turns panics into 500 responses with the uniform body. The stack
// is included in the response only outside production.
func Recovery(production bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.ErrorLogger.WithFields(logrus.Fields{
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
			"status": http.StatusInternalServerError,
		}).Errorf("panic recovered: %v", recovered)

		body := utils.ErrorBody{
			Message: "Internal Server Error",
			Code:    "INTERNAL_ERROR",
		}
		if !production {
			body.Stack = string(debug.Stack())
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": body})
	})
}

// NotFoundHandler answers unmatched routes before the error chain is reached.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": utils.ErrorBody{
			Message: "Route not found",
			Code:    "NOT_FOUND",
		}})
	}
}
