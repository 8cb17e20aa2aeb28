package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/utils"
)

// parseID reads a positive integer path parameter. On failure it writes a
// validation error and returns false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.RespondError(c, utils.NewValidationError("invalid "+param))
		return 0, false
	}
	return uint(id), true
}

// handleServiceError responds locally to not-found errors and hands
// everything else to the centralized error responder.
func handleServiceError(c *gin.Context, err error) {
	var appErr *utils.AppError
	if errors.As(err, &appErr) && appErr.Status == http.StatusNotFound {
		utils.RespondError(c, appErr)
		return
	}
	_ = c.Error(err)
	c.Abort()
}
