package controllers

import (
	"errors"

	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// render pops the transient flash messages into the template data so every
// page can show them exactly once.
func render(c *gin.Context, status int, name string, data gin.H) {
	errMsg, successMsg := utils.PopFlashes(c)
	if data == nil {
		data = gin.H{}
	}
	data["Error"] = errMsg
	data["Success"] = successMsg
	c.HTML(status, name, data)
}

// flashError translates a service error into a user-facing flash message.
// Unexpected failures are logged server-side and shown as a generic server
// error, never as a raw store error.
func flashError(c *gin.Context, err error, notFoundMsg, constraintMsg string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		utils.SetFlashError(c, err.Error())
	case errors.Is(err, services.ErrNotFound):
		utils.SetFlashError(c, notFoundMsg)
	case errors.Is(err, services.ErrConstraint):
		utils.SetFlashError(c, constraintMsg)
	default:
		zap.L().Error("operation failed", zap.Error(err))
		utils.SetFlashError(c, "Server error, please try again")
	}
}
