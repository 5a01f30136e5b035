package handlers

import (
	"errors"
	"net/http"

	"github.com/NaniCherry131202/Internship-Task/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeServiceError translates service errors into HTTP responses. notFound
// is the resource-specific message for service.ErrNotFound. Unexpected
// errors are logged and answered with a generic message so internal error
// text never reaches the client.
func writeServiceError(ctx *gin.Context, logger *zap.Logger, err error, notFound string) {
	var validation *service.ValidationError

	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": validation.Message})
	case errors.Is(err, service.ErrEmailTaken):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists"})
	case errors.Is(err, service.ErrProjectQuota):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "You can only create up to 4 projects"})
	case errors.Is(err, service.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
	case errors.Is(err, service.ErrTaskNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": "Task not found"})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFound})
	case errors.Is(err, service.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Unauthorized"})
	case errors.Is(err, service.ErrTaskMismatch):
		ctx.JSON(http.StatusForbidden, gin.H{"message": "Task does not belong to this project"})
	default:
		logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
