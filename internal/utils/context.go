package utils

import (
	"fmt"

	"github.com/NaniCherry131202/Internship-Task/internal/types"
	"github.com/gin-gonic/gin"
)

// GetCurrentUserID returns the authenticated user's id set by the auth
// middleware.
func GetCurrentUserID(ctx *gin.Context) (string, error) {
	value, exists := ctx.Get(types.ContextUserIDKey)

	if !exists {
		return "", fmt.Errorf("user not authenticated")
	}

	userID, ok := value.(string)

	if !ok || userID == "" {
		return "", fmt.Errorf("invalid user id in context")
	}

	return userID, nil
}
