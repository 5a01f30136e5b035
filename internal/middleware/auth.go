package middleware

import (
	"net/http"
	"strings"

	"github.com/NaniCherry131202/Internship-Task/internal/auth"
	"github.com/NaniCherry131202/Internship-Task/internal/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenVerifier extracts the user id carried by a session token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware verifies the bearer token and stores the caller's user id
// in the request context. Missing, malformed and expired tokens all produce
// the same 401 response; the distinction is only logged.
func AuthMiddleware(verifier TokenVerifier, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}

		userID, err := verifier.Verify(parts[1])

		if err != nil {
			switch err {
			case auth.ErrTokenExpired:
				logger.Debug("rejected expired token", zap.String("path", ctx.FullPath()))
			case auth.ErrTokenMissing:
				logger.Debug("rejected empty token", zap.String("path", ctx.FullPath()))
			default:
				logger.Debug("rejected invalid token", zap.String("path", ctx.FullPath()))
			}

			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}

		ctx.Set(types.ContextUserIDKey, userID)
		ctx.Next()
	}
}
