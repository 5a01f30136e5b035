package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
	"github.com/NaniCherry131202/Internship-Task/internal/service"
	"github.com/NaniCherry131202/Internship-Task/internal/types"
	"github.com/NaniCherry131202/Internship-Task/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountService is the credential store as seen by the HTTP layer.
type AccountService interface {
	Register(ctx context.Context, email, password, name, country string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
}

// TokenIssuer issues session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type AuthHandler struct {
	Accounts AccountService
	Tokens   TokenIssuer
	Logger   *zap.Logger
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Country  string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	user, err := h.Accounts.Register(ctx.Request.Context(), req.Email, req.Password, req.Name, req.Country)

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "User not found")
		return
	}

	token, err := h.Tokens.Issue(user.ID)

	if err != nil {
		h.Logger.Error("failed to issue token", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	h.Logger.Info("user registered", zap.String("user_id", user.ID))

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  types.NewUserResponse(user),
	})
}

func (h *AuthHandler) Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	user, err := h.Accounts.Authenticate(ctx.Request.Context(), req.Email, req.Password)

	if err != nil {
		// Unknown email and wrong password stay distinct in responses for
		// compatibility with existing clients, both under a 401.
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			h.Logger.Info("login for unknown email")
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not found"})
		case errors.Is(err, service.ErrInvalidPassword):
			h.Logger.Info("login with wrong password")
			ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password"})
		default:
			writeServiceError(ctx, h.Logger, err, "User not found")
		}
		return
	}

	token, err := h.Tokens.Issue(user.ID)

	if err != nil {
		h.Logger.Error("failed to issue token", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  types.NewUserResponse(user),
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	user, err := h.Accounts.UserByID(ctx.Request.Context(), userID)

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "User not found")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": types.NewUserResponse(user)})
}
