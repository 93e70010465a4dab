package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles password sign-in and the current-user endpoint.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// RegisterAuthRoutes sets up the public sign-in routes on rg. loginLimit guards
// the password endpoint.
func RegisterAuthRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.TokenService)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.login)
	}
	registerGoogleOAuthRoutes(auth, services)
}

// registerMeRoute exposes the authenticated user's own profile.
func registerMeRoute(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := newAuthHandler(us, nil)
	rg.GET("/users/me", h.getMe)
}

// login godoc
// @Summary User login
// @Description Authenticates an active user by email and password and returns a JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Rejected login attempt", slog.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
			return
		}
		respondWithError(c, logger, err, "Failed to sign in")
		return
	}

	token, expiresAt, err := h.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	if err := h.userService.RecordLogin(ctx, user, "password"); err != nil {
		logger.Warn("Login succeeded but could not be recorded", slog.String("error", err.Error()))
	}

	logger.Info("User signed in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt, User: dto.ToUserResponse(user)})
}

// getMe godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags users
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/me [get]
func (h *authHandler) getMe(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
