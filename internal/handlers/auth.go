package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukydev/car-maintenance/internal/auth"
	"github.com/ukydev/car-maintenance/internal/db"
	"github.com/ukydev/car-maintenance/internal/middleware"
	"github.com/ukydev/car-maintenance/internal/models"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService    *auth.Service
	userCollection db.UserCollection
	logger         logrus.FieldLogger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, userCollection db.UserCollection, logger logrus.FieldLogger) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		userCollection: userCollection,
		logger:         logger,
	}
}

func (h *AuthHandler) issueTokens(w http.ResponseWriter, status int, user *models.User) {
	token, err := h.authService.GenerateToken(user)
	if err != nil {
		h.logger.WithError(err).Error("failed to generate token")
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	refreshToken, err := h.authService.GenerateRefreshToken(user.ID)
	if err != nil {
		h.logger.WithError(err).Error("failed to generate refresh token")
		writeError(w, http.StatusInternalServerError, "failed to generate refresh token")
		return
	}

	writeJSON(w, status, models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		User:         *user,
	})
}

// Login handles user login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq models.LoginRequest
	if err := decodeJSON(w, r, &loginReq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userCollection.FindUserByUsername(r.Context(), loginReq.Username)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.WithError(err).Error("failed to look up user")
		}
		writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	if !user.IsActive {
		writeError(w, http.StatusUnauthorized, auth.ErrUserInactive.Error())
		return
	}

	if !h.authService.CheckPassword(loginReq.Password, user.PasswordHash) {
		writeError(w, http.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
		return
	}

	if err := h.userCollection.UpdateLastLogin(r.Context(), user.ID); err != nil {
		h.logger.WithError(err).WithField("user_id", user.ID).Warn("failed to update last login")
	}

	h.logger.WithField("user_id", user.ID).Info("user logged in")
	h.issueTokens(w, http.StatusOK, user)
}

// Refresh trades a refresh token for a new token pair. The presented refresh
// token is used up.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh token is required")
		return
	}

	userID, err := h.authService.ConsumeRefreshToken(req.RefreshToken)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := h.userCollection.FindUserByID(r.Context(), userID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			h.logger.WithError(err).Error("failed to look up user")
		}
		writeError(w, http.StatusUnauthorized, auth.ErrUserNotFound.Error())
		return
	}
	if !user.IsActive {
		writeError(w, http.StatusUnauthorized, auth.ErrUserInactive.Error())
		return
	}

	h.issueTokens(w, http.StatusOK, user)
}

// Register handles user registration
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq models.RegisterRequest
	if err := decodeJSON(w, r, &registerReq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	registerReq.Username = strings.TrimSpace(registerReq.Username)
	registerReq.Email = strings.TrimSpace(registerReq.Email)

	if err := h.authService.ValidateRegistration(registerReq); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.userCollection.FindUserByUsername(r.Context(), registerReq.Username); err == nil {
		writeError(w, http.StatusConflict, "username already exists")
		return
	}
	if _, err := h.userCollection.FindUserByEmail(r.Context(), registerReq.Email); err == nil {
		writeError(w, http.StatusConflict, "email already exists")
		return
	}

	passwordHash, err := h.authService.HashPassword(registerReq.Password)
	if err != nil {
		h.logger.WithError(err).Error("failed to hash password")
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	displayName := strings.TrimSpace(registerReq.DisplayName)
	if displayName == "" {
		displayName = registerReq.Username
	}
	user, err := h.userCollection.InsertUser(r.Context(), models.User{
		Username:     registerReq.Username,
		Email:        registerReq.Email,
		PasswordHash: passwordHash,
		DisplayName:  displayName,
	})
	if err != nil {
		h.logger.WithError(err).Error("failed to create user")
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.logger.WithField("user_id", user.ID).Info("user registered")
	h.issueTokens(w, http.StatusCreated, user)
}

// Logout revokes the bearer token of the request and every refresh token of
// its user.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetTokenFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}
	if err := h.authService.Revoke(token); err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if claims, ok := middleware.GetUserFromContext(r.Context()); ok {
		h.authService.DropRefreshTokens(claims.UserID)
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// GetProfile returns the current user's profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "user context not found")
		return
	}

	user, err := h.userCollection.FindUserByID(r.Context(), claims.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, auth.ErrUserNotFound.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}
