package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"marinedata/auth"
)

// AuthHandlers exposes the authentication endpoints.
type AuthHandlers struct {
	svc *auth.Service
	log *slog.Logger
}

func NewAuthHandlers(svc *auth.Service, log *slog.Logger) *AuthHandlers {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandlers{svc: svc, log: log}
}

// Register handles POST /auth/register.
func (h *AuthHandlers) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields):
			writeError(c, http.StatusBadRequest, "Name, email and password are required")
		case errors.Is(err, auth.ErrDuplicateEmail):
			// Duplicates report 400 rather than 409; existing clients key on it.
			writeError(c, http.StatusBadRequest, "Email already registered")
		case errors.Is(err, auth.ErrInvalidRole):
			writeError(c, http.StatusBadRequest, "Invalid role")
		default:
			h.log.Error("register failed", "err", err)
			writeError(c, http.StatusInternalServerError, genericServerError)
		}
		return
	}

	h.log.Info("user registered", "userID", user.ID)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles POST /auth/login. Unknown emails and wrong passwords produce
// an identical response.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.log.Error("login failed", "err", err)
		writeError(c, http.StatusInternalServerError, genericServerError)
		return
	}

	h.log.Info("user logged in", "userID", result.User.ID)
	c.JSON(http.StatusOK, gin.H{
		"token":     result.Session.Token,
		"user":      result.User,
		"expiresAt": result.Session.ExpiresAt,
	})
}

// Session handles GET /auth/session: it refreshes the caller's claims without
// re-verifying credentials and returns the enriched session view.
func (h *AuthHandlers) Session(c *gin.Context) {
	claims, ok := sessionClaims(c)
	if !ok {
		writeError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	view, err := h.svc.RefreshSession(claims)
	if err != nil {
		h.log.Error("session refresh failed", "err", err)
		writeError(c, http.StatusInternalServerError, genericServerError)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Logout handles POST /auth/logout. Sessions are stateless claims, so
// invalidation is the client discarding its token.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
