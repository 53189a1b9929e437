// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/Zevk4/levelup-store/internal/config"
	"github.com/Zevk4/levelup-store/internal/domain/auth"
	"github.com/Zevk4/levelup-store/internal/domain/ui"
	pkgauth "github.com/Zevk4/levelup-store/internal/pkg/auth"
	"github.com/Zevk4/levelup-store/internal/pkg/forms"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authStore  *auth.Store
	modals     *ui.ModalStore
	jwtManager *pkgauth.JWTManager
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authStore *auth.Store, modals *ui.ModalStore, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authStore:  authStore,
		modals:     modals,
		jwtManager: pkgauth.NewJWTManager(cfg),
		config:     cfg,
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	form := forms.New(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	})
	if !form.Validate() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": form.Errors(),
		})
		return
	}

	result := h.authStore.Register(req.Name, req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusConflict, gin.H{
			"error": result.Message,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": result.Message,
	})
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	form := forms.New(map[string]string{
		"email":    req.Email,
		"password": req.Password,
	})
	if !form.Validate() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": form.Errors(),
		})
		return
	}

	result := h.authStore.Login(req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": result.Message,
		})
		return
	}

	accessToken, err := h.jwtManager.GenerateAccessToken(result.User.Name, result.User.Email, result.User.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate access token",
		})
		return
	}

	// A successful sign-in dismisses the login overlay.
	h.modals.CloseLogin()

	c.JSON(http.StatusOK, gin.H{
		"message": result.Message,
		"data": gin.H{
			"user":         result.User,
			"access_token": accessToken,
			"expires_in":   int64(h.config.JWT.AccessTokenExpiry.Seconds()),
		},
	})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authStore.Logout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// GetProfile returns the current signed-in identity
func (h *AuthHandler) GetProfile(c *gin.Context) {
	identity := h.authStore.Current()
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Not signed in",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": identity,
	})
}
