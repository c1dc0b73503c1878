package handler

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"github.com/dsci550/haunted-places-backend-go/internal/middleware"
	"github.com/dsci550/haunted-places-backend-go/pkg/response"
)

// AuthHandler exchanges the admin key for a bearer token.
type AuthHandler struct {
	adminKey  string
	jwtSecret string
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminKey, jwtSecret string) *AuthHandler {
	return &AuthHandler{adminKey: adminKey, jwtSecret: jwtSecret}
}

type tokenRequest struct {
	AdminKey string `json:"admin_key" binding:"required"`
}

// CreateToken handles POST /api/v1/auth/token
func (h *AuthHandler) CreateToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing admin_key")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(h.adminKey)) != 1 {
		response.Unauthorized(c, "Invalid admin key")
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret)
	if err != nil {
		response.InternalError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"token": token, "expires_in": int(middleware.TokenTTL.Seconds())})
}
