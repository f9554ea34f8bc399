package auth

import (
	"net/http"
	"strings"

	apperrors "knowledge-saas-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles authentication HTTP endpoints
type AuthHandler struct {
	service   *AuthService
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *AuthService, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{service: service, validator: validator}
}

// RegisterRequest represents the request to register an organization
type RegisterRequest struct {
	OrgName  string `json:"orgName" validate:"required,min=1,max=200"`
	Name     string `json:"name" validate:"required,max=200"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the envelope returned by register and login
type TokenResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Register handles POST /api/auth/register
// @Summary Register a new organization
// @Description Create an organization and its first ADMIN user, returning a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} TokenResponse "Organization created"
// @Failure 400 {object} map[string]interface{} "Invalid request or email in use"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if msg, ok := firstAuthValidationMessage(h.validator.Struct(&req)); ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	result, err := h.service.RegisterOrganization(req.OrgName, req.Name, req.Email, req.Password)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User already exists"})
			return
		}
		logrus.WithError(err).Error("registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to register organization"})
		return
	}

	token, err := h.service.GenerateJWT(result.User)
	if err != nil {
		logrus.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, TokenResponse{
		Success: true,
		Message: "Organization created successfully",
		Token:   token,
	})
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Authenticate an email/password pair and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse "Login successful"
// @Failure 400 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	if msg, ok := firstAuthValidationMessage(h.validator.Struct(&req)); ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": msg})
		return
	}

	user, err := h.service.LoginUser(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		logrus.WithError(err).Error("login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to log in"})
		return
	}

	token, err := h.service.GenerateJWT(user)
	if err != nil {
		logrus.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	})
}

// ValidateTokenRequest represents the request to validate a token
type ValidateTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate a JWT
// @Description Check a token and return its decoded claims
// @Tags auth
// @Accept json
// @Produce json
// @Param body body ValidateTokenRequest true "Token"
// @Success 200 {object} map[string]interface{} "Validation result"
// @Router /auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	var req ValidateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "token is required"})
		return
	}

	claims, err := h.service.ValidateJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "claims": claims})
}

// firstAuthValidationMessage translates the first validator violation on an
// auth request into the message surfaced to the client.
func firstAuthValidationMessage(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "Invalid request body", true
	}

	fe := verrs[0]
	switch {
	case fe.Field() == "OrgName":
		return "orgName is required", true
	case fe.Field() == "Name":
		return "name is required", true
	case fe.Field() == "Email" && fe.Tag() == "required":
		return "email is required", true
	case fe.Field() == "Email":
		return "email must be a valid email address", true
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 6 characters", true
	case fe.Field() == "Password":
		return "password is required", true
	}
	return strings.ToLower(fe.Field()) + " is invalid", true
}
