package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rentory/rentory-api/internal/dto"
	apierrors "github.com/rentory/rentory-api/internal/errors"
	"github.com/rentory/rentory-api/internal/models"
	"github.com/rentory/rentory-api/internal/services"
)

// AuthHandler coordinates signup, registration, and login HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// SignupOwner registers a new property owner.
func (h *AuthHandler) SignupOwner(c *gin.Context) {
	type SignupRequest struct {
		FullName string `json:"full_name" binding:"required,max=120"`
		Phone    string `json:"phone" binding:"required,max=20"`
		Email    string `json:"email" binding:"omitempty,email"`
		Password string `json:"password" binding:"required"`
	}

	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	result, err := h.authService.SignupOwner(services.SignupOwnerInput{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponseDTO{
		AccessToken: result.AccessToken,
		Role:        result.User.Role,
		UserID:      result.User.ID,
	})
}

// RegisterTenant onboards a tenant against the property behind a QR token.
func (h *AuthHandler) RegisterTenant(c *gin.Context) {
	type RegisterRequest struct {
		QRCode    string `json:"qr_code" binding:"required"`
		FullName  string `json:"full_name" binding:"required,max=120"`
		Phone     string `json:"phone" binding:"required,max=20"`
		Email     string `json:"email" binding:"omitempty,email"`
		Password  string `json:"password" binding:"required"`
		Age       *int   `json:"age" binding:"omitempty,gt=0"`
		Documents string `json:"documents"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	result, property, err := h.authService.RegisterTenant(services.RegisterTenantInput{
		QRCode:    req.QRCode,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Email:     req.Email,
		Password:  req.Password,
		Age:       req.Age,
		Documents: req.Documents,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TenantRegistrationDTO{
		AuthResponseDTO: dto.AuthResponseDTO{
			AccessToken: result.AccessToken,
			Role:        result.User.Role,
			UserID:      result.User.ID,
		},
		PropertyID: property.ID,
	})
}

// Login authenticates a user by phone or email.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Identifier string          `json:"identifier" binding:"required,min=3"`
		Password   string          `json:"password" binding:"required"`
		Role       models.UserRole `json:"role" binding:"required,oneof=owner tenant"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
		Role:       req.Role,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponseDTO{
		AccessToken: result.AccessToken,
		Role:        result.User.Role,
		UserID:      result.User.ID,
	})
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrPropertyNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrPhoneTaken),
		errors.Is(err, services.ErrPropertyFull):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateUser):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
