package controllers

import (
	"medicine-shop/models"
	"medicine-shop/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{authService: services.NewAuthService()}
}

// Register godoc
// @Summary Register new user
// @Description Register a new customer account
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Register Request"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := ctrl.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Registration successful", "data": result})
}

// Login godoc
// @Summary User login
// @Description Login with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	result, err := ctrl.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(401, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Login successful", "data": result})
}

// GetMe godoc
// @Summary Get current user
// @Description Get the authenticated user's account
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /auth/me [get]
func (ctrl *AuthController) GetMe(c *gin.Context) {
	userID := c.GetInt("user_id")

	user, err := ctrl.authService.GetMe(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "data": user})
}

// UpdateDetails godoc
// @Summary Update account details
// @Description Update name, email, and shipping address
// @Tags Authentication
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.UpdateDetailsRequest true "Update Request"
// @Success 200 {object} models.Response
// @Router /auth/updatedetails [put]
func (ctrl *AuthController) UpdateDetails(c *gin.Context) {
	userID := c.GetInt("user_id")

	var req models.UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := ctrl.authService.UpdateDetails(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Details updated", "data": user})
}
