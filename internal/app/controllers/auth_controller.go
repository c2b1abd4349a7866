package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/services"
	"github.com/insider-navs/backend/internal/middleware"
)

// AuthController handles the two login flows
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// AdminLogin handles admin username/password login
// @Summary Admin login
// @Description Verifies admin credentials; the response never distinguishes an unknown username from a wrong password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AdminLoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields"
// @Failure 500 {object} dto.ErrorResponse
// @Router /admin/login [post]
func (c *AuthController) AdminLogin(ctx *gin.Context) {
	var req dto.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	resp, err := c.authService.AdminLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !resp.Success {
		c.logger.Warn().Str("username", req.Username).Msg("Failed admin login attempt")
	}

	ctx.JSON(http.StatusOK, resp)
}

// FacultyLogin handles faculty username-only login
// @Summary Faculty login
// @Description Resolves a faculty username (case- and whitespace-insensitive) to its faculty ID
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.FacultyLoginRequest true "Faculty username"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing username"
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty/login [post]
func (c *AuthController) FacultyLogin(ctx *gin.Context) {
	var req dto.FacultyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	resp, err := c.authService.FacultyLogin(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
