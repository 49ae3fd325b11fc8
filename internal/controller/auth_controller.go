package controller

import (
	"net/http"

	"luxe-store-api/internal/dto"
	"luxe-store-api/internal/middleware"
	"luxe-store-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Service *service.AuthService
}

func NewAuthController(s *service.AuthService) *AuthController {
	return &AuthController{Service: s}
}

// POST /admin/login — emite la cookie de sesión (httpOnly)
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	// 24hs, httpOnly: el frontend nunca lee el token
	c.SetCookie(middleware.AdminCookie, token, 60*60*24, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged in"})
}

// POST /admin/logout
func (ctl *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.AdminCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /admin/me — para que el dashboard sepa si la sesión sigue viva
func (ctl *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": c.GetString("adminEmail")})
}
