package controller

import (
	"net/http"
	"strings"

	"backend/auth"
	"backend/customerrors"
	"backend/middleware"
	"backend/model"
	"backend/validator"

	"github.com/Oudwins/zog"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct {
	adminEmail    string
	adminPassword string
	isProduction  bool
}

func NewAuthController(cfg *model.EnvConfig) *AuthController {
	return &AuthController{
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		isProduction:  cfg.Environment == "production",
	}
}

func (ctrl *AuthController) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", ctrl.Login)

		protected := authGroup.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/logout", ctrl.Logout)
			protected.GET("/me", ctrl.GetMe)
		}
	}
}

// Login godoc
// @Summary      Dashboard Login
// @Description  Authenticates the operator via HttpOnly cookie and JWT
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      model.LoginRequest  true  "Login Credentials"
// @Success      200    {object}  model.UserDto
// @Failure      401    {object}  map[string]string
// @Router       /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if issues := zog.Struct(validator.LoginShape).Validate(&req); issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if !strings.EqualFold(req.Email, ctrl.adminEmail) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": customerrors.ErrInvalidLogin.Error()})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(ctrl.adminPassword)), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": customerrors.ErrInvalidLogin.Error()})
		return
	}

	userDto := model.UserDto{Email: ctrl.adminEmail, Role: model.RoleAdmin}
	token, err := auth.GenerateToken(userDto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctrl.setAuthCookie(c, token, 1800)
	c.JSON(http.StatusOK, userDto)
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the authentication cookie
// @Tags         Auth
// @Produce      json
// @Success      200    {object}  map[string]string
// @Router       /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	ctrl.setAuthCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// GetMe godoc
// @Summary      Get Current User
// @Description  Retrieves the authenticated identity from the session
// @Tags         Auth
// @Produce      json
// @Success      200    {object}  model.UserDto
// @Failure      401    {object}  map[string]string
// @Router       /auth/me [get]
func (ctrl *AuthController) GetMe(c *gin.Context) {
	user, ok := middleware.GetUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (ctrl *AuthController) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", token, maxAge, "/", "", ctrl.isProduction, true)
}
