package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/menu-service/models"
	"github.com/yeremiapane/menu-service/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB     *gorm.DB
	Tokens *utils.TokenService
}

func NewAuthController(db *gorm.DB, tokens *utils.TokenService) *AuthController {
	return &AuthController{DB: db, Tokens: tokens}
}

// Register creates a new staff account.
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required,max=100"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	if !models.IsValidRole(req.Role) {
		utils.RespondError(c, utils.NewValidationError("role must be one of admin, manager, staff"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     req.Role,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)

	utils.RespondJSON(c, http.StatusCreated, user)
}

// Login verifies credentials and returns a primary and a refresh token.
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.RespondError(c, utils.NewAuthError("Invalid credentials"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.RespondError(c, utils.NewAuthError("Invalid credentials"))
		return
	}

	token, err := ac.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}
	refreshToken, err := ac.Tokens.IssueRefresh(user.ID, user.Role)
	if err != nil {
		_ = c.Error(err)
		c.Abort()
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"token":        token,
		"refreshToken": refreshToken,
		"expiresIn":    int64(ac.Tokens.Expiry().Seconds()),
	})
}

// Refresh exchanges a refresh token for a new primary token. The new token
// carries the subject and role of the verified refresh claims only.
func (ac *AuthController) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.NewValidationError(err.Error()))
		return
	}

	token, err := ac.Tokens.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, utils.ErrTokenInvalid) || errors.Is(err, utils.ErrTokenExpired) {
			utils.RespondError(c, &utils.AppError{
				Status:  http.StatusUnauthorized,
				Code:    "INVALID_REFRESH_TOKEN",
				Message: "Invalid refresh token",
			})
			return
		}
		_ = c.Error(err)
		c.Abort()
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"token":     token,
		"expiresIn": int64(ac.Tokens.Expiry().Seconds()),
	})
}
