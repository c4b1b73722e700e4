package controllers

import (
	"net/http"

	"gin-accounts/apperrors"
	"gin-accounts/dto"
	"gin-accounts/models"
	"gin-accounts/services"

	"github.com/gin-gonic/gin"
)

type IAuthController interface {
	Signup(ctx *gin.Context)
	Verify(ctx *gin.Context)
	Login(ctx *gin.Context)
	CurrentUser(ctx *gin.Context)
}

type AuthController struct {
	service services.IAuthService
}

func NewAuthController(service services.IAuthService) IAuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Signup(ctx *gin.Context) {
	var input dto.SignupInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.service.Signup(input); err != nil {
		respondError(ctx, err)
		return
	}

	// The user object is deliberately not returned: verification is still
	// pending at this point.
	ctx.JSON(http.StatusCreated, gin.H{
		"message": "User created. Check your email to verify the account.",
	})
}

func (c *AuthController) Verify(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		respondError(ctx, apperrors.ErrInvalidToken)
		return
	}

	email, err := c.service.VerifyEmail(token)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Email " + email + " verified successfully"})
}

func (c *AuthController) Login(ctx *gin.Context) {
	var input dto.LoginInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token})
}

// CurrentUser returns the identity resolved by the auth middleware.
func (c *AuthController) CurrentUser(ctx *gin.Context) {
	user, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user.(*models.User)))
}
