package controllers

import (
	"errors"
	"net/http"

	"gin-accounts/apperrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError is the single place internal failures become HTTP responses.
// Anything outside the taxonomy is a 500 with a generic message; the detail
// stays in the logs.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrAlreadyExists):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
	case errors.Is(err, apperrors.ErrNotAuthenticated):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Wrong email or password"})
	case errors.Is(err, apperrors.ErrTokenExpired):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
	case errors.Is(err, apperrors.ErrInvalidToken):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgInvalidToken})
	default:
		zap.L().Error("Unexpected error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Unexpected error"})
	}
}
