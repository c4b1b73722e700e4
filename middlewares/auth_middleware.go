package middlewares

import (
	"net/http"
	"strings"

	"gin-accounts/apperrors"
	"gin-accounts/services"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware resolves the bearer token to a user and stores it in the
// request context. All failures produce the same 401 response.
func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if header == "" || !ok {
			abortInvalidToken(ctx)
			return
		}

		user, err := authService.GetUserFromToken(tokenString)
		if err != nil {
			abortInvalidToken(ctx)
			return
		}

		ctx.Set("user", user)

		ctx.Next()
	}
}

func abortInvalidToken(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.MsgInvalidToken})
}
