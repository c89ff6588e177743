package middleware

import (
	"net/http"
	"strings"

	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
)

// ContextEmailKey is where the verified identity's email claim is stored on
// the request context.
const ContextEmailKey = "decodedEmail"

// VerifyJWT validates the Bearer token and attaches the email claim to the
// request context. A missing header is 401; a bad or expired token is 403.
func VerifyJWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Unauthorized access.",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, err := utils.ExtractEmailFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Forbidden access.",
			})
			return
		}

		c.Set(ContextEmailKey, email)
		c.Next()
	}
}
