package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blueprint-registry/pkg/jwt"
)

// WalletAuth validates the session token and puts the caller's wallet
// address into the request context. Every mutating registry endpoint sits
// behind this; reads do not.
func WalletAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(401, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(401, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			c.JSON(401, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set("walletAddress", claims.Address)
		c.Next()
	}
}

// CallerAddress reads the authenticated wallet address set by WalletAuth.
func CallerAddress(c *gin.Context) string {
	return c.GetString("walletAddress")
}
