package delivery

import (
	"log"
	"net/http"
	"strings"

	"postpilot-backend/internal/auth/token"

	"github.com/gin-gonic/gin"
)

// unauthorizedMessage is the single external message for every auth
// failure. Missing header, bad signature, malformed token and expired
// token must be indistinguishable to the client.
const unauthorizedMessage = "invalid or expired token"

// AuthMiddleware verifies the bearer token on a protected route and binds
// the subject id into the request context as "userID".
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			// The precise reason stays server-side.
			log.Printf("[WARN] rejected token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": unauthorizedMessage})
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
