package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lukwagoraymond/duzol-pharma/auth"
)

const principalKey = "principal"

// Authenticate validates the bearer token and attaches the principal to
// the request context. Handlers read it back with Principal and pass its
// fields into core operations explicitly.
func Authenticate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		signature := c.GetHeader("Authorization")
		if signature == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}
		signature = strings.TrimPrefix(signature, "Bearer ")

		payload, err := auth.ParseSignature(signature, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}

		c.Set(principalKey, payload)
		c.Next()
	}
}

func Principal(c *gin.Context) (auth.Payload, bool) {
	val, exists := c.Get(principalKey)
	if !exists {
		return auth.Payload{}, false
	}
	payload, ok := val.(auth.Payload)
	return payload, ok
}
