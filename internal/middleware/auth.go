package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// contextClaimsKey is the gin context key the verified claims are
// stored under.
const contextClaimsKey = "claims"

// JWTAuth returns middleware that gates a route behind possession of a
// valid signed token.
//
// A missing Authorization header is rejected with 401 before any token
// parsing. When the header is present, the token is taken as its second
// whitespace-delimited segment; the scheme word itself is not validated,
// only position matters. Any verification failure (bad signature,
// malformed token, embedded expiry in the past) is rejected with 403.
// Both rejections are terminal for the request.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "unauthorized access",
			})
			return
		}

		var tokenString string
		if fields := strings.Fields(authHeader); len(fields) >= 2 {
			tokenString = fields[1]
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Forbidden access",
			})
			return
		}

		// Claims are opaque cargo at this layer; downstream handlers
		// decide what, if anything, to read from them.
		c.Set(contextClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the decoded token claims attached by JWTAuth, or
// nil when the route was not gated.
func GetClaims(c *gin.Context) jwt.MapClaims {
	value, ok := c.Get(contextClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := value.(jwt.MapClaims)
	return claims
}
