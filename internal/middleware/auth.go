package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smartq-app/booking-api/internal/config"
	"github.com/smartq-app/booking-api/internal/httperr"
	"github.com/smartq-app/booking-api/internal/session"
)

const ContextIdentity = "identity"

// AuthMiddleware validates the bearer token and places the caller's
// Identity in the request context. Token claims: sub (email), kind
// (user|vendor|admin), vendorId (vendor accounts only).
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		email, ok1 := claims["sub"].(string)
		kind, ok2 := claims["kind"].(string)
		if !ok1 || !ok2 || !session.Kind(kind).Valid() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		ident := session.Identity{
			Email: email,
			Kind:  session.Kind(kind),
		}
		if vendorID, ok := claims["vendorId"].(float64); ok {
			ident.VendorID = uint(vendorID)
		}

		c.Set(ContextIdentity, ident)
		c.Next()
	}
}

// IdentityFrom extracts the authenticated identity set by AuthMiddleware.
func IdentityFrom(c *gin.Context) (session.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return session.Identity{}, false
	}
	ident, ok := v.(session.Identity)
	return ident, ok
}

// RequireKind rejects callers whose identity kind does not match.
func RequireKind(kind session.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := IdentityFrom(c)
		if !ok || ident.Kind != kind {
			httperr.Forbidden(c, "forbidden", "Not allowed for this account kind.")
			c.Abort()
			return
		}
		c.Next()
	}
}
