package middleware

import (
	"net/http"
	"strings"

	"dentalcare-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is where the session token lives for the web UI; API clients may
// send the same token as a Bearer header instead.
const CookieName = "token"

// AuthMiddleware verifies the session JWT before any protected handler runs.
// Expired or invalid sessions get the cookie cleared and a 401; the client
// must re-authenticate.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Authentification requise", nil)
			c.Abort()
			return
		}

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			clearSessionCookie(c)
			utils.APIResponse(c, http.StatusUnauthorized, false, "Session invalide ou expirée", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			clearSessionCookie(c)
			utils.APIResponse(c, http.StatusUnauthorized, false, "Session invalide ou expirée", nil)
			c.Abort()
			return
		}

		// JWT numbers decode as float64
		var userID uint64
		if val, ok := claims["user_id"].(float64); ok {
			userID = uint64(val)
		}

		c.Set("userID", userID)
		c.Set("userEmail", asString(claims["email"]))
		c.Set("userNom", asString(claims["nom"]))
		c.Set("userPrenom", asString(claims["prenom"]))
		c.Set("userRole", asString(claims["role"]))

		c.Next()
	}
}

// extractToken prefers the session cookie, then the Authorization header.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(CookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
