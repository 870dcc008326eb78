package utils

import (
	"os"
	"time"

	"dentalcare-backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the session lifetime; the cookie MaxAge must match.
const TokenTTL = 24 * time.Hour

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dentalcare_secret_key_2024" // fallback when .env is missing
	}
	return []byte(secret)
}

// GenerateToken mints the session JWT carrying the practitioner identity.
func GenerateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"nom":     user.Nom,
		"prenom":  user.Prenom,
		"role":    user.Role,
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// ValidateToken verifies signature and expiry and returns the parsed token.
func ValidateToken(encodedToken string) (*jwt.Token, error) {
	return jwt.Parse(encodedToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret(), nil
	})
}
