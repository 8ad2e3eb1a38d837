package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
)

// SessionCookie is the cookie the browser carries between requests.
const SessionCookie = "session"

const sessionTTL = 24 * time.Hour

// IssueSessionToken signs a session JWT for a profile.
func IssueSessionToken(profile models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"user_id": profile.ID,
		"email":   profile.Email,
		"role":    string(profile.Role),
		"name":    profile.Name,
		"exp":     time.Now().Add(sessionTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
