package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/models"
	"github.com/kirtanpatel0001/gulab-mehandi-sub000/store"
	"gorm.io/gorm"
)

// providerSession is what the identity provider returns for an exchanged
// authorization code.
type providerSession struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID           string `json:"id"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		UserMetadata struct {
			FullName  string `json:"full_name"`
			AvatarURL string `json:"avatar_url"`
		} `json:"user_metadata"`
	} `json:"user"`
	ErrorDescription string `json:"error_description,omitempty"`
}

func getAuthProviderConfig() (baseURL, apiKey string, err error) {
	baseURL = os.Getenv("AUTH_PROVIDER_URL")
	apiKey = os.Getenv("AUTH_SERVICE_KEY")
	if baseURL == "" || apiKey == "" {
		return "", "", fmt.Errorf("auth provider configuration missing")
	}
	return baseURL, apiKey, nil
}

// exchangeCode trades the callback code for a provider session.
func exchangeCode(code string) (*providerSession, error) {
	baseURL, apiKey, err := getAuthProviderConfig()
	if err != nil {
		return nil, err
	}

	payload, _ := json.Marshal(map[string]string{"auth_code": code})
	req, err := http.NewRequest("POST", baseURL+"/token?grant_type=authorization_code", bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", apiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach auth provider: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth provider error (%d): %s", resp.StatusCode, string(body))
	}

	var session providerSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to parse auth provider response: %v", err)
	}
	if session.ErrorDescription != "" {
		return nil, errors.New(session.ErrorDescription)
	}
	if session.User.ID == "" {
		return nil, errors.New("auth provider returned no user")
	}
	return &session, nil
}

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

// CallbackHandler exchanges the provider's code for a session, upserts the
// profile and redirects: users without a phone number go to the
// complete-profile page, everyone else home. Any failure lands on the login
// page.
//
// GET /auth/callback?code=...
func CallbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" {
			c.Redirect(http.StatusFound, frontendURL()+"/login?error=missing_code")
			return
		}

		session, err := exchangeCode(code)
		if err != nil {
			log.Printf("auth: code exchange failed: %v", err)
			c.Redirect(http.StatusFound, frontendURL()+"/login?error=auth")
			return
		}

		var profile models.Profile
		err = db.First(&profile, "id = ?", session.User.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			profile = models.Profile{
				ID:      session.User.ID,
				Email:   session.User.Email,
				Name:    session.User.UserMetadata.FullName,
				Phone:   session.User.Phone,
				Picture: session.User.UserMetadata.AvatarURL,
				Role:    models.RoleUser,
			}
			if err := db.Create(&profile).Error; err != nil {
				log.Printf("auth: profile create failed: %v", err)
				c.Redirect(http.StatusFound, frontendURL()+"/login?error=auth")
				return
			}
		case err == nil:
			db.Model(&profile).Updates(models.Profile{
				Name:    session.User.UserMetadata.FullName,
				Picture: session.User.UserMetadata.AvatarURL,
			})
		default:
			log.Printf("auth: profile lookup failed: %v", err)
			c.Redirect(http.StatusFound, frontendURL()+"/login?error=auth")
			return
		}

		token, err := IssueSessionToken(profile)
		if err != nil {
			log.Printf("auth: session token failed: %v", err)
			c.Redirect(http.StatusFound, frontendURL()+"/login?error=auth")
			return
		}
		c.SetCookie(SessionCookie, token, int(sessionTTL.Seconds()), "/", "", false, true)

		if profile.Phone == "" {
			c.Redirect(http.StatusFound, frontendURL()+"/complete-profile")
			return
		}
		c.Redirect(http.StatusFound, frontendURL()+"/")
	}
}

// LogoutHandler clears the session cookie and the user's cached cart.
//
// POST /auth/logout
func LogoutHandler(carts *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userIDVal, exists := c.Get("user_id"); exists {
			if userID, ok := userIDVal.(string); ok && carts != nil {
				carts.ClearCart(userID)
			}
		}
		c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
