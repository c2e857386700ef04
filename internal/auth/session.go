package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/shazzad098/career-ai-os/internal/models"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

const (
	// CookieName is the session cookie carrying the signed token.
	CookieName = "session"

	sessionTTL  = 24 * time.Hour
	rememberTTL = 7 * 24 * time.Hour

	userKey = "currentUser"
)

// IssueSession signs a session token for the user. Remembered sessions get
// the extended expiry.
func IssueSession(secret []byte, user *models.User, remember bool) (string, error) {
	ttl := sessionTTL
	if remember {
		ttl = rememberTTL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	})
	return token.SignedString(secret)
}

// SetCookie attaches the session token to the response.
func SetCookie(c *gin.Context, token string, remember bool) {
	maxAge := int(sessionTTL / time.Second)
	if remember {
		maxAge = int(rememberTTL / time.Second)
	}
	c.SetCookie(CookieName, token, maxAge, "/", "", false, true)
}

// ClearCookie invalidates the session cookie.
func ClearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}

// Middleware gates protected routes. An absent or invalid session redirects
// to the login page; it never answers with an error body.
func Middleware(secret []byte, store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			redirectToLogin(c)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			redirectToLogin(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			redirectToLogin(c)
			return
		}
		id, ok := claims["user_id"].(float64)
		if !ok {
			redirectToLogin(c)
			return
		}

		// Load the user fresh so profile edits and career-goal changes are
		// visible on the very next request.
		user, err := store.UserByID(uint(id))
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// CurrentUser returns the principal resolved by Middleware. It is nil on
// unprotected routes.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// Authenticated reports whether the request carries a valid, unexpired
// session cookie. Used by public pages to bounce logged-in users to the
// dashboard.
func Authenticated(c *gin.Context, secret []byte) bool {
	tokenString, err := c.Cookie(CookieName)
	if err != nil || tokenString == "" {
		return false
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	return err == nil && token.Valid
}

func redirectToLogin(c *gin.Context) {
	ClearCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
	c.Abort()
}
