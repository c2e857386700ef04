package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shazzad098/career-ai-os/internal/auth"
	"github.com/shazzad098/career-ai-os/internal/models"
	"github.com/shazzad098/career-ai-os/internal/storage"
)

var testSecret = []byte("test-secret")

func setupRouter(t *testing.T) (*gin.Engine, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	store, err := storage.New(db)
	require.NoError(t, err)

	user := &models.User{Username: "alice", Email: "a@x.com", PasswordHash: "x"}
	require.NoError(t, store.CreateUser(user))

	r := gin.New()
	protected := r.Group("/", auth.Middleware(testSecret, store))
	protected.GET("/me", func(c *gin.Context) {
		c.String(http.StatusOK, auth.CurrentUser(c).Username)
	})
	return r, user
}

func TestMiddlewareAcceptsValidSession(t *testing.T) {
	r, user := setupRouter(t)

	token, err := auth.IssueSession(testSecret, user, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestMiddlewareRedirectsWithoutSession(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestMiddlewareRedirectsOnGarbageToken(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "not-a-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestMiddlewareRejectsTokenSignedWithWrongSecret(t *testing.T) {
	r, user := setupRouter(t)

	token, err := auth.IssueSession([]byte("other-secret"), user, false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
}
