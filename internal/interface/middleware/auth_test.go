package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/helpers"
)

// stubUserRepo serves a single user; only GetByID matters for the auth gate.
type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) GetByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) GetByIdentifier(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return false, nil
}
func (s *stubUserRepo) Update(context.Context, *entity.User) error { return nil }
func (s *stubUserRepo) UpdateRefreshToken(context.Context, string, string) error {
	return nil
}
func (s *stubUserRepo) ChannelProfile(context.Context, string, string) (*entity.ChannelProfile, error) {
	return nil, repository.ErrNotFound
}
func (s *stubUserRepo) WatchHistory(context.Context, string) ([]entity.WatchHistoryEntry, error) {
	return nil, nil
}
func (s *stubUserRepo) AddWatchHistory(context.Context, string, string) error { return nil }

func authRouter(t *testing.T, jwt *helpers.JWTManager, users repository.UserRepository) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(jwt, users), func(c *gin.Context) {
		uid := c.GetString(CtxUserIDKey)
		u, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": uid, "username": u.Username})
	})
	return r
}

func TestAuthRejectsMissingToken(t *testing.T) {
	r := authRouter(t, helpers.NewJWTManager("a", "r", time.Hour, time.Hour), &stubUserRepo{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "unauthorized request")
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", -time.Minute, time.Hour)
	u := &entity.User{ID: "u-1", Username: "alice"}
	r := authRouter(t, jwt, &stubUserRepo{user: u})

	token, _, err := jwt.GenerateAccessToken(u.ID, "a@b.c", u.Username, "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")
}

func TestAuthAcceptsCookie(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Hour, time.Hour)
	u := &entity.User{ID: "u-1", Username: "alice"}
	r := authRouter(t, jwt, &stubUserRepo{user: u})

	token, _, err := jwt.GenerateAccessToken(u.ID, "a@b.c", u.Username, "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: helpers.AccessTokenCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":"u-1"`)
	assert.Contains(t, w.Body.String(), `"username":"alice"`)
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Hour, time.Hour)
	u := &entity.User{ID: "u-1", Username: "alice"}
	r := authRouter(t, jwt, &stubUserRepo{user: u})

	token, _, err := jwt.GenerateAccessToken(u.ID, "a@b.c", u.Username, "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejectsDeletedAccount(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Hour, time.Hour)
	r := authRouter(t, jwt, &stubUserRepo{})

	// Token is live, but the account behind it is gone.
	token, _, err := jwt.GenerateAccessToken("u-gone", "a@b.c", "alice", "Alice")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid access token")
}
