package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
	"github.com/videotube/backend/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("access-secret", "refresh-secret", time.Hour, 240*time.Hour)
}

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:       "5f1b9c2e-8a3d-4e6f-9b0a-1c2d3e4f5a6b",
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice A",
		Password: hash,
	}
}

func TestLoginIssuesAndStoresTokenPair(t *testing.T) {
	u := testUser(t, "secret123")
	users := new(mockUserRepo)
	users.On("GetByIdentifier", mock.Anything, "alice").Return(u, nil)
	users.On("UpdateRefreshToken", mock.Anything, u.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { u.RefreshToken = args.String(2) }).
		Return(nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	pub, pair, err := svc.Login(context.Background(), "Alice", "secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, pair.RefreshToken, u.RefreshToken)
	assert.Equal(t, "alice", pub.Username)
	users.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	u := testUser(t, "secret123")
	users := new(mockUserRepo)
	users.On("GetByIdentifier", mock.Anything, "alice").Return(u, nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	_, _, err := svc.Login(context.Background(), "alice", "wrong")
	require.Error(t, err)

	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
	assert.EqualError(t, err, "invalid user credentials")
	users.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginUnknownIdentifier(t *testing.T) {
	users := new(mockUserRepo)
	users.On("GetByIdentifier", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	svc := &UserService{Users: users, JWT: testJWT()}
	_, _, err := svc.Login(context.Background(), "ghost", "whatever")
	require.Error(t, err)

	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
	assert.EqualError(t, err, "user does not exist")
}

// A refresh token can be used exactly once: rotating invalidates the previous
// one even though it has not expired.
func TestRefreshRotatesSingleSlot(t *testing.T) {
	u := testUser(t, "secret123")
	users := new(mockUserRepo)
	users.On("GetByIdentifier", mock.Anything, "alice").Return(u, nil)
	users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
	users.On("UpdateRefreshToken", mock.Anything, u.ID, mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { u.RefreshToken = args.String(2) }).
		Return(nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	_, pair1, err := svc.Login(context.Background(), "alice", "secret123")
	require.NoError(t, err)

	_, pair2, err := svc.Refresh(context.Background(), pair1.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, pair2.AccessToken)
	assert.NotEqual(t, pair1.RefreshToken, pair2.RefreshToken)
	assert.Equal(t, pair2.RefreshToken, u.RefreshToken)

	// Replaying the rotated-away token must fail.
	_, _, err = svc.Refresh(context.Background(), pair1.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
	assert.EqualError(t, err, "refresh token is expired or used")
}

func TestRefreshWithoutToken(t *testing.T) {
	svc := &UserService{Users: new(mockUserRepo), JWT: testJWT()}
	_, _, err := svc.Refresh(context.Background(), "")
	require.Error(t, err)

	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
	assert.EqualError(t, err, "unauthorized request")
}

func TestRefreshGarbageToken(t *testing.T) {
	svc := &UserService{Users: new(mockUserRepo), JWT: testJWT()}
	_, _, err := svc.Refresh(context.Background(), "not-a-jwt")
	require.Error(t, err)

	assert.Equal(t, apperr.Unauthenticated, apperr.KindOf(err))
	assert.EqualError(t, err, "invalid refresh token")
}

func TestLogoutClearsStoredToken(t *testing.T) {
	users := new(mockUserRepo)
	users.On("UpdateRefreshToken", mock.Anything, "uid-1", "").Return(nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	require.NoError(t, svc.Logout(context.Background(), "uid-1"))
	users.AssertExpectations(t)
}

func TestLogoutTolerateMissingUser(t *testing.T) {
	users := new(mockUserRepo)
	users.On("UpdateRefreshToken", mock.Anything, "uid-1", "").Return(repository.ErrNotFound)

	svc := &UserService{Users: users, JWT: testJWT()}
	assert.NoError(t, svc.Logout(context.Background(), "uid-1"))
}

func TestRegisterConflict(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(true, nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: " Alice ",
		Email:    "Alice@Example.com",
		Password: "secret123",
		FullName: "Alice A",
	})
	require.Error(t, err)

	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.EqualError(t, err, "user with email or username already exists")
}

func TestRegisterRequiresAvatar(t *testing.T) {
	users := new(mockUserRepo)
	users.On("ExistsByUsernameOrEmail", mock.Anything, "alice", "alice@example.com").Return(false, nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		FullName: "Alice A",
	})
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.EqualError(t, err, "avatar file is required")
}

func TestChangePassword(t *testing.T) {
	u := testUser(t, "old-secret")
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, u.ID).Return(u, nil)

	svc := &UserService{Users: users, JWT: testJWT()}

	err := svc.ChangePassword(context.Background(), u.ID, "nope", "new-secret")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.EqualError(t, err, "invalid old password")

	users.On("Update", mock.Anything, u).Return(nil)
	require.NoError(t, svc.ChangePassword(context.Background(), u.ID, "old-secret", "new-secret"))
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "new-secret"))
}

func TestUpdateAccountKeepsPasswordHash(t *testing.T) {
	u := testUser(t, "secret123")
	before := u.Password
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
	users.On("Update", mock.Anything, u).Return(nil)

	svc := &UserService{Users: users, JWT: testJWT()}
	pub, err := svc.UpdateAccount(context.Background(), u.ID, "Alice B", "New@Example.com")
	require.NoError(t, err)

	assert.Equal(t, "Alice B", pub.FullName)
	assert.Equal(t, "new@example.com", pub.Email)
	assert.Equal(t, before, u.Password)
}

func TestUpdateAccountDuplicateEmail(t *testing.T) {
	u := testUser(t, "secret123")
	users := new(mockUserRepo)
	users.On("GetByID", mock.Anything, u.ID).Return(u, nil)
	users.On("Update", mock.Anything, u).Return(repository.ErrDuplicate)

	svc := &UserService{Users: users, JWT: testJWT()}
	_, err := svc.UpdateAccount(context.Background(), u.ID, "Alice B", "taken@example.com")
	require.Error(t, err)

	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))
	assert.EqualError(t, err, "email already in use")
}

func TestChannelProfileRequiresUsername(t *testing.T) {
	svc := &UserService{Users: new(mockUserRepo), JWT: testJWT()}
	_, err := svc.ChannelProfile(context.Background(), "  ", "")
	require.Error(t, err)

	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
	assert.EqualError(t, err, "username is missing")
}

func TestPublicUserNeverSerializesCredentials(t *testing.T) {
	u := testUser(t, "secret123")
	u.RefreshToken = "stored-refresh-token"

	raw, err := json.Marshal(u.Public())
	require.NoError(t, err)

	assert.NotContains(t, string(raw), u.Password)
	assert.NotContains(t, string(raw), "stored-refresh-token")
	assert.Contains(t, string(raw), `"username":"alice"`)
}
