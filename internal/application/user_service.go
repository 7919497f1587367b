package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/videotube/backend/internal/domain/entity"
	"github.com/videotube/backend/internal/domain/repository"
	"github.com/videotube/backend/pkg/apperr"
	"github.com/videotube/backend/pkg/helpers"
)

// UserService implements the account lifecycle and the auth core: bcrypt
// hashing, the access/refresh pair, and the single-slot stored refresh token.
type UserService struct {
	Users     repository.UserRepository
	JWT       *helpers.JWTManager
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(users repository.UserRepository, jwt *helpers.JWTManager, gcs *storage.Client, bucket string, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, JWT: jwt, GCS: gcs, GCSBucket: bucket, Logger: logger}
}

// TokenPair is one issued access/refresh pair with expiries for cookies.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

type RegisterInput struct {
	Username   string
	Email      string
	Password   string
	FullName   string
	Avatar     *FileUpload
	CoverImage *FileUpload
}

// Register creates an account. The avatar is required; the cover image is
// optional. The response never carries the password hash or refresh token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.PublicUser, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.Users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not check existing users")
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "user with email or username already exists")
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not hash password")
	}

	if in.Avatar == nil {
		return nil, apperr.New(apperr.Validation, "avatar file is required")
	}
	avatarURL, err := s.uploadImage(ctx, "avatars", username, in.Avatar)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "avatar upload failed")
	}
	coverURL := ""
	if in.CoverImage != nil {
		coverURL, err = s.uploadImage(ctx, "covers", username, in.CoverImage)
		if err != nil {
			return nil, apperr.Wrap(err, apperr.Internal, "cover image upload failed")
		}
	}

	u := &entity.User{
		Username:      username,
		Email:         email,
		FullName:      strings.TrimSpace(in.FullName),
		AvatarURL:     avatarURL,
		CoverImageURL: coverURL,
		Password:      hash,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.Conflict, "user with email or username already exists")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not create user")
	}
	pub := u.Public()
	return &pub, nil
}

// Login authenticates by username or email and issues a token pair. The
// refresh token overwrites the user's stored slot.
func (s *UserService) Login(ctx context.Context, identifier, password string) (*entity.PublicUser, TokenPair, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	u, err := s.Users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, TokenPair{}, apperr.New(apperr.NotFound, "user does not exist")
		}
		return nil, TokenPair{}, apperr.Wrap(err, apperr.Internal, "could not load user")
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, TokenPair{}, apperr.New(apperr.Unauthenticated, "invalid user credentials")
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pub := u.Public()
	return &pub, pair, nil
}

// Refresh rotates the token pair. The presented refresh token must verify
// and match the stored slot byte for byte; a rotated-away token fails the
// compare and is rejected as expired or used.
func (s *UserService) Refresh(ctx context.Context, presented string) (*entity.PublicUser, TokenPair, error) {
	if presented == "" {
		return nil, TokenPair{}, apperr.New(apperr.Unauthenticated, "unauthorized request")
	}
	claims, err := s.JWT.ParseRefreshToken(presented)
	if err != nil {
		return nil, TokenPair{}, apperr.New(apperr.Unauthenticated, "invalid refresh token")
	}
	u, err := s.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, TokenPair{}, apperr.New(apperr.Unauthenticated, "invalid refresh token")
	}
	if subtle.ConstantTimeCompare([]byte(presented), []byte(u.RefreshToken)) != 1 {
		return nil, TokenPair{}, apperr.New(apperr.Unauthenticated, "refresh token is expired or used")
	}

	pair, err := s.issueTokens(ctx, u)
	if err != nil {
		return nil, TokenPair{}, err
	}
	pub := u.Public()
	return &pub, pair, nil
}

// Logout clears the stored refresh token so the presented one can never be
// replayed.
func (s *UserService) Logout(ctx context.Context, userID string) error {
	if err := s.Users.UpdateRefreshToken(ctx, userID, ""); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return apperr.Wrap(err, apperr.Internal, "could not clear refresh token")
	}
	return nil
}

// ChangePassword rehashes only here; no other profile write touches the hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return apperr.New(apperr.NotFound, "user not found")
	}
	if !helpers.CompareHashAndPassword(u.Password, oldPassword) {
		return apperr.New(apperr.Validation, "invalid old password")
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return apperr.Wrap(err, apperr.Internal, "could not hash password")
	}
	u.Password = hash
	if err := s.Users.Update(ctx, u); err != nil {
		return apperr.Wrap(err, apperr.Internal, "could not update password")
	}
	return nil
}

// CurrentUser returns the principal without credential fields.
func (s *UserService) CurrentUser(ctx context.Context, userID string) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	pub := u.Public()
	return &pub, nil
}

// UpdateAccount changes full name and email; the password hash is left as is.
func (s *UserService) UpdateAccount(ctx context.Context, userID, fullName, email string) (*entity.PublicUser, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	u.FullName = strings.TrimSpace(fullName)
	u.Email = strings.ToLower(strings.TrimSpace(email))
	if err := s.Users.Update(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.New(apperr.Conflict, "email already in use")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not update account")
	}
	pub := u.Public()
	return &pub, nil
}

// UpdateAvatar replaces the avatar, deleting the previous object best-effort.
func (s *UserService) UpdateAvatar(ctx context.Context, userID string, f *FileUpload) (*entity.PublicUser, error) {
	return s.updateImage(ctx, userID, f, "avatars", func(u *entity.User) *string { return &u.AvatarURL })
}

// UpdateCoverImage replaces the cover image.
func (s *UserService) UpdateCoverImage(ctx context.Context, userID string, f *FileUpload) (*entity.PublicUser, error) {
	return s.updateImage(ctx, userID, f, "covers", func(u *entity.User) *string { return &u.CoverImageURL })
}

func (s *UserService) updateImage(ctx context.Context, userID string, f *FileUpload, prefix string, field func(*entity.User) *string) (*entity.PublicUser, error) {
	if f == nil {
		return nil, apperr.New(apperr.Validation, "image file is required")
	}
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	url, err := s.uploadImage(ctx, prefix, u.Username, f)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "image upload failed")
	}
	old := *field(u)
	*field(u) = url
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not update user")
	}
	s.deleteObjectBestEffort(ctx, old)
	pub := u.Public()
	return &pub, nil
}

// ChannelProfile returns the channel page aggregates for username as seen by
// viewerID.
func (s *UserService) ChannelProfile(ctx context.Context, username, viewerID string) (*entity.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, apperr.New(apperr.Validation, "username is missing")
	}
	p, err := s.Users.ChannelProfile(ctx, username, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.New(apperr.NotFound, "channel does not exist")
		}
		return nil, apperr.Wrap(err, apperr.Internal, "could not load channel")
	}
	return p, nil
}

// WatchHistory returns the viewer's previously watched videos, most recent
// first.
func (s *UserService) WatchHistory(ctx context.Context, userID string) ([]entity.WatchHistoryEntry, error) {
	h, err := s.Users.WatchHistory(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(err, apperr.Internal, "could not load watch history")
	}
	return h, nil
}

func (s *UserService) issueTokens(ctx context.Context, u *entity.User) (TokenPair, error) {
	access, aexp, err := s.JWT.GenerateAccessToken(u.ID, u.Email, u.Username, u.FullName)
	if err != nil {
		return TokenPair{}, apperr.Wrap(err, apperr.Internal, "could not generate access token")
	}
	refresh, rexp, err := s.JWT.GenerateRefreshToken(u.ID)
	if err != nil {
		return TokenPair{}, apperr.Wrap(err, apperr.Internal, "could not generate refresh token")
	}
	if err := s.Users.UpdateRefreshToken(ctx, u.ID, refresh); err != nil {
		return TokenPair{}, apperr.Wrap(err, apperr.Internal, "could not persist refresh token")
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

func (s *UserService) uploadImage(ctx context.Context, prefix, owner string, f *FileUpload) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(f.Filename))
	objectPath := filepath.ToSlash(filepath.Join(prefix, owner, uuid.NewString()+ext))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, f.ContentType, f.Reader)
}

func (s *UserService) deleteObjectBestEffort(ctx context.Context, url string) {
	if s.GCS == nil || url == "" {
		return
	}
	objectPath := helpers.ObjectPathFromURL(s.GCSBucket, url)
	if objectPath == "" {
		return
	}
	if err := helpers.DeleteObject(ctx, s.GCS, s.GCSBucket, objectPath); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("object", objectPath).Warn("gcs delete failed")
	}
}
