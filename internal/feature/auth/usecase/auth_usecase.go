package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/deepak20001/quickflicks-backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// refreshTokenBytes is the entropy of a refresh token; hex-encoded
	// it yields a 64-character session id.
	refreshTokenBytes = 32
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when
	// the handle or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// UpdatePassword rewrites the stored password hash.
	UpdatePassword(ctx context.Context, id uint, hash string) error
}

// SessionRepository abstracts refresh-session storage.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id string) (*entity.Session, error)
	Revoke(ctx context.Context, id string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
}

// JWTGenerator abstracts access-token generation.
type JWTGenerator interface {
	GenerateToken(userID uint, email, userName string) (string, error)
}

// MediaStorage abstracts the remote object store holding avatars.
type MediaStorage interface {
	// Upload stores the object and returns its public URL.
	Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// TokenPair is the access/refresh pair returned by Login and Refresh.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput carries the registration fields plus the uploaded
// avatar stream.
type RegisterInput struct {
	FullName   string
	UserName   string
	Email      string
	ProfileTag string
	Password   string

	Avatar            io.Reader
	AvatarSize        int64
	AvatarContentType string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	jwt        JWTGenerator
	storage    MediaStorage
	refreshTTL time.Duration
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwt JWTGenerator, storage MediaStorage, refreshTTL time.Duration) *authUsecase {
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		jwt:        jwt,
		storage:    storage,
		refreshTTL: refreshTTL,
	}
}

// validatePassword checks the password meets the minimum requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// newRefreshToken returns a fresh random 64-hex session id.
func newRefreshToken() (string, error) {
	buf := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Register creates a new account with a hashed password and an avatar
// stored in the media store.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	fullName := strings.TrimSpace(in.FullName)
	userName := strings.ToLower(strings.TrimSpace(in.UserName))
	email := strings.ToLower(strings.TrimSpace(in.Email))
	profileTag := strings.TrimSpace(in.ProfileTag)

	if fullName == "" || userName == "" || email == "" || profileTag == "" || strings.TrimSpace(in.Password) == "" {
		return nil, ErrFieldsRequired
	}
	if in.Avatar == nil {
		return nil, fmt.Errorf("%w: avatar file", ErrFieldsRequired)
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	avatarURL, err := u.storage.Upload(ctx, "avatars/"+userName, in.Avatar, in.AvatarSize, in.AvatarContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}

	user := &entity.User{
		FullName:   fullName,
		UserName:   userName,
		Email:      email,
		ProfileTag: profileTag,
		Avatar:     avatarURL,
		Password:   string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and opens a refresh session.
// bcrypt comparison runs even when the user does not exist so response
// timing does not leak account existence.
func (u *authUsecase) Login(ctx context.Context, email, password, userAgent, ipAddress string) (*entity.User, *TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the path when
	// the lookup missed.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := u.openSession(ctx, user, userAgent, ipAddress)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

// Refresh rotates a refresh session: the presented token is revoked and
// a new pair is issued. A revoked or unknown token is rejected.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken, userAgent, ipAddress string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrSessionNotFound
	}

	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if !session.IsValid() {
		return nil, ErrSessionRevoked
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}

	if err := u.sessions.Revoke(ctx, session.ID); err != nil {
		return nil, err
	}
	return u.openSession(ctx, user, userAgent, ipAddress)
}

// Logout revokes the presented refresh session.
func (u *authUsecase) Logout(ctx context.Context, userID uint, refreshToken string) error {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return ErrSessionNotFound
	}
	return u.sessions.Revoke(ctx, session.ID)
}

// ChangePassword verifies the old password and rewrites the hash. All
// refresh sessions are revoked so stolen tokens die with the password.
func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, oldPassword, newPassword string) error {
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return ErrFieldsRequired
	}
	if oldPassword == newPassword {
		return ErrSamePassword
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.users.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		return err
	}
	return u.sessions.RevokeAllByUserID(ctx, userID)
}

// openSession issues an access token and persists a new refresh session.
func (u *authUsecase) openSession(ctx context.Context, user *entity.User, userAgent, ipAddress string) (*TokenPair, error) {
	access, err := u.jwt.GenerateToken(user.ID, user.Email, user.UserName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &entity.Session{
		ID:        refresh,
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ipAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.refreshTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
