package services

import (
	"context"
	"errors"
	"strings"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
	"github.com/arfoundry/model-gateway/internal/repositories"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingFields      = errors.New("all fields are required")
	ErrPasswordMismatch   = errors.New("passwords do not match")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) (string, error)
	UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error
}

// TokenGenerator defines an interface for issuing bearer tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}

// MailSender delivers notification mail. May be nil when no relay is configured.
type MailSender interface {
	Send(to, subject, htmlBody string) error
}

// AuthService handles registration, login and password changes.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenGenerator
	mailer MailSender
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenGenerator, mailer MailSender) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
		mailer: mailer,
	}
}

// Register creates a new user with an argon2id password hash.
func (svc *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrMissingFields
	}

	hash, err := hashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	id, err := svc.writer.Save(ctx, models.UserDB{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return "", ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return "", err
	}

	return id, nil
}

// Login authenticates a user and returns a bearer token. Absent users and
// wrong passwords are indistinguishable to the caller; a dummy verification
// keeps both paths in the same latency class. Users still carrying a legacy
// bcrypt hash are transparently rehashed with argon2id.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		verifyPassword(password, dummyHash)
		return "", ErrInvalidCredentials
	}

	if !verifyPassword(password, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	if isLegacyHash(user.PasswordHash) {
		if hash, err := hashPassword(password); err == nil {
			if err := svc.writer.UpdatePasswordHash(ctx, user.ID.Hex(), hash); err != nil {
				logger.Log.Errorw("failed to rehash legacy password", "user_id", user.ID.Hex(), "err", err)
			}
		}
	}

	token, err := svc.jwt.Generate(ctx, user.ID.Hex())
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// ChangePassword verifies the old password and stores a new argon2id hash.
func (svc *AuthService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmNewPassword string) error {
	if oldPassword == "" || newPassword == "" || confirmNewPassword == "" {
		return ErrMissingFields
	}
	if newPassword != confirmNewPassword {
		return ErrPasswordMismatch
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil || !verifyPassword(oldPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := svc.writer.UpdatePasswordHash(ctx, userID, hash); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}

	if svc.mailer != nil && user.Email != "" {
		if err := svc.mailer.Send(user.Email, "Password Change Successful",
			"Your password was changed. If this was not you, contact support."); err != nil {
			logger.Log.Errorw("failed to send password change mail", "err", err)
		}
	}

	return nil
}

// dummyHash keeps the absent-user login path doing real work.
var dummyHash = func() string {
	h, _ := hashPassword("dummy-password")
	return h
}()
