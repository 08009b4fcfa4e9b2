package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/arfoundry/model-gateway/internal/models"
	"github.com/arfoundry/model-gateway/internal/repositories"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT, nil)
	ctx := context.Background()

	t.Run("successful registration stores argon2id hash", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.UserDB) (string, error) {
				assert.Equal(t, "ada", user.Username)
				assert.True(t, strings.HasPrefix(user.PasswordHash, "$argon2id$"))
				assert.True(t, verifyPassword("lovelace", user.PasswordHash))
				return "64f1c0de9b1e8a2d3c4b5a69", nil
			})

		id, err := svc.Register(ctx, "ada", "lovelace")
		assert.NoError(t, err)
		assert.Equal(t, "64f1c0de9b1e8a2d3c4b5a69", id)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "pass")
		assert.ErrorIs(t, err, ErrMissingFields)

		_, err = svc.Register(ctx, "ada", "")
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("duplicate username", func(t *testing.T) {
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return("", repositories.ErrDuplicateUser)

		_, err := svc.Register(ctx, "ada", "lovelace")
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT, nil)
	ctx := context.Background()

	userID := bson.NewObjectID()
	hash, err := hashPassword("lovelace")
	assert.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "ada").
			Return(&models.UserDB{ID: userID, Username: "ada", PasswordHash: hash}, nil)
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID.Hex()).
			Return("JWT_TOKEN", nil)

		token, err := svc.Login(ctx, "ada", "lovelace")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "ada").
			Return(&models.UserDB{ID: userID, Username: "ada", PasswordHash: hash}, nil)

		token, err := svc.Login(ctx, "ada", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("absent user is indistinguishable", func(t *testing.T) {
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, nil)

		token, err := svc.Login(ctx, "ghost", "whatever")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("reader error", func(t *testing.T) {
		dbErr := errors.New("db down")
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "ada").
			Return(nil, dbErr)

		_, err := svc.Login(ctx, "ada", "lovelace")
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("legacy bcrypt hash is rehashed", func(t *testing.T) {
		legacy, err := bcrypt.GenerateFromPassword([]byte("lovelace"), bcrypt.MinCost)
		assert.NoError(t, err)

		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "ada").
			Return(&models.UserDB{ID: userID, Username: "ada", PasswordHash: string(legacy)}, nil)
		mockWriter.EXPECT().
			UpdatePasswordHash(gomock.Any(), userID.Hex(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, newHash string) error {
				assert.True(t, strings.HasPrefix(newHash, "$argon2id$"))
				assert.True(t, verifyPassword("lovelace", newHash))
				return nil
			})
		mockJWT.EXPECT().
			Generate(gomock.Any(), userID.Hex()).
			Return("JWT_TOKEN", nil)

		token, err := svc.Login(ctx, "ada", "lovelace")
		assert.NoError(t, err)
		assert.Equal(t, "JWT_TOKEN", token)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockUserReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockJWT := NewMockTokenGenerator(ctrl)
	mockMailer := NewMockMailSender(ctrl)

	svc := NewAuthService(mockReader, mockWriter, mockJWT, mockMailer)
	ctx := context.Background()

	userID := bson.NewObjectID()
	hash, _ := hashPassword("old-pass")
	user := &models.UserDB{ID: userID, Username: "ada", Email: "ada@example.com", PasswordHash: hash}

	t.Run("success sends notification", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), userID.Hex()).Return(user, nil)
		mockWriter.EXPECT().UpdatePasswordHash(gomock.Any(), userID.Hex(), gomock.Any()).Return(nil)
		mockMailer.EXPECT().Send("ada@example.com", gomock.Any(), gomock.Any()).Return(nil)

		err := svc.ChangePassword(ctx, userID.Hex(), "old-pass", "new-pass", "new-pass")
		assert.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		mockReader.EXPECT().GetByID(gomock.Any(), userID.Hex()).Return(user, nil)

		err := svc.ChangePassword(ctx, userID.Hex(), "bad", "new-pass", "new-pass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		err := svc.ChangePassword(ctx, userID.Hex(), "old-pass", "new-pass", "other")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("missing fields", func(t *testing.T) {
		err := svc.ChangePassword(ctx, userID.Hex(), "", "new-pass", "new-pass")
		assert.ErrorIs(t, err, ErrMissingFields)
	})
}

func TestPasswordHash_Properties(t *testing.T) {
	h1, err := hashPassword("secret")
	assert.NoError(t, err)
	h2, err := hashPassword("secret")
	assert.NoError(t, err)

	// Random salts make identical passwords hash differently.
	assert.NotEqual(t, h1, h2)
	assert.True(t, verifyPassword("secret", h1))
	assert.True(t, verifyPassword("secret", h2))
	assert.False(t, verifyPassword("wrong", h1))

	// Malformed hashes never verify.
	assert.False(t, verifyPassword("secret", "not-a-hash"))
	assert.False(t, verifyPassword("secret", ""))
}
