package services

import (
	"context"
	"regexp"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/arfoundry/model-gateway/internal/models"
)

var otpCodeRe = regexp.MustCompile(`^[0-9]{6}$`)

func TestOtpService_SendOtp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockEmailReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockStore := NewMockOtpStore(ctrl)
	mockMailer := NewMockMailSender(ctrl)

	svc := NewOtpService(mockUsers, mockWriter, mockStore, mockMailer)
	ctx := context.Background()

	t.Run("mints unique six digit code and mails it", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		mockStore.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		mockStore.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record models.OtpRecord) error {
				assert.Equal(t, "ada@example.com", record.Email)
				assert.Regexp(t, otpCodeRe, record.Code)
				return nil
			})
		mockMailer.EXPECT().Send("ada@example.com", gomock.Any(), gomock.Any()).Return(nil)

		code, err := svc.SendOtp(ctx, "Ada@Example.com")
		assert.NoError(t, err)
		assert.Regexp(t, otpCodeRe, code)
	})

	t.Run("rejection samples on collision", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		gomock.InOrder(
			mockStore.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(true, nil),
			mockStore.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil),
		)
		mockStore.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		mockMailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		code, err := svc.SendOtp(ctx, "ada@example.com")
		assert.NoError(t, err)
		assert.Regexp(t, otpCodeRe, code)
	})

	t.Run("existing user rejected", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByEmail(gomock.Any(), "taken@example.com").
			Return(&models.UserDB{ID: bson.NewObjectID()}, nil)

		code, err := svc.SendOtp(ctx, "taken@example.com")
		assert.ErrorIs(t, err, ErrEmailTaken)
		assert.Empty(t, code)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		code, err := svc.SendOtp(ctx, "  ")
		assert.ErrorIs(t, err, ErrMissingFields)
		assert.Empty(t, code)
	})
}

func TestOtpService_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockEmailReader(ctrl)
	mockWriter := NewMockUserWriter(ctrl)
	mockStore := NewMockOtpStore(ctrl)

	svc := NewOtpService(mockUsers, mockWriter, mockStore, nil)
	ctx := context.Background()

	validReq := SignUpRequest{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Password:        "secret123",
		ConfirmPassword: "secret123",
		AccountType:     "User",
		OTP:             "123456",
	}

	t.Run("success", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		mockStore.EXPECT().
			GetLatest(gomock.Any(), "ada@example.com").
			Return(&models.OtpRecord{Email: "ada@example.com", Code: "123456"}, nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user models.UserDB) (string, error) {
				assert.Equal(t, "ada@example.com", user.Email)
				assert.Equal(t, "Ada", user.FirstName)
				assert.True(t, verifyPassword("secret123", user.PasswordHash))
				return "64f1c0de9b1e8a2d3c4b5a69", nil
			})
		mockStore.EXPECT().Delete(gomock.Any(), "ada@example.com").Return(nil)

		id, err := svc.SignUp(ctx, validReq)
		assert.NoError(t, err)
		assert.Equal(t, "64f1c0de9b1e8a2d3c4b5a69", id)
	})

	t.Run("wrong otp", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		mockStore.EXPECT().
			GetLatest(gomock.Any(), "ada@example.com").
			Return(&models.OtpRecord{Email: "ada@example.com", Code: "999999"}, nil)

		_, err := svc.SignUp(ctx, validReq)
		assert.ErrorIs(t, err, ErrOTPInvalid)
	})

	t.Run("expired otp", func(t *testing.T) {
		mockUsers.EXPECT().GetByEmail(gomock.Any(), "ada@example.com").Return(nil, nil)
		mockStore.EXPECT().GetLatest(gomock.Any(), "ada@example.com").Return(nil, nil)

		_, err := svc.SignUp(ctx, validReq)
		assert.ErrorIs(t, err, ErrOTPInvalid)
	})

	t.Run("password mismatch", func(t *testing.T) {
		req := validReq
		req.ConfirmPassword = "different"

		_, err := svc.SignUp(ctx, req)
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("missing fields", func(t *testing.T) {
		req := validReq
		req.FirstName = ""

		_, err := svc.SignUp(ctx, req)
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("existing user", func(t *testing.T) {
		mockUsers.EXPECT().
			GetByEmail(gomock.Any(), "ada@example.com").
			Return(&models.UserDB{ID: bson.NewObjectID()}, nil)

		_, err := svc.SignUp(ctx, validReq)
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}
