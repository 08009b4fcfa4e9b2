package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
	"github.com/arfoundry/model-gateway/internal/repositories"
)

// Error variables
var (
	ErrEmailTaken   = errors.New("user with this email already exists")
	ErrOTPInvalid   = errors.New("otp is invalid or expired")
	ErrOTPExhausted = errors.New("could not mint a unique otp code")
)

// EmailReader looks up users by email.
type EmailReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// OtpStore persists one-time codes with a storage-level TTL.
type OtpStore interface {
	Save(ctx context.Context, record models.OtpRecord) error
	GetLatest(ctx context.Context, email string) (*models.OtpRecord, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, email string) error
}

// SignUpRequest carries the OTP sign-up fields.
type SignUpRequest struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	AccountType     string
	OTP             string
}

// OtpService implements the email-verified sign-up flow.
type OtpService struct {
	users  EmailReader
	writer UserWriter
	store  OtpStore
	mailer MailSender
}

// NewOtpService creates a new OtpService instance.
func NewOtpService(users EmailReader, writer UserWriter, store OtpStore, mailer MailSender) *OtpService {
	return &OtpService{
		users:  users,
		writer: writer,
		store:  store,
		mailer: mailer,
	}
}

// SendOtp mints a six-digit code, persists it with a five-minute TTL and
// mails it to the address. Codes are rejection-sampled until one is unique
// among the currently unexpired codes.
func (svc *OtpService) SendOtp(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", ErrMissingFields
	}

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return "", err
	}
	if user != nil {
		return "", ErrEmailTaken
	}

	code, err := svc.mintUniqueCode(ctx)
	if err != nil {
		return "", err
	}

	if err := svc.store.Save(ctx, models.OtpRecord{Email: email, Code: code}); err != nil {
		return "", err
	}

	if svc.mailer != nil {
		body := fmt.Sprintf("<p>Your verification code is <b>%s</b>. It expires in 5 minutes.</p>", code)
		if err := svc.mailer.Send(email, "Verification Code", body); err != nil {
			logger.Log.Errorw("failed to send otp mail", "email", email, "err", err)
		}
	}

	return code, nil
}

// mintUniqueCode rejection-samples a six-digit code against live codes.
func (svc *OtpService) mintUniqueCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 10; attempt++ {
		n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
		if err != nil {
			return "", fmt.Errorf("generate otp: %w", err)
		}
		code := fmt.Sprintf("%06d", n.Int64())

		exists, err := svc.store.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", ErrOTPExhausted
}

// SignUp creates a user from a verified OTP sign-up request.
func (svc *OtpService) SignUp(ctx context.Context, req SignUpRequest) (string, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.FirstName == "" || req.LastName == "" || req.Email == "" ||
		req.Password == "" || req.ConfirmPassword == "" || req.OTP == "" {
		return "", ErrMissingFields
	}
	if req.Password != req.ConfirmPassword {
		return "", ErrPasswordMismatch
	}

	user, err := svc.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if user != nil {
		return "", ErrEmailTaken
	}

	record, err := svc.store.GetLatest(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if record == nil || record.Code != req.OTP {
		return "", ErrOTPInvalid
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return "", err
	}

	id, err := svc.writer.Save(ctx, models.UserDB{
		Username:     req.Email,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		AccountType:  req.AccountType,
		PasswordHash: hash,
		Profile:      models.Profile{},
	})
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateUser) {
			return "", ErrEmailTaken
		}
		logger.Log.Errorw("failed to save user", "email", req.Email, "err", err)
		return "", err
	}

	if err := svc.store.Delete(ctx, req.Email); err != nil {
		logger.Log.Errorw("failed to delete consumed otp", "email", req.Email, "err", err)
	}

	return id, nil
}
