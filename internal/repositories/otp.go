package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
)

// OtpTTL is how long a code stays valid. Expiry is enforced by Redis,
// records disappear without any sweeper.
const OtpTTL = 5 * time.Minute

const (
	otpEmailKeyPrefix = "otp:email:"
	otpCodeKeyPrefix  = "otp:code:"
)

// OtpRepository stores one-time sign-up codes with a storage-level TTL.
type OtpRepository struct {
	client *redis.Client
}

func NewOtpRepository(client *redis.Client) *OtpRepository {
	return &OtpRepository{client: client}
}

// Save persists the record for OtpTTL. A later save for the same email
// replaces the earlier one, so the stored record is always the most
// recently issued. A per-code marker key backs uniqueness sampling.
func (r *OtpRepository) Save(ctx context.Context, record models.OtpRecord) error {
	record.CreatedAt = time.Now().UTC()

	raw, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, otpEmailKeyPrefix+record.Email, raw, OtpTTL).Err(); err != nil {
		logger.Log.Errorw("otp save failed", "email", record.Email, "error", err)
		return err
	}
	if err := r.client.Set(ctx, otpCodeKeyPrefix+record.Code, record.Email, OtpTTL).Err(); err != nil {
		logger.Log.Errorw("otp code marker save failed", "error", err)
		return err
	}
	return nil
}

// GetLatest returns the unexpired record for email, or nil when none exists.
func (r *OtpRepository) GetLatest(ctx context.Context, email string) (*models.OtpRecord, error) {
	raw, err := r.client.Get(ctx, otpEmailKeyPrefix+email).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var record models.OtpRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CodeExists reports whether an unexpired record with this code exists.
func (r *OtpRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	n, err := r.client.Exists(ctx, otpCodeKeyPrefix+code).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the record for email once it has been consumed.
func (r *OtpRepository) Delete(ctx context.Context, email string) error {
	record, err := r.GetLatest(ctx, email)
	if err != nil || record == nil {
		return err
	}
	return r.client.Del(ctx, otpEmailKeyPrefix+email, otpCodeKeyPrefix+record.Code).Err()
}
