package models

import "time"

// OtpRecord is a one-time sign-up code. Records expire at storage level
// five minutes after creation.
type OtpRecord struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}
