package models

import "time"

// ModelAssets groups the URLs produced by one model ingestion.
type ModelAssets struct {
	GlbURL    string `json:"glbUrl"`
	UsdzURL   string `json:"usdzUrl"`
	HostedURL string `json:"hostedUrl"`
	QRCode    string `json:"qrCode"`
}

// ModelCreatedEvent is published after a successful ingestion.
type ModelCreatedEvent struct {
	Stem      string    `json:"stem"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
