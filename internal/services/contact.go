package services

import (
	"context"
	"strings"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
)

// ContactWriter appends contact messages.
type ContactWriter interface {
	Save(ctx context.Context, msg models.ContactMessage) error
}

// ContactService captures contact-form submissions.
type ContactService struct {
	writer ContactWriter
}

// NewContactService creates a new ContactService instance.
func NewContactService(writer ContactWriter) *ContactService {
	return &ContactService{writer: writer}
}

// Submit validates and stores one contact message.
func (svc *ContactService) Submit(ctx context.Context, name, email, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return ErrMissingFields
	}

	err := svc.writer.Save(ctx, models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		logger.Log.Errorw("failed to save contact message", "err", err)
	}
	return err
}
