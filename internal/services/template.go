package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/arfoundry/model-gateway/internal/storage"
)

// ErrTemplateNotFound is returned when the named viewer page does not exist.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateService lists, reads and deletes generated viewer pages.
type TemplateService struct {
	store AssetStore
}

// NewTemplateService creates a new TemplateService instance.
func NewTemplateService(store AssetStore) *TemplateService {
	return &TemplateService{store: store}
}

// List returns the names of all viewer pages.
func (svc *TemplateService) List(ctx context.Context) ([]string, error) {
	return svc.store.List(".html")
}

// Read opens the named viewer page. The bare stem is accepted in place of
// the full file name.
func (svc *TemplateService) Read(ctx context.Context, name string) (io.ReadCloser, error) {
	fileName, err := normalizeTemplateName(name)
	if err != nil {
		return nil, err
	}
	rc, err := svc.store.ReadStream(fileName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrTemplateNotFound
	}
	return rc, err
}

// Delete removes exactly one viewer page. Deleting an absent page returns
// ErrTemplateNotFound, so a repeated delete is visible to the caller.
func (svc *TemplateService) Delete(ctx context.Context, name string) error {
	fileName, err := normalizeTemplateName(name)
	if err != nil {
		return err
	}
	if !svc.store.Exists(fileName) {
		return ErrTemplateNotFound
	}
	return svc.store.Delete(fileName)
}

func normalizeTemplateName(name string) (string, error) {
	if !strings.HasSuffix(name, ".html") {
		name += ".html"
	}
	if err := storage.ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}
