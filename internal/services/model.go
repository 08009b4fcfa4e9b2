package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
	"github.com/arfoundry/model-gateway/internal/qr"
	"github.com/arfoundry/model-gateway/internal/viewer"
)

// Error variables
var (
	ErrInvalidModelName = errors.New("model name has no usable characters")
	ErrEmptyConversion  = errors.New("conversion produced an empty result")
)

// AssetStore defines the artifact operations the orchestrator needs.
type AssetStore interface {
	Put(name string, r io.Reader) error
	Delete(name string) error
	Exists(name string) bool
	ReadStream(name string) (io.ReadCloser, error)
	List(suffix string) ([]string, error)
}

// Converter turns a GLB stream into a USDZ stream.
type Converter interface {
	Convert(ctx context.Context, glb io.Reader) (io.ReadCloser, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ModelService drives the ingestion pipeline: store the upload, convert it,
// materialise a viewer page and a QR code, and report the published URLs.
type ModelService struct {
	store       AssetStore
	converter   Converter
	baseURL     string
	kafkaWriter KafkaWriter
}

// NewModelService creates a new ModelService. kafkaWriter may be nil.
func NewModelService(store AssetStore, converter Converter, baseURL string, kafkaWriter KafkaWriter) *ModelService {
	return &ModelService{
		store:       store,
		converter:   converter,
		baseURL:     strings.TrimRight(baseURL, "/"),
		kafkaWriter: kafkaWriter,
	}
}

// Slugify lowercases name and collapses every non-alphanumeric run into a
// single underscore. An empty result means the name is unusable.
func Slugify(name string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(b.String(), "_")
}

// CreateModel ingests one upload. The GLB stream is written straight to the
// asset store without buffering. Any failure removes every artifact the
// request produced, in reverse order of creation.
func (svc *ModelService) CreateModel(ctx context.Context, userID, modelName string, glb io.Reader) (*models.ModelAssets, error) {
	slug := Slugify(modelName)
	if slug == "" {
		return nil, ErrInvalidModelName
	}

	// Hyphen-free so the stem stays <slug>-<opaqueId>.
	opaqueID := strings.ReplaceAll(uuid.New().String(), "-", "")
	stem := slug + "-" + opaqueID

	glbName := stem + ".glb"
	usdzName := stem + ".usdz"
	htmlName := stem + ".html"

	var created []string
	cleanup := func() {
		for i := len(created) - 1; i >= 0; i-- {
			if err := svc.store.Delete(created[i]); err != nil {
				logger.Log.Errorw("cleanup failed", "name", created[i], "err", err)
			}
		}
	}

	if err := svc.store.Put(glbName, glb); err != nil {
		logger.Log.Errorw("failed to store glb", "name", glbName, "err", err)
		return nil, err
	}
	created = append(created, glbName)

	stored, err := svc.store.ReadStream(glbName)
	if err != nil {
		cleanup()
		return nil, err
	}
	usdz, err := svc.converter.Convert(ctx, stored)
	stored.Close()
	if err != nil {
		cleanup()
		return nil, err
	}

	counted := &countingReader{r: usdz}
	err = svc.store.Put(usdzName, counted)
	usdz.Close()
	if err != nil {
		cleanup()
		return nil, err
	}
	created = append(created, usdzName)
	if counted.n == 0 {
		cleanup()
		return nil, ErrEmptyConversion
	}

	glbURL := svc.baseURL + "/public/" + glbName
	usdzURL := svc.baseURL + "/public/" + usdzName

	html, err := viewer.Render(viewer.Data{
		GlbURL:    glbURL,
		UsdzURL:   usdzURL,
		ModelName: modelName,
	})
	if err != nil {
		cleanup()
		return nil, err
	}
	if err := svc.store.Put(htmlName, strings.NewReader(string(html))); err != nil {
		logger.Log.Errorw("failed to store viewer page", "name", htmlName, "err", err)
		cleanup()
		return nil, err
	}
	created = append(created, htmlName)

	hostedURL := svc.baseURL + "/template/" + htmlName
	qrCode, err := qr.Encode(hostedURL)
	if err != nil {
		cleanup()
		return nil, err
	}

	svc.publishCreated(ctx, stem, userID)

	return &models.ModelAssets{
		GlbURL:    glbURL,
		UsdzURL:   usdzURL,
		HostedURL: hostedURL,
		QRCode:    qrCode,
	}, nil
}

// publishCreated emits a model.created event. Publishing is best effort.
func (svc *ModelService) publishCreated(ctx context.Context, stem, userID string) {
	if svc.kafkaWriter == nil {
		logger.Log.Debugw("kafka writer not configured, skipping publishing", "stem", stem)
		return
	}

	event := models.ModelCreatedEvent{
		Stem:      stem,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal model event", "err", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(stem),
		Value: value,
		Time:  event.CreatedAt,
	}
	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish model event", "stem", stem, "err", err)
	}
}

// Convert exposes a raw pass-through conversion without persisting anything.
func (svc *ModelService) Convert(ctx context.Context, glb io.Reader) (io.ReadCloser, error) {
	return svc.converter.Convert(ctx, glb)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
