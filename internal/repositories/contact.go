package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/arfoundry/model-gateway/internal/logger"
	"github.com/arfoundry/model-gateway/internal/models"
)

const responsesCollection = "responses"

// ContactWriteRepository appends contact-form submissions to the
// responses collection. Documents are never updated or removed.
type ContactWriteRepository struct {
	coll *mongo.Collection
}

func NewContactWriteRepository(db *mongo.Database) *ContactWriteRepository {
	return &ContactWriteRepository{coll: db.Collection(responsesCollection)}
}

// Save appends one contact message.
func (r *ContactWriteRepository) Save(ctx context.Context, msg models.ContactMessage) error {
	msg.CreatedAt = time.Now().UTC()

	_, err := r.coll.InsertOne(ctx, msg)

	logger.Log.Debugw("responses insert",
		"email", msg.Email,
		"error", err,
	)

	return err
}
