package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ContactRepository defines persistence access for contact-form messages.
type ContactRepository interface {
	Insert(ctx context.Context, message *domain.ContactMessage) error
}

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"nombre"`
	Email     string             `bson:"email"`
	Message   string             `bson:"mensaje"`
	CreatedAt time.Time          `bson:"created_at"`
}

type contactRepository struct {
	collection *mongo.Collection
}

// NewContactRepository returns a MongoDB-backed implementation.
func NewContactRepository(db *mongo.Database) ContactRepository {
	return &contactRepository{collection: db.Collection("mensajes")}
}

func (r *contactRepository) Insert(ctx context.Context, message *domain.ContactMessage) error {
	doc := contactDoc{
		ID:        primitive.NewObjectID(),
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		CreatedAt: time.Now(),
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	message.ID = doc.ID.Hex()
	message.CreatedAt = doc.CreatedAt
	return nil
}
