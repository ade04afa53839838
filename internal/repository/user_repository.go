package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// UserRepository defines persistence access for admin accounts.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password"`
	IsAdmin      bool               `bson:"esAdmin"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository returns a MongoDB-backed implementation.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("usuarios")}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var doc userDoc
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		return nil, err
	}
	return &domain.User{
		ID:           doc.ID.Hex(),
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		IsAdmin:      doc.IsAdmin,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
