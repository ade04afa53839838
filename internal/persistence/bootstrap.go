package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/auth"
	"github.com/spec-kit/storefront-service/internal/config"
)

// Bootstrap ensures indexes exist and, when configured, seeds the admin
// account so a fresh deployment has a working login.
func Bootstrap(ctx context.Context, db *mongo.Database, authCfg config.AuthConfig, logger *zap.Logger) error {
	if db == nil {
		logger.Warn("no document store available; skipping bootstrap")
		return nil
	}

	users := db.Collection("usuarios")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := users.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("ensure email index: %w", err)
	}

	if authCfg.AdminEmail == "" || authCfg.AdminPassword == "" {
		logger.Info("admin seed not configured; skipping")
		return nil
	}

	hash, err := auth.HashPassword(authCfg.AdminPassword, authCfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"password":   hash,
			"esAdmin":    true,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"email":      authCfg.AdminEmail,
			"created_at": now,
		},
	}
	_, err = users.UpdateOne(ctx, bson.M{"email": authCfg.AdminEmail}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	logger.Info("admin account ensured", zap.String("email", authCfg.AdminEmail))
	return nil
}
