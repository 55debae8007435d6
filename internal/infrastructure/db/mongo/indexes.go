package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates every index the repositories rely on. Called once
// at startup; the unique indexes back the name-uniqueness guarantees.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	if err := NewHobbyRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("hobby indexes: %w", err)
	}
	if err := NewTopicRepository(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("topic indexes: %w", err)
	}
	return nil
}
