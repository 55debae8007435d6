package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

const hobbiesCollection = "hobbies"

type HobbyRepository struct {
	coll *mongo.Collection
}

func NewHobbyRepository(db *mongo.Database) *HobbyRepository {
	return &HobbyRepository{coll: db.Collection(hobbiesCollection)}
}

// Create inserts a hobby. The unique name index turns a duplicate insert
// into domain.ErrHobbyExists.
func (r *HobbyRepository) Create(ctx context.Context, h *domain.Hobby) (*domain.Hobby, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *h
	doc.ID = ""
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrHobbyExists
		}
		return nil, fmt.Errorf("insert hobby: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		h.ID = oid.Hex()
	}
	return h, nil
}

func (r *HobbyRepository) FindByName(ctx context.Context, name string) (*domain.Hobby, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var h domain.Hobby
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&h); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrHobbyNotFound
		}
		return nil, fmt.Errorf("find hobby: %w", err)
	}
	return &h, nil
}

func (r *HobbyRepository) List(ctx context.Context) ([]*domain.Hobby, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list hobbies: %w", err)
	}
	defer cur.Close(ctx)

	var hobbies []*domain.Hobby
	for cur.Next(ctx) {
		var h domain.Hobby
		if err := cur.Decode(&h); err != nil {
			return nil, fmt.Errorf("decode hobby: %w", err)
		}
		hobbies = append(hobbies, &h)
	}
	return hobbies, cur.Err()
}

// Update applies a merge-patch: only non-nil patch fields are written.
func (r *HobbyRepository) Update(ctx context.Context, name string, patch ports.HobbyPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"name": name}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrHobbyExists
		}
		return fmt.Errorf("update hobby: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrHobbyNotFound
	}
	return nil
}

func (r *HobbyRepository) Delete(ctx context.Context, name string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return fmt.Errorf("delete hobby: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrHobbyNotFound
	}
	return nil
}

// EnsureIndexes creates the unique hobby name index.
func (r *HobbyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
