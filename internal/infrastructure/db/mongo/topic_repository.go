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

const topicsCollection = "topics"

type TopicRepository struct {
	coll *mongo.Collection
}

func NewTopicRepository(db *mongo.Database) *TopicRepository {
	return &TopicRepository{coll: db.Collection(topicsCollection)}
}

// Create inserts a topic. The compound (hobby_name, name) unique index
// turns a duplicate insert into domain.ErrTopicExists.
func (r *TopicRepository) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *t
	doc.ID = ""
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTopicExists
		}
		return nil, fmt.Errorf("insert topic: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		t.ID = oid.Hex()
	}
	return t, nil
}

func (r *TopicRepository) FindByName(ctx context.Context, name string) (*domain.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.Topic
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, fmt.Errorf("find topic: %w", err)
	}
	return &t, nil
}

func (r *TopicRepository) ListByHobby(ctx context.Context, hobbyName string) ([]*domain.Topic, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"hobby_name": hobbyName})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer cur.Close(ctx)

	var topics []*domain.Topic
	for cur.Next(ctx) {
		var t domain.Topic
		if err := cur.Decode(&t); err != nil {
			return nil, fmt.Errorf("decode topic: %w", err)
		}
		topics = append(topics, &t)
	}
	return topics, cur.Err()
}

// Update applies a merge-patch: only non-nil patch fields are written.
// hobby_name is never patched — parent links are immutable.
func (r *TopicRepository) Update(ctx context.Context, id string, patch ports.TopicPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTopicNotFound
	}

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

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrTopicExists
		}
		return fmt.Errorf("update topic: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

func (r *TopicRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrTopicNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

// DeleteByHobby removes every topic under a hobby (cascade path).
func (r *TopicRepository) DeleteByHobby(ctx context.Context, hobbyName string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"hobby_name": hobbyName})
	if err != nil {
		return fmt.Errorf("delete topics by hobby: %w", err)
	}
	return nil
}

// EnsureIndexes creates the compound unique (hobby_name, name) index.
func (r *TopicRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "hobby_name", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
