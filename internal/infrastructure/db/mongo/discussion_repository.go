package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

const discussionsCollection = "discussions"

type DiscussionRepository struct {
	coll *mongo.Collection
}

func NewDiscussionRepository(db *mongo.Database) *DiscussionRepository {
	return &DiscussionRepository{coll: db.Collection(discussionsCollection)}
}

func (r *DiscussionRepository) Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *d
	doc.ID = ""
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert discussion: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid.Hex()
	}
	return d, nil
}

func (r *DiscussionRepository) FindByID(ctx context.Context, id string) (*domain.Discussion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var d domain.Discussion
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find discussion: %w", err)
	}
	return &d, nil
}

func (r *DiscussionRepository) ListByTopic(ctx context.Context, topicName string) ([]*domain.Discussion, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"topic_name": topicName})
	if err != nil {
		return nil, fmt.Errorf("list discussions: %w", err)
	}
	defer cur.Close(ctx)

	var discussions []*domain.Discussion
	for cur.Next(ctx) {
		var d domain.Discussion
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode discussion: %w", err)
		}
		discussions = append(discussions, &d)
	}
	return discussions, cur.Err()
}

// Update applies a merge-patch: only non-nil patch fields are written.
func (r *DiscussionRepository) Update(ctx context.Context, id string, patch ports.DiscussionPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	set := bson.M{}
	if patch.Comment != nil {
		set["comment"] = *patch.Comment
	}
	if len(set) == 0 {
		return nil
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update discussion: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (r *DiscussionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete discussion: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// DeleteByTopic removes every comment under a topic (cascade path).
func (r *DiscussionRepository) DeleteByTopic(ctx context.Context, topicName string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"topic_name": topicName})
	if err != nil {
		return fmt.Errorf("delete discussions by topic: %w", err)
	}
	return nil
}

// DeleteByHobby removes every comment under a hobby (cascade path).
func (r *DiscussionRepository) DeleteByHobby(ctx context.Context, hobbyName string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"hobby_name": hobbyName})
	if err != nil {
		return fmt.Errorf("delete discussions by hobby: %w", err)
	}
	return nil
}
