package ports

import (
	"context"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

// HobbyPatch, TopicPatch and DiscussionPatch carry merge-patch updates:
// only non-nil fields overwrite the stored document.
type HobbyPatch struct {
	Name        *string
	Description *string
}

type TopicPatch struct {
	Name        *string
	Description *string
}

type DiscussionPatch struct {
	Comment *string
}

// HobbyRepository defines persistence operations for hobbies.
// Hobby names are globally unique; Create reports domain.ErrHobbyExists
// on a duplicate.
type HobbyRepository interface {
	Create(ctx context.Context, h *domain.Hobby) (*domain.Hobby, error)
	FindByName(ctx context.Context, name string) (*domain.Hobby, error)
	List(ctx context.Context) ([]*domain.Hobby, error)
	Update(ctx context.Context, name string, patch HobbyPatch) error
	Delete(ctx context.Context, name string) error
}

// TopicRepository defines persistence operations for topics.
// Topic names are unique within their parent hobby; Create reports
// domain.ErrTopicExists on a duplicate.
type TopicRepository interface {
	Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error)
	FindByName(ctx context.Context, name string) (*domain.Topic, error)
	ListByHobby(ctx context.Context, hobbyName string) ([]*domain.Topic, error)
	Update(ctx context.Context, id string, patch TopicPatch) error
	Delete(ctx context.Context, id string) error
	DeleteByHobby(ctx context.Context, hobbyName string) error
}

// DiscussionRepository defines persistence operations for comments.
type DiscussionRepository interface {
	Create(ctx context.Context, d *domain.Discussion) (*domain.Discussion, error)
	FindByID(ctx context.Context, id string) (*domain.Discussion, error)
	ListByTopic(ctx context.Context, topicName string) ([]*domain.Discussion, error)
	Update(ctx context.Context, id string, patch DiscussionPatch) error
	Delete(ctx context.Context, id string) error
	DeleteByTopic(ctx context.Context, topicName string) error
	DeleteByHobby(ctx context.Context, hobbyName string) error
}
