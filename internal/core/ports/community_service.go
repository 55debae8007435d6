package ports

import (
	"context"

	"github.com/hobbyhub/community-platform/internal/core/domain"
)

// CreateHobbyInput carries the data needed to create a hobby.
type CreateHobbyInput struct {
	Name        string
	Description string
}

// CreateTopicInput carries the data needed to create a topic inside a hobby.
type CreateTopicInput struct {
	Name        string
	Description string
}

// HobbyDetail is the full hobby view: the hobby plus its topics.
type HobbyDetail struct {
	Hobby  *domain.Hobby
	Topics []*domain.Topic
}

// TopicDetail is the full topic view: the topic plus its discussions.
type TopicDetail struct {
	Topic       *domain.Topic
	Discussions []*domain.Discussion
}

// CommunityService defines use-case operations for the hobby → topic →
// discussion hierarchy. Every mutation validates parentage before the
// authorization decision runs.
type CommunityService interface {
	CreateHobby(ctx context.Context, principal *domain.User, input CreateHobbyInput) (*domain.Hobby, error)
	ListHobbies(ctx context.Context) ([]*domain.Hobby, error)
	GetHobby(ctx context.Context, name string) (*HobbyDetail, error)
	EditHobby(ctx context.Context, principal *domain.User, name string, patch HobbyPatch) error
	DeleteHobby(ctx context.Context, principal *domain.User, name string) error

	CreateTopic(ctx context.Context, principal *domain.User, hobbyName string, input CreateTopicInput) (*domain.Topic, error)
	GetTopic(ctx context.Context, hobbyName, topicName string) (*TopicDetail, error)
	EditTopic(ctx context.Context, principal *domain.User, hobbyName, topicName string, patch TopicPatch) error
	DeleteTopic(ctx context.Context, principal *domain.User, hobbyName, topicName string) error

	CreateComment(ctx context.Context, principal *domain.User, hobbyName, topicName, comment string) (*domain.Discussion, error)
	EditComment(ctx context.Context, principal *domain.User, hobbyName, topicName, commentID string, patch DiscussionPatch) error
	DeleteComment(ctx context.Context, principal *domain.User, hobbyName, topicName, commentID string) error
}
