package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// CommunityService implements the hobby → topic → discussion use-cases.
// Every mutation validates existence and parentage of the target before
// the authorization decision runs.
type CommunityService struct {
	hobbies     ports.HobbyRepository
	topics      ports.TopicRepository
	discussions ports.DiscussionRepository
	logger      zerolog.Logger
}

func NewCommunityService(
	hobbies ports.HobbyRepository,
	topics ports.TopicRepository,
	discussions ports.DiscussionRepository,
	logger zerolog.Logger,
) *CommunityService {
	return &CommunityService{
		hobbies:     hobbies,
		topics:      topics,
		discussions: discussions,
		logger:      logger,
	}
}

// CreateHobby creates a hobby owned by the principal. Any authenticated
// principal may create one; the name must be globally unique.
func (s *CommunityService) CreateHobby(ctx context.Context, principal *domain.User, input ports.CreateHobbyInput) (*domain.Hobby, error) {
	hobby := &domain.Hobby{
		Name:        input.Name,
		Description: input.Description,
		Owner:       principal.Email,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.hobbies.Create(ctx, hobby)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("hobby", created.Name).Str("owner", principal.Email).Msg("hobby created")
	return created, nil
}

func (s *CommunityService) ListHobbies(ctx context.Context) ([]*domain.Hobby, error) {
	return s.hobbies.List(ctx)
}

func (s *CommunityService) GetHobby(ctx context.Context, name string) (*ports.HobbyDetail, error) {
	hobby, err := s.hobbies.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	topics, err := s.topics.ListByHobby(ctx, name)
	if err != nil {
		return nil, err
	}
	return &ports.HobbyDetail{Hobby: hobby, Topics: topics}, nil
}

// EditHobby merge-patches a hobby. Owner, admin or a moderator scoped to
// the hobby may edit.
func (s *CommunityService) EditHobby(ctx context.Context, principal *domain.User, name string, patch ports.HobbyPatch) error {
	hobby, err := s.hobbies.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if !CanAct(principal, ActionEdit, hobby) {
		return domain.ErrForbidden
	}
	return s.hobbies.Update(ctx, name, patch)
}

// DeleteHobby removes a hobby and cascades to its topics and their
// discussions. Ownership alone does not authorize this: only an admin or a
// moderator scoped to the hobby may delete it.
func (s *CommunityService) DeleteHobby(ctx context.Context, principal *domain.User, name string) error {
	hobby, err := s.hobbies.FindByName(ctx, name)
	if err != nil {
		return err
	}
	if !CanAct(principal, ActionDelete, hobby) {
		return domain.ErrForbidden
	}

	if err := s.discussions.DeleteByHobby(ctx, name); err != nil {
		return err
	}
	if err := s.topics.DeleteByHobby(ctx, name); err != nil {
		return err
	}
	if err := s.hobbies.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Info().Str("hobby", name).Str("actor", principal.Email).Msg("hobby deleted")
	return nil
}

// CreateTopic creates a topic inside an existing hobby. The topic name must
// be unique within that hobby.
func (s *CommunityService) CreateTopic(ctx context.Context, principal *domain.User, hobbyName string, input ports.CreateTopicInput) (*domain.Topic, error) {
	if _, err := s.hobbies.FindByName(ctx, hobbyName); err != nil {
		return nil, err
	}

	topic := &domain.Topic{
		Name:        input.Name,
		Description: input.Description,
		HobbyName:   hobbyName,
		Owner:       principal.Email,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.topics.Create(ctx, topic)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("topic", created.Name).Str("hobby", hobbyName).Str("owner", principal.Email).Msg("topic created")
	return created, nil
}

func (s *CommunityService) GetTopic(ctx context.Context, hobbyName, topicName string) (*ports.TopicDetail, error) {
	topic, err := s.checkTopic(ctx, hobbyName, topicName)
	if err != nil {
		return nil, err
	}
	discussions, err := s.discussions.ListByTopic(ctx, topicName)
	if err != nil {
		return nil, err
	}
	return &ports.TopicDetail{Topic: topic, Discussions: discussions}, nil
}

// EditTopic merge-patches a topic after validating its parentage.
func (s *CommunityService) EditTopic(ctx context.Context, principal *domain.User, hobbyName, topicName string, patch ports.TopicPatch) error {
	topic, err := s.checkTopic(ctx, hobbyName, topicName)
	if err != nil {
		return err
	}
	if !CanAct(principal, ActionEdit, topic) {
		return domain.ErrForbidden
	}
	return s.topics.Update(ctx, topic.ID, patch)
}

// DeleteTopic removes a topic and cascades to its discussions.
func (s *CommunityService) DeleteTopic(ctx context.Context, principal *domain.User, hobbyName, topicName string) error {
	topic, err := s.checkTopic(ctx, hobbyName, topicName)
	if err != nil {
		return err
	}
	if !CanAct(principal, ActionDelete, topic) {
		return domain.ErrForbidden
	}

	if err := s.discussions.DeleteByTopic(ctx, topicName); err != nil {
		return err
	}
	if err := s.topics.Delete(ctx, topic.ID); err != nil {
		return err
	}

	s.logger.Info().Str("topic", topicName).Str("hobby", hobbyName).Str("actor", principal.Email).Msg("topic deleted")
	return nil
}

// CreateComment posts a comment inside a topic. Any authenticated principal
// may comment; there is no uniqueness constraint.
func (s *CommunityService) CreateComment(ctx context.Context, principal *domain.User, hobbyName, topicName, comment string) (*domain.Discussion, error) {
	topic, err := s.checkTopic(ctx, hobbyName, topicName)
	if err != nil {
		return nil, err
	}

	discussion := &domain.Discussion{
		Comment:   comment,
		TopicName: topic.Name,
		HobbyName: topic.HobbyName,
		Owner:     principal.Email,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.discussions.Create(ctx, discussion)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("topic", topicName).Str("owner", principal.Email).Msg("comment created")
	return created, nil
}

// EditComment merge-patches a comment after validating the full chain:
// topic belongs to hobby, comment belongs to topic.
func (s *CommunityService) EditComment(ctx context.Context, principal *domain.User, hobbyName, topicName, commentID string, patch ports.DiscussionPatch) error {
	discussion, err := s.checkComment(ctx, hobbyName, topicName, commentID)
	if err != nil {
		return err
	}
	if !CanAct(principal, ActionEdit, discussion) {
		return domain.ErrForbidden
	}
	return s.discussions.Update(ctx, commentID, patch)
}

// DeleteComment removes a comment after validating the full chain.
func (s *CommunityService) DeleteComment(ctx context.Context, principal *domain.User, hobbyName, topicName, commentID string) error {
	discussion, err := s.checkComment(ctx, hobbyName, topicName, commentID)
	if err != nil {
		return err
	}
	if !CanAct(principal, ActionDelete, discussion) {
		return domain.ErrForbidden
	}

	if err := s.discussions.Delete(ctx, commentID); err != nil {
		return err
	}

	s.logger.Info().Str("comment_id", commentID).Str("actor", principal.Email).Msg("comment deleted")
	return nil
}

// checkTopic fetches a topic by name and validates it belongs to the stated
// hobby. A topic that exists under a different hobby is a client input
// error, distinct from not-found.
func (s *CommunityService) checkTopic(ctx context.Context, hobbyName, topicName string) (*domain.Topic, error) {
	topic, err := s.topics.FindByName(ctx, topicName)
	if err != nil {
		return nil, err
	}
	if topic.HobbyName != hobbyName {
		return nil, domain.ErrMismatchedParent
	}
	return topic, nil
}

// checkComment validates the topic chain, then that the comment belongs to
// the stated topic.
func (s *CommunityService) checkComment(ctx context.Context, hobbyName, topicName, commentID string) (*domain.Discussion, error) {
	if _, err := s.checkTopic(ctx, hobbyName, topicName); err != nil {
		return nil, err
	}

	discussion, err := s.discussions.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if discussion.TopicName != topicName {
		return nil, domain.ErrMismatchedParent
	}
	return discussion, nil
}
