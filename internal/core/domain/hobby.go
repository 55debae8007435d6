package domain

import "time"

// Resource is the shape every permission decision operates against.
// ResourceOwner is the identity that created the resource (immutable).
// ModerationScope is the hobby name that anchors moderator authority:
// the hobby itself for a Hobby, the parent hobby for a Topic or Discussion.
type Resource interface {
	ResourceOwner() string
	ModerationScope() string
}

// Hobby is a top-level community group.
type Hobby struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Owner       string    `json:"owner" bson:"owner"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func (h *Hobby) ResourceOwner() string   { return h.Owner }
func (h *Hobby) ModerationScope() string { return h.Name }

// Topic is a discussion area nested inside a hobby.
type Topic struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	HobbyName   string    `json:"hobby_name" bson:"hobby_name"`
	Owner       string    `json:"owner" bson:"owner"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

func (t *Topic) ResourceOwner() string   { return t.Owner }
func (t *Topic) ModerationScope() string { return t.HobbyName }

// Discussion is a single comment inside a topic.
type Discussion struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Comment   string    `json:"comment" bson:"comment"`
	TopicName string    `json:"topic_name" bson:"topic_name"`
	HobbyName string    `json:"hobby_name" bson:"hobby_name"`
	Owner     string    `json:"owner" bson:"owner"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func (d *Discussion) ResourceOwner() string   { return d.Owner }
func (d *Discussion) ModerationScope() string { return d.HobbyName }
