package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// stubCommunityService implements ports.CommunityService with overridable
// function fields; unset methods panic to catch unexpected calls.
type stubCommunityService struct {
	createHobbyFn func(ctx context.Context, principal *domain.User, input ports.CreateHobbyInput) (*domain.Hobby, error)
	editTopicFn   func(ctx context.Context, principal *domain.User, hobbyName, topicName string, patch ports.TopicPatch) error
	getTopicFn    func(ctx context.Context, hobbyName, topicName string) (*ports.TopicDetail, error)
	deleteFn      func(ctx context.Context, principal *domain.User, hobbyName, topicName, commentID string) error
}

func (s *stubCommunityService) CreateHobby(ctx context.Context, principal *domain.User, input ports.CreateHobbyInput) (*domain.Hobby, error) {
	return s.createHobbyFn(ctx, principal, input)
}

func (s *stubCommunityService) ListHobbies(context.Context) ([]*domain.Hobby, error) {
	panic("not used")
}

func (s *stubCommunityService) GetHobby(context.Context, string) (*ports.HobbyDetail, error) {
	panic("not used")
}

func (s *stubCommunityService) EditHobby(context.Context, *domain.User, string, ports.HobbyPatch) error {
	panic("not used")
}

func (s *stubCommunityService) DeleteHobby(context.Context, *domain.User, string) error {
	panic("not used")
}

func (s *stubCommunityService) CreateTopic(context.Context, *domain.User, string, ports.CreateTopicInput) (*domain.Topic, error) {
	panic("not used")
}

func (s *stubCommunityService) GetTopic(ctx context.Context, hobbyName, topicName string) (*ports.TopicDetail, error) {
	return s.getTopicFn(ctx, hobbyName, topicName)
}

func (s *stubCommunityService) EditTopic(ctx context.Context, principal *domain.User, hobbyName, topicName string, patch ports.TopicPatch) error {
	return s.editTopicFn(ctx, principal, hobbyName, topicName, patch)
}

func (s *stubCommunityService) DeleteTopic(context.Context, *domain.User, string, string) error {
	panic("not used")
}

func (s *stubCommunityService) CreateComment(context.Context, *domain.User, string, string, string) (*domain.Discussion, error) {
	panic("not used")
}

func (s *stubCommunityService) EditComment(context.Context, *domain.User, string, string, string, ports.DiscussionPatch) error {
	panic("not used")
}

func (s *stubCommunityService) DeleteComment(ctx context.Context, principal *domain.User, hobbyName, topicName, commentID string) error {
	return s.deleteFn(ctx, principal, hobbyName, topicName, commentID)
}

func newAuthedContext(t *testing.T, method, path, body string, principal *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set("principal", principal)
	}
	return c, rec
}

func TestHobbyHandler_CreateHobby(t *testing.T) {
	alice := &domain.User{Email: "alice@example.com", Role: domain.RoleUser}
	svc := &stubCommunityService{
		createHobbyFn: func(_ context.Context, principal *domain.User, input ports.CreateHobbyInput) (*domain.Hobby, error) {
			if principal.Email != alice.Email {
				t.Fatalf("wrong principal: %s", principal.Email)
			}
			if input.Name != "hiking" || input.Description != "boots on" {
				t.Fatalf("wrong input: %+v", input)
			}
			return &domain.Hobby{ID: "h1", Name: input.Name, Description: input.Description, Owner: principal.Email}, nil
		},
	}
	h := NewHobbyHandler(svc)

	body := `{"name":"hiking","description":"boots on"}`
	c, rec := newAuthedContext(t, http.MethodPost, "/hobbies", body, alice)

	if err := h.CreateHobby(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp domain.Hobby
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Owner != alice.Email {
		t.Fatalf("owner missing in response: %+v", resp)
	}
}

func TestHobbyHandler_CreateHobby_NoPrincipal(t *testing.T) {
	h := NewHobbyHandler(&stubCommunityService{})
	c, _ := newAuthedContext(t, http.MethodPost, "/hobbies", `{"name":"hiking"}`, nil)

	err := h.CreateHobby(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestHobbyHandler_CreateHobby_MissingName(t *testing.T) {
	alice := &domain.User{Email: "alice@example.com", Role: domain.RoleUser}
	h := NewHobbyHandler(&stubCommunityService{
		createHobbyFn: func(context.Context, *domain.User, ports.CreateHobbyInput) (*domain.Hobby, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	})
	c, _ := newAuthedContext(t, http.MethodPost, "/hobbies", `{"description":"no name"}`, alice)

	err := h.CreateHobby(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestHobbyHandler_EditTopic_PatchSemantics(t *testing.T) {
	alice := &domain.User{Email: "alice@example.com", Role: domain.RoleUser}
	var got ports.TopicPatch
	svc := &stubCommunityService{
		editTopicFn: func(_ context.Context, _ *domain.User, hobbyName, topicName string, patch ports.TopicPatch) error {
			if hobbyName != "hiking" || topicName != "trails" {
				t.Fatalf("wrong target: %s/%s", hobbyName, topicName)
			}
			got = patch
			return nil
		},
	}
	h := NewHobbyHandler(svc)

	// Only description is present: the name pointer must stay nil so the
	// stored name survives untouched.
	body := `{"description":"updated"}`
	c, rec := newAuthedContext(t, http.MethodPut, "/hobbies/hiking/topics/trails", body, alice)
	c.SetParamNames("hobby", "topic")
	c.SetParamValues("hiking", "trails")

	if err := h.EditTopic(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Name != nil {
		t.Fatalf("absent field bound as non-nil: %q", *got.Name)
	}
	if got.Description == nil || *got.Description != "updated" {
		t.Fatalf("description not bound: %v", got.Description)
	}
}

func TestHobbyHandler_GetTopic(t *testing.T) {
	svc := &stubCommunityService{
		getTopicFn: func(_ context.Context, hobbyName, topicName string) (*ports.TopicDetail, error) {
			return &ports.TopicDetail{
				Topic:       &domain.Topic{Name: topicName, HobbyName: hobbyName},
				Discussions: []*domain.Discussion{{ID: "c1", Comment: "hi", TopicName: topicName}},
			}, nil
		},
	}
	h := NewHobbyHandler(svc)

	c, rec := newAuthedContext(t, http.MethodGet, "/hobbies/hiking/topics/trails", "", nil)
	c.SetParamNames("hobby", "topic")
	c.SetParamValues("hiking", "trails")

	if err := h.GetTopic(c); err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp topicDetailResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Topic.Name != "trails" || len(resp.Discussions) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestHobbyHandler_DeleteComment_ForwardsErrors(t *testing.T) {
	alice := &domain.User{Email: "alice@example.com", Role: domain.RoleUser}
	svc := &stubCommunityService{
		deleteFn: func(_ context.Context, _ *domain.User, hobbyName, topicName, commentID string) error {
			if hobbyName != "hiking" || topicName != "trails" || commentID != "c42" {
				t.Fatalf("wrong target: %s/%s/%s", hobbyName, topicName, commentID)
			}
			return domain.ErrForbidden
		},
	}
	h := NewHobbyHandler(svc)

	c, _ := newAuthedContext(t, http.MethodDelete, "/hobbies/hiking/topics/trails/comments/c42", "", alice)
	c.SetParamNames("hobby", "topic", "id")
	c.SetParamValues("hiking", "trails", "c42")

	if err := h.DeleteComment(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
