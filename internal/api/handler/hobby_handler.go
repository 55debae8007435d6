package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hobbyhub/community-platform/internal/api/middleware"
	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// HobbyHandler handles HTTP requests for the hobby → topic → discussion
// hierarchy.
type HobbyHandler struct {
	service ports.CommunityService
}

func NewHobbyHandler(service ports.CommunityService) *HobbyHandler {
	return &HobbyHandler{service: service}
}

// --- Request / Response types ---

type createHobbyRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type editHobbyRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createTopicRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type editTopicRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type createCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type editCommentRequest struct {
	Comment *string `json:"comment"`
}

type hobbyDetailResponse struct {
	Hobby  *domain.Hobby   `json:"hobby"`
	Topics []*domain.Topic `json:"topics"`
}

type topicDetailResponse struct {
	Topic       *domain.Topic        `json:"topic"`
	Discussions []*domain.Discussion `json:"discussions"`
}

// --- Hobby operations ---

// CreateHobby handles POST /hobbies.
//
// @Summary      Create a hobby
// @Tags         hobbies
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createHobbyRequest  true  "Hobby details"
// @Success      201   {object}  domain.Hobby
// @Failure      409   {object}  map[string]string
// @Router       /hobbies [post]
func (h *HobbyHandler) CreateHobby(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req createHobbyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hobby, err := h.service.CreateHobby(c.Request().Context(), principal, ports.CreateHobbyInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, hobby)
}

// ListHobbies handles GET /hobbies — public, no auth required.
func (h *HobbyHandler) ListHobbies(c echo.Context) error {
	hobbies, err := h.service.ListHobbies(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hobbies)
}

// GetHobby handles GET /hobbies/:hobby — the hobby plus its topics.
func (h *HobbyHandler) GetHobby(c echo.Context) error {
	detail, err := h.service.GetHobby(c.Request().Context(), c.Param("hobby"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, hobbyDetailResponse{Hobby: detail.Hobby, Topics: detail.Topics})
}

// EditHobby handles PUT /hobbies/:hobby — merge-patch.
func (h *HobbyHandler) EditHobby(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req editHobbyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.HobbyPatch{Name: req.Name, Description: req.Description}
	if err := h.service.EditHobby(c.Request().Context(), principal, c.Param("hobby"), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "hobby updated successfully"})
}

// DeleteHobby handles DELETE /hobbies/:hobby. Ownership alone is not
// sufficient for this one action.
func (h *HobbyHandler) DeleteHobby(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteHobby(c.Request().Context(), principal, c.Param("hobby")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "hobby deleted successfully"})
}

// --- Topic operations ---

// CreateTopic handles POST /hobbies/:hobby/topics.
func (h *HobbyHandler) CreateTopic(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req createTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	topic, err := h.service.CreateTopic(c.Request().Context(), principal, c.Param("hobby"), ports.CreateTopicInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, topic)
}

// GetTopic handles GET /hobbies/:hobby/topics/:topic — the topic plus its
// discussions.
func (h *HobbyHandler) GetTopic(c echo.Context) error {
	detail, err := h.service.GetTopic(c.Request().Context(), c.Param("hobby"), c.Param("topic"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topicDetailResponse{Topic: detail.Topic, Discussions: detail.Discussions})
}

// EditTopic handles PUT /hobbies/:hobby/topics/:topic — merge-patch.
func (h *HobbyHandler) EditTopic(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req editTopicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.TopicPatch{Name: req.Name, Description: req.Description}
	if err := h.service.EditTopic(c.Request().Context(), principal, c.Param("hobby"), c.Param("topic"), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "topic updated successfully"})
}

// DeleteTopic handles DELETE /hobbies/:hobby/topics/:topic.
func (h *HobbyHandler) DeleteTopic(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteTopic(c.Request().Context(), principal, c.Param("hobby"), c.Param("topic")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "topic deleted successfully"})
}

// --- Comment operations ---

// CreateComment handles POST /hobbies/:hobby/topics/:topic/comments.
func (h *HobbyHandler) CreateComment(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req createCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	comment, err := h.service.CreateComment(c.Request().Context(), principal, c.Param("hobby"), c.Param("topic"), req.Comment)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, comment)
}

// EditComment handles PUT /hobbies/:hobby/topics/:topic/comments/:id.
func (h *HobbyHandler) EditComment(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req editCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.DiscussionPatch{Comment: req.Comment}
	if err := h.service.EditComment(c.Request().Context(), principal, c.Param("hobby"), c.Param("topic"), c.Param("id"), patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment updated successfully"})
}

// DeleteComment handles DELETE /hobbies/:hobby/topics/:topic/comments/:id.
func (h *HobbyHandler) DeleteComment(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteComment(c.Request().Context(), principal, c.Param("hobby"), c.Param("topic"), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "comment deleted successfully"})
}
