package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hobbyhub/community-platform/internal/api/middleware"
	"github.com/hobbyhub/community-platform/internal/core/domain"
	"github.com/hobbyhub/community-platform/internal/core/ports"
)

// UserHandler handles HTTP requests for principal management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateProfileRequest struct {
	Name    *string  `json:"name"`
	Hobbies []string `json:"hobbies"`
}

type assignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin moderator user"`
}

type promoteRequest struct {
	HobbyName string `json:"hobby_name" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /users.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// ListAdmins handles GET /admin-users.
func (h *UserHandler) ListAdmins(c echo.Context) error {
	return h.listByRole(c, domain.RoleAdmin)
}

// ListModerators handles GET /moderator-users.
func (h *UserHandler) ListModerators(c echo.Context) error {
	return h.listByRole(c, domain.RoleModerator)
}

func (h *UserHandler) listByRole(c echo.Context, role string) error {
	users, err := h.service.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// UpdateProfile handles PUT /users/me/profile. Only fields present in the
// payload overwrite the stored record.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	patch := ports.UserProfilePatch{Name: req.Name, Hobbies: req.Hobbies}
	if err := h.service.UpdateProfile(c.Request().Context(), principal, patch); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "profile updated successfully"})
}

// DeleteMe handles DELETE /users/me — self-deletion only.
func (h *UserHandler) DeleteMe(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteAccount(c.Request().Context(), principal); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user deleted successfully"})
}

// AssignRole handles PUT /users/:id/role. Admin only.
//
// @Summary      Assign a role to a user
// @Tags         users
// @Security     BearerAuth
// @Param        id    path      string             true  "Target user id"
// @Param        body  body      assignRoleRequest  true  "New role"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id}/role [put]
func (h *UserHandler) AssignRole(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req assignRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	target, err := h.service.AssignRole(c.Request().Context(), principal, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "role for " + target.Email + " updated to " + req.Role})
}

// Promote handles POST /users/:email/promote. Admin only; grants the target
// moderation of one more hobby without clearing earlier grants.
func (h *UserHandler) Promote(c echo.Context) error {
	principal, err := middleware.Principal(c)
	if err != nil {
		return err
	}

	var req promoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	targetEmail := c.Param("email")
	if err := h.service.Promote(c.Request().Context(), principal, targetEmail, req.HobbyName); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "user " + targetEmail + " promoted to moderator of " + req.HobbyName})
}
