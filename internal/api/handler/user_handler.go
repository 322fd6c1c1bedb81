package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/contentory/publishing-api/internal/api/metrics"
	"github.com/contentory/publishing-api/internal/core/ports"
)

// UserHandler exposes the admin promotion and demotion routes. The
// authorization ordering lives in the user service, not here: the handler
// only resolves the principal and the target id.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Promote grants the ADMIN role to another user.
//
// @Summary      Grant admin role
// @Tags         user
// @Produce      json
// @Param        user_id  query     string  true  "Target user id"
// @Success      200      {object}  roleUpdateResponse
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /user/admin_role [patch]
func (h *UserHandler) Promote(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	targetID := c.QueryParam("user_id")
	if targetID == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "user_id is required")
	}

	id, err := h.userService.Promote(c.Request().Context(), actor, targetID)
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("promote").Inc()
	return c.JSON(http.StatusOK, roleUpdateResponse{UpdatedUserID: id})
}

// Demote revokes the ADMIN role from another user.
//
// @Summary      Revoke admin role
// @Tags         user
// @Produce      json
// @Param        user_id  query     string  true  "Target user id"
// @Success      200      {object}  roleUpdateResponse
// @Failure      403      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Failure      422      {object}  map[string]string
// @Router       /user/admin_role [delete]
func (h *UserHandler) Demote(c echo.Context) error {
	actor, err := principal(c)
	if err != nil {
		return err
	}
	targetID := c.QueryParam("user_id")
	if targetID == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "user_id is required")
	}

	id, err := h.userService.Demote(c.Request().Context(), actor, targetID)
	if err != nil {
		return err
	}

	metrics.RoleChangesTotal.WithLabelValues("demote").Inc()
	return c.JSON(http.StatusOK, roleUpdateResponse{UpdatedUserID: id})
}
