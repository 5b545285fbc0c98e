package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/ports"
)

// RoleHandler serves the public, read-only role catalog.
type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List returns all roles.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Success      200  {object}  Response
// @Router       /api/v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.ListRoles(c.Request().Context())
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Roles retrieved successfully", roles)
}

// Names returns only the role display names.
//
// @Summary      List role names
// @Tags         roles
// @Produce      json
// @Success      200  {object}  Response
// @Router       /api/v1/roles/names [get]
func (h *RoleHandler) Names(c echo.Context) error {
	names, err := h.roleService.ListRoleNames(c.Request().Context())
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Role names retrieved successfully", names)
}

// Get returns a single role by id.
//
// @Summary      Get role
// @Tags         roles
// @Produce      json
// @Param        id   path      int  true  "Role ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	role, err := h.roleService.GetRole(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Role retrieved successfully", role)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
