package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/ports"
)

// AdminHandler serves user administration and role CRUD. All routes are
// mounted behind the Auth and RBAC(Admin) middleware.
type AdminHandler struct {
	userService ports.UserService
	roleService ports.RoleService
}

func NewAdminHandler(userService ports.UserService, roleService ports.RoleService) *AdminHandler {
	return &AdminHandler{userService: userService, roleService: roleService}
}

type createRoleRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"omitempty,max=255"`
}

type updateRoleRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// ListUsers returns all users.
//
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      403  {object}  Response
// @Router       /api/v1/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Users retrieved successfully", users)
}

// GetUser returns a single user by id.
//
// @Summary      Get user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userService.FindByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "User retrieved successfully", user)
}

// UsersByCountry returns users filtered by ISO country code.
//
// @Summary      List users by country
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        code  path      string  true  "ISO 3166-1 alpha-2 country code"
// @Success      200   {object}  Response
// @Router       /api/v1/admin/users/country/{code} [get]
func (h *AdminHandler) UsersByCountry(c echo.Context) error {
	users, err := h.userService.FindByCountry(c.Request().Context(), c.Param("code"))
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Users retrieved successfully", users)
}

// DeleteUser removes a user unconditionally.
//
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userService.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return OK(c, http.StatusOK, "User deleted successfully", nil)
}

// CreateRole adds a new role to the catalog.
//
// @Summary      Create role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role to create"
// @Success      201   {object}  Response
// @Failure      409   {object}  Response
// @Router       /api/v1/admin/roles [post]
func (h *AdminHandler) CreateRole(c echo.Context) error {
	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.roleService.CreateRole(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}
	return OK(c, http.StatusCreated, "Role created successfully", role)
}

// UpdateRole renames or re-describes a role.
//
// @Summary      Update role
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Role ID"
// @Param        body  body      updateRoleRequest  true  "Fields to update"
// @Success      200   {object}  Response
// @Failure      404   {object}  Response
// @Failure      409   {object}  Response
// @Router       /api/v1/admin/roles/{id} [put]
func (h *AdminHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, err := h.roleService.UpdateRole(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Role updated successfully", role)
}

// DeleteRole removes a role unless it is protected or still assigned.
//
// @Summary      Delete role
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Role ID"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Failure      409  {object}  Response
// @Router       /api/v1/admin/roles/{id} [delete]
func (h *AdminHandler) DeleteRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.roleService.DeleteRole(c.Request().Context(), id); err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Role deleted successfully", nil)
}
