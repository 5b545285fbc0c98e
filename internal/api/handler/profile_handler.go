package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/api/metrics"
	"github.com/userhub/identity-api/internal/api/middleware"
	"github.com/userhub/identity-api/internal/core/ports"
)

// ProfileHandler serves the authenticated user's own record.
type ProfileHandler struct {
	userService ports.UserService
}

func NewProfileHandler(userService ports.UserService) *ProfileHandler {
	return &ProfileHandler{userService: userService}
}

type updateProfileRequest struct {
	FirstName   string `json:"first_name" validate:"omitempty,min=2,max=100"`
	LastName    string `json:"last_name" validate:"omitempty,min=2,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
	Country     string `json:"country" validate:"omitempty,iso3166_1_alpha2"`
}

type changePasswordRequest struct {
	CurrentPassword    string `json:"current_password" validate:"required"`
	NewPassword        string `json:"new_password" validate:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" validate:"required"`
}

// Get returns the caller's profile.
//
// @Summary      Get profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	email, err := middleware.SubjectEmail(c)
	if err != nil {
		return err
	}

	user, err := h.userService.FindByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Profile retrieved successfully", user)
}

// Update mutates the caller's name, phone and country. Email, password and
// roles cannot be changed here.
//
// @Summary      Update profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields to update"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      409   {object}  Response
// @Router       /api/v1/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	email, err := middleware.SubjectEmail(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), email, ports.UpdateProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Country:     req.Country,
	})
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Profile updated successfully", user)
}

// ChangePassword replaces the caller's password after verifying the current one.
//
// @Summary      Change password
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      changePasswordRequest  true  "Password change request"
// @Success      200   {object}  Response
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /api/v1/profile/password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	email, err := middleware.SubjectEmail(c)
	if err != nil {
		return err
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.userService.ChangePassword(c.Request().Context(), email, ports.ChangePasswordInput{
		CurrentPassword:    req.CurrentPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("denied").Inc()
		return err
	}

	metrics.PasswordChangesTotal.WithLabelValues("success").Inc()
	return OK(c, http.StatusOK, "Password changed successfully", nil)
}
