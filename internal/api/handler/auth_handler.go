package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/api/metrics"
	"github.com/userhub/identity-api/internal/api/middleware"
	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

type AuthHandler struct {
	userService ports.UserService
	authService ports.AuthService
}

func NewAuthHandler(userService ports.UserService, authService ports.AuthService) *AuthHandler {
	return &AuthHandler{userService: userService, authService: authService}
}

type registerRequest struct {
	FirstName       string   `json:"first_name" validate:"required,min=2,max=100"`
	LastName        string   `json:"last_name" validate:"required,min=2,max=100"`
	Email           string   `json:"email" validate:"required,email,max=255"`
	Password        string   `json:"password" validate:"required"`
	ConfirmPassword string   `json:"confirm_password" validate:"required"`
	PhoneNumber     string   `json:"phone_number" validate:"omitempty,e164"`
	Country         string   `json:"country" validate:"omitempty,iso3166_1_alpha2"`
	Roles           []string `json:"roles" validate:"required,min=1,max=3,dive,required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user account with its requested roles.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  Response
// @Failure      400   {object}  Response
// @Failure      409   {object}  Response
// @Failure      500   {object}  Response
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	user, err := h.userService.Register(c.Request().Context(), ports.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		PhoneNumber:     req.PhoneNumber,
		Country:         req.Country,
		Roles:           req.Roles,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registrationOutcome(err)).Inc()
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return OK(c, http.StatusCreated, "User registered successfully", user)
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  Response
// @Failure      401   {object}  Response
// @Failure      429   {object}  Response
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return OK(c, http.StatusOK, "Login successful", result)
}

// Me returns the authenticated caller's identity and roles.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Failure      401  {object}  Response
// @Router       /api/v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, err := middleware.SubjectEmail(c)
	if err != nil {
		return err
	}

	result, err := h.authService.GetCurrentUser(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return OK(c, http.StatusOK, "Current user retrieved", result)
}

func registrationOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmailExists), errors.Is(err, domain.ErrPhoneExists):
		return "conflict"
	case errors.Is(err, domain.ErrPasswordPolicy),
		errors.Is(err, domain.ErrPasswordMismatch),
		errors.Is(err, domain.ErrInvalidRoles):
		return "invalid"
	default:
		return "error"
	}
}

func loginOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "denied"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return "throttled"
	default:
		return "error"
	}
}
