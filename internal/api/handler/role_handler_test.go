package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/userhub/identity-api/internal/core/domain"
)

type stubRoleService struct {
	roles []domain.Role
	role  *domain.Role
	err   error

	deletedID int64
}

func (s *stubRoleService) ListRoles(context.Context) ([]domain.Role, error) {
	return s.roles, s.err
}

func (s *stubRoleService) ListRoleNames(context.Context) ([]string, error) {
	names := make([]string, 0, len(s.roles))
	for _, r := range s.roles {
		names = append(names, r.Name)
	}
	return names, s.err
}

func (s *stubRoleService) GetRole(context.Context, int64) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) GetRoleByName(context.Context, string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) ResolveRoles(context.Context, []string) ([]domain.Role, error) {
	return s.roles, s.err
}

func (s *stubRoleService) ValidateRoleNames(context.Context, []string) ([]string, error) {
	return nil, s.err
}

func (s *stubRoleService) RoleExists(context.Context, string) (bool, error) {
	return s.role != nil, s.err
}

func (s *stubRoleService) CreateRole(context.Context, string, string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) UpdateRole(context.Context, int64, *string, *string) (*domain.Role, error) {
	return s.role, s.err
}

func (s *stubRoleService) DeleteRole(_ context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

func (s *stubRoleService) SeedDefaultRoles(context.Context) error {
	return s.err
}

func TestRoleHandler_List(t *testing.T) {
	roles := &stubRoleService{roles: []domain.Role{
		{ID: 1, Name: domain.RoleGeneralUser},
		{ID: 4, Name: domain.RoleAdmin},
	}}
	h := NewRoleHandler(roles)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/roles", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	resp := decodeResponse(t, rec)
	data, _ := resp.Data.([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 roles, got %v", resp.Data)
	}
}

func TestRoleHandler_Names(t *testing.T) {
	roles := &stubRoleService{roles: []domain.Role{{ID: 1, Name: domain.RoleGeneralUser}}}
	h := NewRoleHandler(roles)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/roles/names", "")
	if err := h.Names(c); err != nil {
		t.Fatalf("Names returned error: %v", err)
	}

	resp := decodeResponse(t, rec)
	data, _ := resp.Data.([]any)
	if len(data) != 1 || data[0] != domain.RoleGeneralUser {
		t.Fatalf("unexpected payload: %v", resp.Data)
	}
}

func TestRoleHandler_Get(t *testing.T) {
	roles := &stubRoleService{role: &domain.Role{ID: 4, Name: domain.RoleAdmin}}
	h := NewRoleHandler(roles)

	c, rec := newJSONContext(t, http.MethodGet, "/api/v1/roles/4", "")
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Get(c); err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	resp := decodeResponse(t, rec)
	data, _ := resp.Data.(map[string]any)
	if data["name"] != domain.RoleAdmin {
		t.Fatalf("unexpected payload: %v", resp.Data)
	}
}

func TestRoleHandler_Get_BadID(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{})

	for _, raw := range []string{"abc", "0", "-1"} {
		c, _ := newJSONContext(t, http.MethodGet, "/api/v1/roles/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		err := h.Get(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("id %q: expected 400, got %v", raw, err)
		}
	}
}

func TestRoleHandler_Get_NotFound(t *testing.T) {
	h := NewRoleHandler(&stubRoleService{err: domain.ErrRoleNotFound})

	c, _ := newJSONContext(t, http.MethodGet, "/api/v1/roles/99", "")
	c.SetParamNames("id")
	c.SetParamValues("99")

	if err := h.Get(c); !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
