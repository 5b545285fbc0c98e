package ports

import (
	"context"

	"github.com/userhub/identity-api/internal/core/domain"
)

// RegisterInput carries a registration request into the user service.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	PhoneNumber     string
	Country         string
	Roles           []string
}

// UpdateProfileInput carries the mutable profile fields. Email, password and
// roles are not updatable through this path.
type UpdateProfileInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Country     string
}

// ChangePasswordInput carries a password change request.
type ChangePasswordInput struct {
	CurrentPassword    string
	NewPassword        string
	ConfirmNewPassword string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByCountry(ctx context.Context, country string) ([]domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ChangePassword(ctx context.Context, email string, input ChangePasswordInput) error
}
