package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/userhub/identity-api/internal/core/domain"
	"github.com/userhub/identity-api/internal/core/ports"
)

// UserService orchestrates registration and profile operations.
type UserService struct {
	users     ports.UserRepository
	roles     ports.RoleService
	passwords ports.PasswordService
	logger    zerolog.Logger
}

func NewUserService(users ports.UserRepository, roles ports.RoleService, passwords ports.PasswordService, logger zerolog.Logger) *UserService {
	return &UserService{users: users, roles: roles, passwords: passwords, logger: logger}
}

// Register runs the registration pipeline. Each gate aborts with its specific
// error; nothing is persisted until every gate has passed. A storage-level
// unique violation from a concurrent registration surfaces as the same
// conflict error the pre-checks produce.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := domain.NormalizeEmail(input.Email)

	if !s.passwords.MeetsPolicy(input.Password) {
		return nil, domain.ErrPasswordPolicy
	}

	if input.Password != input.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	invalid, err := s.roles.ValidateRoleNames(ctx, input.Roles)
	if err != nil {
		return nil, err
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRoles, strings.Join(invalid, ", "))
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	phone := strings.TrimSpace(input.PhoneNumber)
	if phone != "" {
		exists, err := s.users.ExistsByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrPhoneExists
		}
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	roles, err := s.roles.ResolveRoles(ctx, input.Roles)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Email:        email,
		PasswordHash: hash,
		PhoneNumber:  phone,
		Country:      strings.ToUpper(strings.TrimSpace(input.Country)),
		CreatedAt:    time.Now().UTC(),
		Roles:        roles,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
}

func (s *UserService) FindByCountry(ctx context.Context, country string) ([]domain.User, error) {
	return s.users.FindByCountry(ctx, strings.ToUpper(strings.TrimSpace(country)))
}

func (s *UserService) ListAll(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

// UpdateProfile mutates name, phone and country only. Email, password and
// roles are immutable through this path.
func (s *UserService) UpdateProfile(ctx context.Context, email string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	phone := strings.TrimSpace(input.PhoneNumber)
	if phone != "" && phone != user.PhoneNumber {
		exists, err := s.users.ExistsByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrPhoneExists
		}
	}

	if v := strings.TrimSpace(input.FirstName); v != "" {
		user.FirstName = v
	}
	if v := strings.TrimSpace(input.LastName); v != "" {
		user.LastName = v
	}
	if phone != "" {
		user.PhoneNumber = phone
	}
	if v := strings.ToUpper(strings.TrimSpace(input.Country)); v != "" {
		user.Country = v
	}

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("profile updated")
	return user, nil
}

// DeleteUser removes a user unconditionally.
func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

// ChangePassword verifies the current password, then applies the same
// confirmation and policy gates as registration before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, email string, input ports.ChangePasswordInput) error {
	user, err := s.users.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return err
	}

	if !s.passwords.Verify(input.CurrentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}

	if input.NewPassword != input.ConfirmNewPassword {
		return domain.ErrPasswordMismatch
	}

	if !s.passwords.MeetsPolicy(input.NewPassword) {
		return domain.ErrPasswordPolicy
	}

	hash, err := s.passwords.Hash(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", user.ID).Msg("password changed")
	return nil
}
