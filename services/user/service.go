package user

import (
	"context"
	"errors"

	userRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/user"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"go.uber.org/zap"
)

// UserService defines account management and authentication operations.
type UserService interface {
	RegisterUser(ctx context.Context, u *models.User, password string) (*models.User, string, error)
	AuthenticateUser(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, u *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	RevokeAuthToken(ctx context.Context, id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// GetUserByID fetches a single user record.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetAllUsers fetches every user record.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateUser modifies profile fields. Credentials and role are managed through
// their dedicated flows and are preserved from the stored record.
func (s *DefaultUserService) UpdateUser(ctx context.Context, u *models.User) (*models.User, error) {
	existing, err := s.GetUserByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	u.PasswordHash = existing.PasswordHash
	u.TokenHash = existing.TokenHash
	u.Role = existing.Role
	u.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	s.Logger.Info("user deleted", zap.String("id", id))
	return nil
}
