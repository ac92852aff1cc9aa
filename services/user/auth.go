package user

import (
	"context"
	"fmt"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Auth tokens are valid for a week; revocation clears the stored hash.
const tokenTTL = 7 * 24 * time.Hour

// RegisterUser creates an account and returns it with a fresh auth token.
func (s *DefaultUserService) RegisterUser(ctx context.Context, u *models.User, password string) (*models.User, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if u.Role == "" {
		u.Role = models.RoleTourist
	}
	u.PasswordHash = string(hash)
	u.Active = true

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	u.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	s.Logger.Info("user registered", zap.String("id", u.ID), zap.String("role", string(u.Role)))
	return u, token, nil
}

// AuthenticateUser verifies credentials and rotates the auth token.
func (s *DefaultUserService) AuthenticateUser(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if u == nil || !u.Active {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, u.Email, tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate auth token: %w", err)
	}
	u.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, "", err
	}

	return u, token, nil
}

// RevokeAuthToken signs the user out everywhere by clearing the stored hash.
func (s *DefaultUserService) RevokeAuthToken(ctx context.Context, id string) error {
	u, err := s.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	u.TokenHash = ""
	if err := s.Repo.Update(ctx, u); err != nil {
		return err
	}
	s.Logger.Info("auth token revoked", zap.String("id", id))
	return nil
}
