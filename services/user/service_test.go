package user

import (
	"context"
	"testing"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByTokenHash(ctx context.Context, hash string) (*models.User, error) {
	args := m.Called(ctx, hash)
	if u, ok := args.Get(0).(*models.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if us, ok := args.Get(0).([]models.User); ok {
		return us, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func newUserService(repo *mockUserRepo) *DefaultUserService {
	return &DefaultUserService{Repo: repo, Logger: zap.NewNop()}
}

func TestRegisterUser(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nimal@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := newUserService(repo)

	u := &models.User{FirstName: "Nimal", LastName: "Perera", Email: "nimal@example.com"}
	created, token, err := svc.RegisterUser(context.Background(), u, "s3cret-pass")

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, models.RoleTourist, created.Role)
	assert.True(t, created.Active)
	assert.Equal(t, utils.HashToken(token), created.TokenHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-pass")))
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{ID: "u-1", Email: "taken@example.com"}, nil)
	svc := newUserService(repo)

	_, _, err := svc.RegisterUser(context.Background(), &models.User{Email: "taken@example.com"}, "pw")
	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create")
}

func TestAuthenticateUser(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	stored := &models.User{
		ID:           "u-1",
		Email:        "nimal@example.com",
		PasswordHash: string(hash),
		TokenHash:    "old-hash",
		Active:       true,
	}

	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nimal@example.com").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := newUserService(repo)

	u, token, err := svc.AuthenticateUser(context.Background(), "nimal@example.com", "s3cret-pass")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	// The token rotates on every login.
	assert.Equal(t, utils.HashToken(token), u.TokenHash)
	assert.NotEqual(t, "old-hash", u.TokenHash)
}

func TestAuthenticateUser_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret-pass"), bcrypt.DefaultCost)
	stored := &models.User{ID: "u-1", PasswordHash: string(hash), Active: true}

	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nimal@example.com").Return(stored, nil)
	svc := newUserService(repo)

	_, _, err := svc.AuthenticateUser(context.Background(), "nimal@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateUser_UnknownOrInactive(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)
	repo.On("GetByEmail", mock.Anything, "inactive@example.com").
		Return(&models.User{ID: "u-2", Active: false}, nil)
	svc := newUserService(repo)

	_, _, err := svc.AuthenticateUser(context.Background(), "nobody@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.AuthenticateUser(context.Background(), "inactive@example.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRevokeAuthToken(t *testing.T) {
	stored := &models.User{ID: "u-1", TokenHash: "some-hash"}
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.TokenHash == ""
	})).Return(nil)
	svc := newUserService(repo)

	assert.NoError(t, svc.RevokeAuthToken(context.Background(), "u-1"))
	repo.AssertExpectations(t)
}

func TestUpdateUser_PreservesCredentials(t *testing.T) {
	stored := &models.User{
		ID:           "u-1",
		PasswordHash: "pw-hash",
		TokenHash:    "tok-hash",
		Role:         models.RoleAdmin,
	}
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, "u-1").Return(stored, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	svc := newUserService(repo)

	updated, err := svc.UpdateUser(context.Background(), &models.User{
		ID:        "u-1",
		FirstName: "New",
		Role:      models.RoleTourist, // must not be able to self-promote/demote
	})

	assert.NoError(t, err)
	assert.Equal(t, "pw-hash", updated.PasswordHash)
	assert.Equal(t, "tok-hash", updated.TokenHash)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}
