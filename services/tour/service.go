package tour

import (
	"context"
	"errors"

	tourRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/tour"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrTourNotFound is returned when no tour matches the given ID.
var ErrTourNotFound = errors.New("tour not found")

// TourService defines guided-tour management operations.
type TourService interface {
	CreateTour(ctx context.Context, t *models.Tour) (*models.Tour, error)
	GetTour(ctx context.Context, id string) (*models.Tour, error)
	SearchTours(ctx context.Context, category string) ([]models.Tour, error)
	ListGuideTours(ctx context.Context, guideID string) ([]models.Tour, error)
	UpdateTour(ctx context.Context, t *models.Tour) (*models.Tour, error)
	DeleteTour(ctx context.Context, id string) error
}

// DefaultTourService implements TourService.
type DefaultTourService struct {
	Repo   tourRepo.TourRepository
	Logger *zap.Logger
}

// CreateTour lists a new tour.
func (s *DefaultTourService) CreateTour(ctx context.Context, t *models.Tour) (*models.Tour, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.Active = true
	if err := s.Repo.Create(ctx, t); err != nil {
		return nil, err
	}
	s.Logger.Info("tour created", zap.String("id", t.ID), zap.String("title", t.Title))
	return t, nil
}

// GetTour fetches a single tour.
func (s *DefaultTourService) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return t, nil
}

// SearchTours lists active tours in a category.
func (s *DefaultTourService) SearchTours(ctx context.Context, category string) ([]models.Tour, error) {
	return s.Repo.ListByCategory(ctx, category)
}

// ListGuideTours lists every tour run by a guide.
func (s *DefaultTourService) ListGuideTours(ctx context.Context, guideID string) ([]models.Tour, error) {
	return s.Repo.ListByGuide(ctx, guideID)
}

// UpdateTour modifies a tour listing.
func (s *DefaultTourService) UpdateTour(ctx context.Context, t *models.Tour) (*models.Tour, error) {
	if err := s.Repo.Update(ctx, t); err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	return t, nil
}

// DeleteTour removes a tour listing.
func (s *DefaultTourService) DeleteTour(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return ErrTourNotFound
		}
		return err
	}
	return nil
}
