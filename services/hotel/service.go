package hotel

import (
	"context"
	"errors"
	"time"

	bookingRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/booking"
	hotelRepo "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/hotel"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrHotelNotFound is returned when no hotel or room matches the given ID.
var ErrHotelNotFound = errors.New("hotel not found")

// HotelService defines hotel and room management operations.
type HotelService interface {
	CreateHotel(ctx context.Context, h *models.Hotel) (*models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	SearchHotels(ctx context.Context, city string) ([]models.Hotel, error)
	ListOwnerHotels(ctx context.Context, ownerID string) ([]models.Hotel, error)
	UpdateHotel(ctx context.Context, h *models.Hotel) (*models.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error

	AddRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	ListRooms(ctx context.Context, hotelID string) ([]models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) (*models.Room, error)
	RemoveRoom(ctx context.Context, id string) error
	// IsRoomAvailable reports whether the room has no blocking booking
	// overlapping [checkIn, checkOut).
	IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error)
}

// DefaultHotelService implements HotelService.
type DefaultHotelService struct {
	Repo     hotelRepo.HotelRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// CreateHotel registers a new property. New listings await admin approval.
func (s *DefaultHotelService) CreateHotel(ctx context.Context, h *models.Hotel) (*models.Hotel, error) {
	if h.ID == "" {
		h.ID = uuid.New().String()
	}
	h.Approved = false
	if err := s.Repo.CreateHotel(ctx, h); err != nil {
		return nil, err
	}
	s.Logger.Info("hotel created", zap.String("id", h.ID), zap.String("city", h.Location.City))
	return h, nil
}

// GetHotel fetches a single hotel.
func (s *DefaultHotelService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	h, err := s.Repo.GetHotelByID(ctx, id)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

// SearchHotels lists approved hotels in a city.
func (s *DefaultHotelService) SearchHotels(ctx context.Context, city string) ([]models.Hotel, error) {
	return s.Repo.ListHotelsByCity(ctx, city)
}

// ListOwnerHotels lists every hotel belonging to an owner.
func (s *DefaultHotelService) ListOwnerHotels(ctx context.Context, ownerID string) ([]models.Hotel, error) {
	return s.Repo.ListHotelsByOwner(ctx, ownerID)
}

// UpdateHotel modifies a hotel listing.
func (s *DefaultHotelService) UpdateHotel(ctx context.Context, h *models.Hotel) (*models.Hotel, error) {
	if err := s.Repo.UpdateHotel(ctx, h); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

// DeleteHotel removes a hotel listing.
func (s *DefaultHotelService) DeleteHotel(ctx context.Context, id string) error {
	if err := s.Repo.DeleteHotel(ctx, id); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	return nil
}

// AddRoom adds a room type to a hotel.
func (s *DefaultHotelService) AddRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if _, err := s.GetHotel(ctx, room.HotelID); err != nil {
		return nil, err
	}
	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	room.Available = true
	if err := s.Repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListRooms lists the room types of a hotel.
func (s *DefaultHotelService) ListRooms(ctx context.Context, hotelID string) ([]models.Room, error) {
	return s.Repo.ListRoomsByHotel(ctx, hotelID)
}

// UpdateRoom modifies a room type.
func (s *DefaultHotelService) UpdateRoom(ctx context.Context, room *models.Room) (*models.Room, error) {
	if err := s.Repo.UpdateRoom(ctx, room); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return room, nil
}

// RemoveRoom deletes a room type.
func (s *DefaultHotelService) RemoveRoom(ctx context.Context, id string) error {
	if err := s.Repo.DeleteRoom(ctx, id); err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	return nil
}

// IsRoomAvailable reports whether the room is free for the requested stay.
// A room marked unavailable by the hotel always reports false.
func (s *DefaultHotelService) IsRoomAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) (bool, error) {
	room, err := s.Repo.GetRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, hotelRepo.ErrNotFound) {
			return false, ErrHotelNotFound
		}
		return false, err
	}
	if !room.Available {
		return false, nil
	}

	overlapping, err := s.Bookings.FindOverlapping(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return len(overlapping) == 0, nil
}
