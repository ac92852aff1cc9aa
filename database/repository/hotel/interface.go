package hotelRepo

import (
	"context"
	"errors"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
)

// ErrNotFound is returned when no hotel or room matches the given filter.
var ErrNotFound = errors.New("hotel record not found")

// HotelRepository defines methods for hotel and room data access.
type HotelRepository interface {
	CreateHotel(ctx context.Context, h *models.Hotel) error
	GetHotelByID(ctx context.Context, id string) (*models.Hotel, error)
	ListHotelsByCity(ctx context.Context, city string) ([]models.Hotel, error)
	ListHotelsByOwner(ctx context.Context, ownerID string) ([]models.Hotel, error)
	UpdateHotel(ctx context.Context, h *models.Hotel) error
	DeleteHotel(ctx context.Context, id string) error

	CreateRoom(ctx context.Context, room *models.Room) error
	GetRoomByID(ctx context.Context, id string) (*models.Room, error)
	ListRoomsByHotel(ctx context.Context, hotelID string) ([]models.Room, error)
	UpdateRoom(ctx context.Context, room *models.Room) error
	DeleteRoom(ctx context.Context, id string) error
}
