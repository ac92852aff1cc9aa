package handlers

import (
	userRepoPkg "github.com/SSMShehan/serendibgo-v2-sub005/database/repository/user"
)

// HandlerBundle groups all endpoint handlers plus the repositories the
// route-level middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Users    *UserHandler
	Bookings *BookingHandler
	Hotels   *HotelHandler
	Tours    *TourHandler
	Vehicles *VehicleHandler
}
