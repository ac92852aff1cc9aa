package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/hotel"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HotelHandler exposes hotel and room management over HTTP.
type HotelHandler struct {
	Svc    hotel.HotelService
	Logger *zap.Logger
}

// NewHotelHandler creates a HotelHandler.
func NewHotelHandler(svc hotel.HotelService, logger *zap.Logger) *HotelHandler {
	return &HotelHandler{Svc: svc, Logger: logger}
}

// CreateHotel handles POST /api/hotels.
func (h *HotelHandler) CreateHotel(c *gin.Context) {
	var ht models.Hotel
	if err := c.ShouldBindJSON(&ht); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel payload", err.Error())
		return
	}
	created, err := h.Svc.CreateHotel(c.Request.Context(), &ht)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"hotel": created})
}

// GetHotel handles GET /api/hotels/:id.
func (h *HotelHandler) GetHotel(c *gin.Context) {
	ht, err := h.Svc.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": ht})
}

// SearchHotels handles GET /api/hotels?city=.
func (h *HotelHandler) SearchHotels(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameter", "city is required")
		return
	}
	hotels, err := h.Svc.SearchHotels(c.Request.Context(), city)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// UpdateHotel handles PUT /api/hotels/:id.
func (h *HotelHandler) UpdateHotel(c *gin.Context) {
	var ht models.Hotel
	if err := c.ShouldBindJSON(&ht); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid hotel payload", err.Error())
		return
	}
	ht.ID = c.Param("id")
	updated, err := h.Svc.UpdateHotel(c.Request.Context(), &ht)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hotel": updated})
}

// DeleteHotel handles DELETE /api/hotels/:id.
func (h *HotelHandler) DeleteHotel(c *gin.Context) {
	if err := h.Svc.DeleteHotel(c.Request.Context(), c.Param("id")); err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "hotel deleted"})
}

// AddRoom handles POST /api/hotels/:id/rooms.
func (h *HotelHandler) AddRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room payload", err.Error())
		return
	}
	room.HotelID = c.Param("id")
	created, err := h.Svc.AddRoom(c.Request.Context(), &room)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": created})
}

// ListRooms handles GET /api/hotels/:id/rooms.
func (h *HotelHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Svc.ListRooms(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// RoomAvailability handles GET /api/hotels/rooms/:roomID/availability?checkIn=&checkOut=.
func (h *HotelHandler) RoomAvailability(c *gin.Context) {
	checkIn, err := time.Parse(time.RFC3339, c.Query("checkIn"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkIn", "expected RFC3339 timestamp")
		return
	}
	checkOut, err := time.Parse(time.RFC3339, c.Query("checkOut"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOut", "expected RFC3339 timestamp")
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "checkOut must be after checkIn")
		return
	}

	available, err := h.Svc.IsRoomAvailable(c.Request.Context(), c.Param("roomID"), checkIn, checkOut)
	if err != nil {
		h.respondHotelError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomId": c.Param("roomID"), "available": available})
}

func (h *HotelHandler) respondHotelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, hotel.ErrHotelNotFound):
		utils.JSONError(c, http.StatusNotFound, "hotel not found", "")
	default:
		h.Logger.Error("hotel request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
