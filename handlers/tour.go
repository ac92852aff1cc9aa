package handlers

import (
	"errors"
	"net/http"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/tour"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler exposes tour management over HTTP.
type TourHandler struct {
	Svc    tour.TourService
	Logger *zap.Logger
}

// NewTourHandler creates a TourHandler.
func NewTourHandler(svc tour.TourService, logger *zap.Logger) *TourHandler {
	return &TourHandler{Svc: svc, Logger: logger}
}

// CreateTour handles POST /api/tours.
func (h *TourHandler) CreateTour(c *gin.Context) {
	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour payload", err.Error())
		return
	}
	created, err := h.Svc.CreateTour(c.Request.Context(), &t)
	if err != nil {
		h.respondTourError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tour": created})
}

// GetTour handles GET /api/tours/:id.
func (h *TourHandler) GetTour(c *gin.Context) {
	t, err := h.Svc.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondTourError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": t})
}

// SearchTours handles GET /api/tours?category=.
func (h *TourHandler) SearchTours(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing query parameter", "category is required")
		return
	}
	tours, err := h.Svc.SearchTours(c.Request.Context(), category)
	if err != nil {
		h.respondTourError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

// UpdateTour handles PUT /api/tours/:id.
func (h *TourHandler) UpdateTour(c *gin.Context) {
	var t models.Tour
	if err := c.ShouldBindJSON(&t); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour payload", err.Error())
		return
	}
	t.ID = c.Param("id")
	updated, err := h.Svc.UpdateTour(c.Request.Context(), &t)
	if err != nil {
		h.respondTourError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tour": updated})
}

// DeleteTour handles DELETE /api/tours/:id.
func (h *TourHandler) DeleteTour(c *gin.Context) {
	if err := h.Svc.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		h.respondTourError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tour deleted"})
}

func (h *TourHandler) respondTourError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, tour.ErrTourNotFound):
		utils.JSONError(c, http.StatusNotFound, "tour not found", "")
	default:
		h.Logger.Error("tour request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
