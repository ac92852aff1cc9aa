package handlers

import (
	"errors"
	"net/http"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/vehicle"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VehicleHandler exposes vehicle and driver management over HTTP.
type VehicleHandler struct {
	Svc    vehicle.VehicleService
	Logger *zap.Logger
}

// NewVehicleHandler creates a VehicleHandler.
func NewVehicleHandler(svc vehicle.VehicleService, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{Svc: svc, Logger: logger}
}

// CreateVehicle handles POST /api/vehicles.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid vehicle payload", err.Error())
		return
	}
	created, err := h.Svc.CreateVehicle(c.Request.Context(), &v)
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": created})
}

// GetVehicle handles GET /api/vehicles/:id.
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.Svc.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": v})
}

// SearchVehicles handles GET /api/vehicles?type=.
func (h *VehicleHandler) SearchVehicles(c *gin.Context) {
	vehicles, err := h.Svc.SearchVehicles(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// UpdateVehicle handles PUT /api/vehicles/:id.
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid vehicle payload", err.Error())
		return
	}
	v.ID = c.Param("id")
	updated, err := h.Svc.UpdateVehicle(c.Request.Context(), &v)
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": updated})
}

// DeleteVehicle handles DELETE /api/vehicles/:id.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	if err := h.Svc.DeleteVehicle(c.Request.Context(), c.Param("id")); err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted"})
}

// RegisterDriver handles POST /api/vehicles/drivers.
func (h *VehicleHandler) RegisterDriver(c *gin.Context) {
	var d models.Driver
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid driver payload", err.Error())
		return
	}
	created, err := h.Svc.RegisterDriver(c.Request.Context(), &d)
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"driver": created})
}

// ListAvailableDrivers handles GET /api/vehicles/drivers.
func (h *VehicleHandler) ListAvailableDrivers(c *gin.Context) {
	drivers, err := h.Svc.ListAvailableDrivers(c.Request.Context())
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

// AssignDriver handles POST /api/vehicles/:id/assign-driver.
func (h *VehicleHandler) AssignDriver(c *gin.Context) {
	var input struct {
		DriverID string `json:"driverId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment payload", err.Error())
		return
	}

	v, err := h.Svc.AssignDriver(c.Request.Context(), c.Param("id"), input.DriverID)
	if err != nil {
		h.respondVehicleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": v})
}

func (h *VehicleHandler) respondVehicleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vehicle.ErrVehicleNotFound):
		utils.JSONError(c, http.StatusNotFound, "vehicle not found", "")
	case errors.Is(err, vehicle.ErrDriverNotFound):
		utils.JSONError(c, http.StatusNotFound, "driver not found", "")
	case errors.Is(err, vehicle.ErrDriverUnavailable):
		utils.JSONError(c, http.StatusConflict, "driver is not available", "")
	default:
		h.Logger.Error("vehicle request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
