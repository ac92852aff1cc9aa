package handlers

import (
	"errors"
	"net/http"

	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/user"
	"github.com/SSMShehan/serendibgo-v2-sub005/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account management over HTTP.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// RegisterUser handles POST /api/users/register.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var input struct {
		FirstName string      `json:"firstName" binding:"required"`
		LastName  string      `json:"lastName" binding:"required"`
		Email     string      `json:"email" binding:"required,email"`
		Phone     string      `json:"phone"`
		Password  string      `json:"password" binding:"required,min=8"`
		Role      models.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid registration payload", err.Error())
		return
	}

	u := &models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      input.Role,
	}
	created, token, err := h.Svc.RegisterUser(c.Request.Context(), u, input.Password)
	if err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": created, "token": token})
}

// AuthenticateUser handles POST /api/users/login.
func (h *UserHandler) AuthenticateUser(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid login payload", err.Error())
		return
	}

	u, token, err := h.Svc.AuthenticateUser(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// GetUserByID handles GET /api/users/id/:id.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	u, err := h.Svc.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateUser handles PUT /api/users/update/:id.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var u models.User
	if err := c.ShouldBindJSON(&u); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid user payload", err.Error())
		return
	}
	u.ID = c.Param("id")

	updated, err := h.Svc.UpdateUser(c.Request.Context(), &u)
	if err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": updated})
}

// DeleteUser handles DELETE /api/users/delete/:id.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.Svc.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}

// RevokeAuthToken handles DELETE /api/users/revoke/:id.
func (h *UserHandler) RevokeAuthToken(c *gin.Context) {
	if err := h.Svc.RevokeAuthToken(c.Request.Context(), c.Param("id")); err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "auth token revoked"})
}

// GetAllUsers handles GET /api/admin/users.
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Svc.GetAllUsers(c.Request.Context())
	if err != nil {
		h.respondUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UserHandler) respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusConflict, "email already registered", "")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
	case errors.Is(err, user.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "user not found", "")
	default:
		h.Logger.Error("user request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "")
	}
}
