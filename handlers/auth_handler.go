package handlers

import (
	"bahasa-indah-nusantara/helper"
	"bahasa-indah-nusantara/middleware"
	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	izinService services.IzinService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, izinService services.IzinService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		izinService: izinService,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Pendaftaran berhasil", response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Login berhasil", response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	actor := middleware.ActorFromContext(c)
	if actor.UserID == 0 {
		h.Helper.SendUnauthorizedError(c, "User not found in context", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(actor.UserID)
	if err != nil {
		h.Helper.SendNotFoundError(c, "User tidak ditemukan", h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Profil dimuat", user)
}

// GetIzin returns the caller's permission records, one per content type they
// have been granted anything on.
func (h *AuthHandler) GetIzin(c *gin.Context) {
	actor := middleware.ActorFromContext(c)

	izin, err := h.izinService.GetByUser(actor.UserID)
	if err != nil {
		h.Helper.SendDatabaseError(c, err.Error(), h.Helper.EmptyJsonMap())
		return
	}

	h.Helper.SendSuccess(c, "Success", izin)
}
