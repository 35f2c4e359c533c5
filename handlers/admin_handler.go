package handlers

import (
	"errors"
	"net/http"

	"bahasa-indah-nusantara/models"
	"bahasa-indah-nusantara/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the privileged endpoints gated by the service-role key.
// Responses are the raw shapes the scheduled jobs and admin tooling expect,
// not the regular API envelope.
type AdminHandler struct {
	adminService   services.AdminService
	suspendService services.SuspendService
}

func NewAdminHandler(adminService services.AdminService, suspendService services.SuspendService) *AdminHandler {
	return &AdminHandler{
		adminService:   adminService,
		suspendService: suspendService,
	}
}

// GetUsers handles GET /admin-get-users (and its legacy alias).
func (h *AdminHandler) GetUsers(c *gin.Context) {
	users, err := h.adminService.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ExpireSuspensions handles GET /expire-suspensions, invoked by the external
// scheduler. Idempotent: with nothing due it reports zero and changes nothing.
func (h *AdminHandler) ExpireSuspensions(c *gin.Context) {
	updated, err := h.suspendService.ExpireDue()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// GetEmailByUsername handles POST /get-email-by-username.
func (h *AdminHandler) GetEmailByUsername(c *gin.Context) {
	var req models.GetEmailByUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	email, err := h.adminService.GetEmailByUsername(req.Username)
	if err != nil {
		if errors.Is(err, services.ErrUserTidakDitemukan) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": email})
}
