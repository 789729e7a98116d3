package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

// List returns active staff, optionally narrowed by role
// (walker|sitter|admin).
func (h *StaffHandler) List(c *gin.Context) {
	role := strings.ToLower(strings.TrimSpace(c.Query("role")))

	q := h.db.Where("active = ?", true)
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var staff []models.User
	if err := q.
		Order("name ASC").
		Find(&staff).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_staff"})
		return
	}

	c.JSON(http.StatusOK, staff)
}
