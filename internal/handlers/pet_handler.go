package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/roncastellon/BWM-walker-app-sub003/internal/models"
)

type PetHandler struct {
	db *gorm.DB
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	return &PetHandler{db: db}
}

type CreatePetRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Breed    string `json:"breed"`
	Notes    string `json:"notes"`
}

func (h *PetHandler) Create(c *gin.Context) {
	var req CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client_not_found"})
		return
	}

	pet := models.Pet{
		ClientID: req.ClientID,
		Name:     req.Name,
		Breed:    req.Breed,
		Notes:    req.Notes,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_pet"})
		return
	}

	c.JSON(http.StatusCreated, pet)
}
