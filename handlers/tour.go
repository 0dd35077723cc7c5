package handlers

import (
	"errors"
	"net/http"
	"time"

	tourRepo "realtorbot/database/repository/tour"
	"realtorbot/models"
	"realtorbot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TourHandler exposes scheduled property visits. Tours belong to the
// buyer who requested them; sellers never see this surface.
type TourHandler struct {
	Repo tourRepo.Repository
}

// CreateTourHandler handles POST /api/tours.
func (h *TourHandler) CreateTourHandler(c *gin.Context) {
	var tour models.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if tour.PropertyID == "" || tour.ScheduledDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "property_id and scheduled_date are required"})
		return
	}

	user := currentUser(c)
	tour.BuyerID = user.ID
	tour.Status = "scheduled"
	tour.CreatedAt = time.Now()
	tour.UpdatedAt = tour.CreatedAt

	id, err := h.Repo.Create(c.Request.Context(), tour)
	if err != nil {
		utils.GetLogger().Error("Failed to create tour", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule tour"})
		return
	}
	tour.ID = id
	c.JSON(http.StatusCreated, gin.H{"tour": tour})
}

// ListToursHandler handles GET /api/tours for the calling buyer.
func (h *TourHandler) ListToursHandler(c *gin.Context) {
	user := currentUser(c)
	tours, err := h.Repo.GetByBuyerID(c.Request.Context(), user.ID)
	if err != nil {
		utils.GetLogger().Error("Failed to list tours", zap.String("buyerId", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tours"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tours": tours, "count": len(tours)})
}

// GetTourHandler handles GET /api/tours/:id.
func (h *TourHandler) GetTourHandler(c *gin.Context) {
	tour, ok := h.ownedTour(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tour)
}

// UpdateTourHandler handles PUT /api/tours/:id.
func (h *TourHandler) UpdateTourHandler(c *gin.Context) {
	tour, ok := h.ownedTour(c)
	if !ok {
		return
	}

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	delete(patch, "id")
	delete(patch, "buyer_id")
	patch["updated_at"] = time.Now()

	if err := h.Repo.Update(c.Request.Context(), tour.ID, patch); err != nil {
		utils.GetLogger().Error("Failed to update tour", zap.String("id", tour.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tour"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tour updated"})
}

// DeleteTourHandler handles DELETE /api/tours/:id.
func (h *TourHandler) DeleteTourHandler(c *gin.Context) {
	tour, ok := h.ownedTour(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), tour.ID); err != nil {
		utils.GetLogger().Error("Failed to delete tour", zap.String("id", tour.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tour"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tour cancelled"})
}

// ownedTour fetches the tour in :id and enforces that the caller is its
// buyer, writing the error response itself on failure.
func (h *TourHandler) ownedTour(c *gin.Context) (*models.Tour, bool) {
	id := c.Param("id")
	tour, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour not found"})
			return nil, false
		}
		utils.GetLogger().Error("Failed to fetch tour", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tour"})
		return nil, false
	}
	if tour.BuyerID != currentUser(c).ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this tour"})
		return nil, false
	}
	return tour, true
}
