package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"realtorbot/models"
	"realtorbot/services/listing"
	"realtorbot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PropertyHandler exposes the plain CRUD surface over listings, outside
// the conversational pipeline.
type PropertyHandler struct {
	Listings listing.Service
}

// ListPropertiesHandler handles GET /api/properties with optional
// structured filters and pagination, newest first.
func (h *PropertyHandler) ListPropertiesHandler(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	filters := models.SearchFilters{Status: c.DefaultQuery("status", models.ListingStatusActive)}
	if n, err := strconv.Atoi(c.Query("price_min")); err == nil && n > 0 {
		filters.PriceMin = &n
	}
	if n, err := strconv.Atoi(c.Query("price_max")); err == nil && n > 0 {
		filters.PriceMax = &n
	}
	if n, err := strconv.Atoi(c.Query("bedrooms_min")); err == nil && n > 0 {
		filters.BedroomsMin = &n
	}
	if n, err := strconv.Atoi(c.Query("bathrooms_min")); err == nil && n > 0 {
		filters.BathroomsMin = &n
	}
	if seller := c.Query("seller_id"); seller != "" {
		filters.SellerID = seller
	}

	listings, err := h.Listings.ListListings(c.Request.Context(), page, size, filters)
	if err != nil {
		utils.GetLogger().Error("Failed to list properties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list properties"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": listings, "count": len(listings)})
}

// GetPropertyHandler handles GET /api/properties/:id.
func (h *PropertyHandler) GetPropertyHandler(c *gin.Context) {
	id := c.Param("id")
	l, err := h.Listings.GetByID(c.Request.Context(), id)
	if err != nil {
		if listing.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch property", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch property"})
		return
	}
	c.JSON(http.StatusOK, l)
}

// CreatePropertyHandler handles POST /api/properties: the form-based
// path into the same creation handler the conversation uses.
func (h *PropertyHandler) CreatePropertyHandler(c *gin.Context) {
	var draft models.ListingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	user := currentUser(c)

	view, err := h.Listings.CreateFromDraft(c.Request.Context(), draft, user.ID)
	if err != nil {
		var missing *listing.MissingFieldsError
		var badPrice *listing.InvalidPriceError
		if errors.As(err, &missing) || errors.As(err, &badPrice) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("Failed to create property", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"listing": view})
}

// UpdatePropertyHandler handles PUT /api/properties/:id, owner only.
func (h *PropertyHandler) UpdatePropertyHandler(c *gin.Context) {
	id := c.Param("id")
	user := currentUser(c)

	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Listings.UpdateListing(c.Request.Context(), id, user.ID, patch); err != nil {
		h.respondMutationError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property updated"})
}

// DeletePropertyHandler handles DELETE /api/properties/:id, owner only.
func (h *PropertyHandler) DeletePropertyHandler(c *gin.Context) {
	id := c.Param("id")
	user := currentUser(c)

	if err := h.Listings.DeleteListing(c.Request.Context(), id, user.ID); err != nil {
		h.respondMutationError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Property deleted"})
}

func (h *PropertyHandler) respondMutationError(c *gin.Context, id string, err error) {
	var forbidden *listing.ForbiddenError
	switch {
	case listing.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not own this property"})
	default:
		utils.GetLogger().Error("Property mutation failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
