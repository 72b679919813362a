package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apierrors "github.com/jcanovas/vivenda/internal/errors"
	"github.com/jcanovas/vivenda/internal/services"
)

// ListingHandler handles discovery and listing detail HTTP requests.
type ListingHandler struct {
	service services.ListingService
}

// NewListingHandler creates a new ListingHandler instance.
func NewListingHandler(service services.ListingService) *ListingHandler {
	return &ListingHandler{
		service: service,
	}
}

// Search handles GET /api/v1/listings.
// Discovery parameters are never rejected: malformed values degrade to their
// defaults inside the query package, so the only failure mode here is the
// store itself.
func (h *ListingHandler) Search(c *gin.Context) {
	result, err := h.service.Search(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to search listings", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/v1/listings/:id.
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid listing id", nil)
		return
	}

	listing, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			apierrors.NotFound(c, "Listing not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load listing", err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// Delete handles DELETE /api/v1/listings/:id.
// Deleting an absent listing still returns 204.
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid listing id", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		apierrors.InternalServerError(c, "Failed to delete listing", err)
		return
	}

	c.Status(http.StatusNoContent)
}
