package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/jcanovas/vivenda/internal/errors"
	"github.com/jcanovas/vivenda/internal/geocode"
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Forward(ctx context.Context, query string) (*geocode.Result, error)
}

// GeocodeHandler handles forward-geocoding HTTP requests for the location
// step's map widget.
type GeocodeHandler struct {
	geocoder Geocoder
}

// NewGeocodeHandler creates a new GeocodeHandler instance.
func NewGeocodeHandler(geocoder Geocoder) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder: geocoder,
	}
}

// GeocodeRequest represents the query parameters for the geocode endpoint.
type GeocodeRequest struct {
	Query string `form:"q" binding:"required,min=3"`
}

// Forward handles GET /api/v1/geocode.
func (h *GeocodeHandler) Forward(c *gin.Context) {
	var req GeocodeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	result, err := h.geocoder.Forward(c.Request.Context(), req.Query)
	if err != nil {
		if errors.Is(err, geocode.ErrNoMatch) {
			apierrors.NotFound(c, "No match for this address")
			return
		}
		apierrors.InternalServerError(c, "Failed to geocode address", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
