// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/services"
	"github.com/insider-navs/backend/internal/middleware"
)

// LocationController handles location-related operations
type LocationController struct {
	locationService services.LocationService
}

// NewLocationController creates a new LocationController
func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// GetLocations lists all locations
// @Summary List locations
// @Description Retrieves all locations ordered by label
// @Tags locations
// @Produce json
// @Success 200 {array} models.Location
// @Failure 500 {object} dto.ErrorResponse
// @Router /locations [get]
func (c *LocationController) GetLocations(ctx *gin.Context) {
	locations, err := c.locationService.GetAllLocations(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, locations)
}

// CreateLocation creates a new location
// @Summary Create a location
// @Description Creates a new location with a caller-supplied ID
// @Tags locations
// @Accept json
// @Produce json
// @Param request body dto.LocationCreateRequest true "Location data"
// @Success 201 {object} models.Location
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or duplicate ID"
// @Failure 500 {object} dto.ErrorResponse
// @Router /locations [post]
func (c *LocationController) CreateLocation(ctx *gin.Context) {
	var req dto.LocationCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	location, err := c.locationService.CreateLocation(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, location)
}

// UpdateLocation partially updates a location
// @Summary Update a location
// @Description Applies only the fields present in the payload
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID"
// @Param request body models.LocationPatch true "Fields to update"
// @Success 200 {object} models.Location
// @Failure 400 {object} dto.ErrorResponse "Empty payload"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /locations/{id} [put]
func (c *LocationController) UpdateLocation(ctx *gin.Context) {
	id := ctx.Param("id")

	var patch models.LocationPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	location, err := c.locationService.UpdateLocation(ctx.Request.Context(), id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, location)
}

// DeleteLocation deletes a location
// @Summary Delete a location
// @Description Deletes a location unless faculty members still reference it
// @Tags locations
// @Produce json
// @Param id path string true "Location ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 400 {object} dto.ErrorResponse "Location still in use"
// @Failure 404 {object} dto.ErrorResponse "Location not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /locations/{id} [delete]
func (c *LocationController) DeleteLocation(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.locationService.DeleteLocation(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Location deleted successfully",
	})
}
