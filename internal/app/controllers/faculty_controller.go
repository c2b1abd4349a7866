package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/insider-navs/backend/internal/app/models"
	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/services"
	"github.com/insider-navs/backend/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

func parseFacultyID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Faculty ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// GetFaculty lists all faculty members
// @Summary List faculty
// @Description Retrieves all faculty members ordered by name
// @Tags faculty
// @Produce json
// @Success 200 {array} models.Faculty
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty [get]
func (c *FacultyController) GetFaculty(ctx *gin.Context) {
	faculty, err := c.facultyService.GetAllFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculty)
}

// GetFacultyByID retrieves a faculty member by ID
// @Summary Get faculty by ID
// @Tags faculty
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} models.Faculty
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.GetFacultyByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculty)
}

// CreateFaculty creates a new faculty member
// @Summary Create a faculty member
// @Description Creates a faculty member; a supplied location_id must reference an existing location
// @Tags faculty
// @Accept json
// @Produce json
// @Param request body dto.FacultyCreateRequest true "Faculty data"
// @Success 201 {object} models.Faculty
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or unknown location"
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.FacultyCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	faculty, err := c.facultyService.CreateFaculty(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, faculty)
}

// UpdateFacultyProfile partially updates a faculty profile
// @Summary Update faculty profile
// @Description Applies only the fields present in the payload; school and location are not settable here
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param request body models.FacultyPatch true "Fields to update"
// @Success 200 {object} models.Faculty
// @Failure 400 {object} dto.ErrorResponse "Empty payload"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty/{id} [put]
func (c *FacultyController) UpdateFacultyProfile(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	var patch models.FacultyPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	faculty, err := c.facultyService.UpdateProfile(ctx.Request.Context(), id, &patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculty)
}

// UpdateFacultyAvailability updates the availability flag only
// @Summary Update faculty availability
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Param request body dto.FacultyAvailabilityUpdate true "Availability flag"
// @Success 200 {object} models.Faculty
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty/{id}/availability [put]
func (c *FacultyController) UpdateFacultyAvailability(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	var req dto.FacultyAvailabilityUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	faculty, err := c.facultyService.UpdateAvailability(ctx.Request.Context(), id, *req.Availability)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculty)
}

// DeleteFaculty deletes a faculty member
// @Summary Delete a faculty member
// @Description Deletes a faculty member; the associated login user is removed automatically
// @Tags faculty
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /faculty/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseFacultyID(ctx)
	if !ok {
		return
	}

	if err := c.facultyService.DeleteFaculty(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Faculty member deleted successfully",
	})
}
