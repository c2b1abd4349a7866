package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/services"
	"github.com/insider-navs/backend/internal/middleware"
)

// FlashNewsController handles flash news operations
type FlashNewsController struct {
	newsService services.FlashNewsService
}

// NewFlashNewsController creates a new FlashNewsController
func NewFlashNewsController(newsService services.FlashNewsService) *FlashNewsController {
	return &FlashNewsController{
		newsService: newsService,
	}
}

// GetFlashNews lists all flash news items
// @Summary List flash news
// @Description Retrieves all announcements, most recent first
// @Tags flash-news
// @Produce json
// @Success 200 {array} models.FlashNews
// @Failure 500 {object} dto.ErrorResponse
// @Router /flash-news [get]
func (c *FlashNewsController) GetFlashNews(ctx *gin.Context) {
	news, err := c.newsService.GetAllNews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, news)
}

// CreateFlashNews creates a new flash news item
// @Summary Create a flash news item
// @Description Trims the message and rejects it when empty
// @Tags flash-news
// @Accept json
// @Produce json
// @Param request body dto.FlashNewsCreateRequest true "Announcement"
// @Success 201 {object} models.FlashNews
// @Failure 400 {object} dto.ErrorResponse "Empty message"
// @Failure 500 {object} dto.ErrorResponse
// @Router /flash-news [post]
func (c *FlashNewsController) CreateFlashNews(ctx *gin.Context) {
	var req dto.FlashNewsCreateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewBindingErrorResponse(err))
		return
	}

	item, err := c.newsService.CreateNews(ctx.Request.Context(), req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// DeleteFlashNews deletes a flash news item
// @Summary Delete a flash news item
// @Tags flash-news
// @Produce json
// @Param id path int true "Flash news ID"
// @Success 200 {object} dto.DeleteResponse
// @Failure 404 {object} dto.ErrorResponse "Flash news item not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /flash-news/{id} [delete]
func (c *FlashNewsController) DeleteFlashNews(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Flash news ID must be a valid number"))
		return
	}

	if err := c.newsService.DeleteNews(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "Flash news item deleted successfully",
	})
}
