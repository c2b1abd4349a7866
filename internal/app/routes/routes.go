package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insider-navs/backend/internal/app/controllers"
	"github.com/insider-navs/backend/internal/app/models/dto"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	locationController *controllers.LocationController,
	facultyController *controllers.FacultyController,
	flashNewsController *controllers.FlashNewsController,
	authController *controllers.AuthController,
	analyticsController *controllers.AnalyticsController,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Welcome to the Insider Navs API!"})
	})

	api := router.Group("/api")

	// Location routes
	locations := api.Group("/locations")
	{
		locations.GET("", locationController.GetLocations)
		locations.POST("", locationController.CreateLocation)
		locations.PUT("/:id", locationController.UpdateLocation)
		locations.DELETE("/:id", locationController.DeleteLocation)
	}

	// Faculty routes; the login route shares the prefix but is its own flow
	faculty := api.Group("/faculty")
	{
		faculty.GET("", facultyController.GetFaculty)
		faculty.GET("/:id", facultyController.GetFacultyByID)
		faculty.POST("", facultyController.CreateFaculty)
		faculty.PUT("/:id", facultyController.UpdateFacultyProfile)
		faculty.PUT("/:id/availability", facultyController.UpdateFacultyAvailability)
		faculty.DELETE("/:id", facultyController.DeleteFaculty)
		faculty.POST("/login", authController.FacultyLogin)
	}

	// Flash news routes
	flashNews := api.Group("/flash-news")
	{
		flashNews.GET("", flashNewsController.GetFlashNews)
		flashNews.POST("", flashNewsController.CreateFlashNews)
		flashNews.DELETE("/:id", flashNewsController.DeleteFlashNews)
	}

	// Admin login
	api.POST("/admin/login", authController.AdminLogin)

	// Analytics
	api.GET("/analytics", analyticsController.GetAnalytics)

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
