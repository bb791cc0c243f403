package routes

import (
	"github.com/matheen-ahmed/fitness-tracker/controllers"
	"github.com/matheen-ahmed/fitness-tracker/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/local/register", controllers.Register)
		auth.POST("/local", controllers.Login)
	}

	// Protected routes
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		protected.GET("/users/me", controllers.Me)
		protected.PUT("/users/me", controllers.UpdateMe)

		protected.GET("/food-logs", controllers.ListFoodLogs)
		protected.POST("/food-logs", controllers.CreateFoodLog)
		protected.DELETE("/food-logs/:id", controllers.DeleteFoodLog)

		protected.GET("/activity-logs", controllers.ListActivityLogs)
		protected.POST("/activity-logs", controllers.CreateActivityLog)
		protected.DELETE("/activity-logs/:id", controllers.DeleteActivityLog)

		protected.POST("/image-analysis", controllers.AnalyzeImage)
	}

	return r
}
