package app

import (
	"lexiscreen_backend/docs"
	"lexiscreen_backend/internal/config"
	"lexiscreen_backend/internal/middleware"
	"lexiscreen_backend/internal/model"
	"lexiscreen_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		screening := authGroup.Group("/screening")
		{
			screening.GET("/questions", c.screening.GetQuestions)
			screening.POST("/start", c.screening.Start)
			screening.POST("/answer", c.screening.Answer)
			screening.GET("/sequence", c.screening.SequenceStatus)
			screening.POST("/result", c.screening.Finish)
			screening.GET("/history", c.screening.History)
		}

		authGroup.GET("/exercises", c.exercise.List)
		authGroup.GET("/assignments", c.assignment.List)

		sessions := authGroup.Group("/sessions")
		{
			sessions.POST("", c.session.Create)
			sessions.GET("/:id", c.session.Get)
			sessions.POST("/:id/events", c.session.Event)
			sessions.DELETE("/:id", c.session.Close)
		}

		authGroup.GET("/results", c.result.ListMine)
		authGroup.POST("/results/:id/audio", c.result.UploadAudio)

		teacher := authGroup.Group("/teacher")
		teacher.Use(middleware.RoleMiddleware(model.Teacher))
		{
			teacher.POST("/assignments", c.assignment.Create)
			teacher.PUT("/assignments/:id", c.assignment.Update)
			teacher.DELETE("/assignments/:id", c.assignment.Delete)
			teacher.GET("/results", c.result.ListForTeacher)
		}
	}
}
