package app

import (
	"studyquest_backend/docs"
	"studyquest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/profile", c.profile.GetProfile)
		api.POST("/sessions", c.profile.RecordSession)
		api.GET("/dashboard", c.dashboard.GetDashboard)
		api.GET("/statistics", c.dashboard.GetStatistics)
	}

	a.registerTaskRoutes(api, c)
	a.registerTimerRoutes(api, c)

	timetable := api.Group("/timetable")
	{
		timetable.GET("", c.timetable.GetTimetable)
		timetable.PUT("/:day/:period", c.timetable.UpdateSlot)
	}

	shop := api.Group("/shop")
	{
		shop.GET("", c.shop.GetShop)
		shop.POST("/:id/buy", c.shop.BuyItem)
	}

	api.GET("/notifications/ws", c.notification.HandleWS)
}

func (a *App) registerTaskRoutes(api *gin.RouterGroup, c *controllers) {
	tasks := api.Group("/tasks")
	{
		tasks.GET("", c.task.ListTasks)
		tasks.POST("", c.task.CreateTask)
		tasks.POST("/:id/complete", c.task.CompleteTask)
		tasks.POST("/:id/reschedule", c.task.RescheduleTask)
		tasks.DELETE("/:id", c.task.DeleteTask)
	}
}

func (a *App) registerTimerRoutes(api *gin.RouterGroup, c *controllers) {
	timer := api.Group("/timer")
	{
		timer.GET("", c.timer.GetTimer)
		timer.POST("/mode", c.timer.SetMode)
		timer.POST("/subject", c.timer.SetSubject)
		timer.POST("/toggle", c.timer.Toggle)
		timer.POST("/stop", c.timer.Stop)
	}
}
