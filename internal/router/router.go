package router

import (
	"github.com/gin-gonic/gin"

	"github.com/hraza/pakretail-datagen/config"
	"github.com/hraza/pakretail-datagen/internal/app/controller"
	"github.com/hraza/pakretail-datagen/internal/middleware"
)

type Router struct {
	runController *controller.RunController
	config        *config.Config
}

func NewRouter(runController *controller.RunController, cfg *config.Config) *Router {
	return &Router{
		runController: runController,
		config:        cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "pakretail data generator is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		runs := v1.Group("/runs")
		{
			runs.POST("", r.runController.CreateRun)
			runs.GET("/latest", r.runController.LatestRun)
		}
	}

	return router
}
