package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/helabhl/bank-churn-mlops/handlers"
	"github.com/helabhl/bank-churn-mlops/middleware"
	"github.com/helabhl/bank-churn-mlops/web"
)

func SetupRoutes(hm *handlers.HandlerManager, log zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))

	// Dashboard page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(web.DashboardHTML))
	})

	api := r.Group("/api")
	{
		api.GET("/config", hm.PredictionHandler.Config)
		api.GET("/health", hm.PredictionHandler.Health)
		api.POST("/predict", hm.PredictionHandler.Predict)
		api.POST("/predict/batch", hm.BatchHandler.Predict)
		api.POST("/batch/preview", hm.BatchHandler.Preview)
		api.POST("/drift", hm.PredictionHandler.Drift)
	}

	return r
}
