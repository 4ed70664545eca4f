package app

import (
	"ai_tutor_backend/docs"
	"ai_tutor_backend/pkg/monitoring"

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
		api.GET("/health", c.health.Health)

		api.POST("/learner/create", c.learner.CreateLearner)
		api.GET("/learner/:learner_id/path", c.learner.GetLearningPath)
		api.GET("/learner/:learner_id/progress", c.learner.GetProgress)
		api.POST("/learner/:learner_id/pretest", c.learner.StartPretest)

		api.POST("/pretest/:pretest_id/submit", c.quiz.SubmitPretest)
		api.POST("/quiz/:quiz_id/submit", c.quiz.SubmitQuiz)

		api.GET("/resource/:resource_id", c.resource.GetResource)
		api.GET("/resource/:resource_id/quiz", c.resource.GetResourceQuiz)

		api.GET("/analytics/dashboard", c.analytics.Dashboard)
	}
}
