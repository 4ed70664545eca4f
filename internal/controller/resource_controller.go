package controller

import (
	"errors"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	content *service.ContentService
	quizzes *service.QuizService
}

func NewResourceController(content *service.ContentService, quizzes *service.QuizService) *ResourceController {
	return &ResourceController{content: content, quizzes: quizzes}
}

// GetResource godoc
// @Summary Get a learning resource
// @Description Returns the resource including its status; clients poll while status is generating
// @Tags resource
// @Produce json
// @Param resource_id path string true "Resource ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/resource/{resource_id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	resource, err := c.content.GetResource(ctx.Param("resource_id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "get resource", err)
		return
	}
	util.Success(ctx, resource)
}

// GetResourceQuiz godoc
// @Summary Create a quiz for a resource
// @Description Generates questions matching the resource's topic and difficulty
// @Tags resource
// @Produce json
// @Param resource_id path string true "Resource ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/resource/{resource_id}/quiz [get]
func (c *ResourceController) GetResourceQuiz(ctx *gin.Context) {
	quiz, err := c.quizzes.CreateResourceQuiz(ctx.Request.Context(), ctx.Param("resource_id"))
	if err != nil {
		if errors.Is(err, util.ErrResourceNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "create resource quiz", err)
		return
	}
	util.Success(ctx, gin.H{
		"quiz_id":   quiz.ID,
		"questions": quiz.Questions,
	})
}
