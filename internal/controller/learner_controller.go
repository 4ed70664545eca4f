package controller

import (
	"errors"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	orchestrator *service.OrchestratorService
	quizzes      *service.QuizService
}

func NewLearnerController(orchestrator *service.OrchestratorService, quizzes *service.QuizService) *LearnerController {
	return &LearnerController{orchestrator: orchestrator, quizzes: quizzes}
}

// CreateLearner godoc
// @Summary Create a learner profile and start path generation
// @Description Stores the profile, builds the initial learning path, and generates content in the background
// @Tags learner
// @Accept json
// @Produce json
// @Param profile body service.IntakeInput true "Learner profile"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /api/learner/create [post]
func (c *LearnerController) CreateLearner(ctx *gin.Context) {
	var input service.IntakeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, _, err := c.orchestrator.ProcessNewLearner(ctx.Request.Context(), input)
	if err != nil {
		util.LogInternalError(ctx, "create learner", err)
		return
	}
	util.Success(ctx, result)
}

// GetLearningPath godoc
// @Summary Get a learner's path with the current resource resolved
// @Tags learner
// @Produce json
// @Param learner_id path string true "Learner ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/learner/{learner_id}/path [get]
func (c *LearnerController) GetLearningPath(ctx *gin.Context) {
	state, err := c.orchestrator.GetPathState(ctx.Param("learner_id"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) || errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "get learning path", err)
		return
	}
	util.Success(ctx, state)
}

// GetProgress godoc
// @Summary Get a learner's progress report
// @Tags learner
// @Produce json
// @Param learner_id path string true "Learner ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/learner/{learner_id}/progress [get]
func (c *LearnerController) GetProgress(ctx *gin.Context) {
	report, err := c.orchestrator.GetProgress(ctx.Param("learner_id"))
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) || errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "get progress", err)
		return
	}
	util.Success(ctx, report)
}

type startPretestRequest struct {
	Subject string `json:"subject"`
}

// StartPretest godoc
// @Summary Start a diagnostic pretest for a learner
// @Tags learner
// @Accept json
// @Produce json
// @Param learner_id path string true "Learner ID"
// @Param body body startPretestRequest false "Pretest subject"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/learner/{learner_id}/pretest [post]
func (c *LearnerController) StartPretest(ctx *gin.Context) {
	var req startPretestRequest
	// The body is optional; subject defaults to algebra.
	_ = ctx.ShouldBindJSON(&req)
	if req.Subject == "" {
		req.Subject = "algebra"
	}

	pretest, err := c.quizzes.StartPretest(ctx.Request.Context(), ctx.Param("learner_id"), req.Subject)
	if err != nil {
		if errors.Is(err, util.ErrLearnerNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "start pretest", err)
		return
	}
	util.SuccessFields(ctx, gin.H{
		"pretest_id": pretest.ID,
		"questions":  pretest.Questions,
	})
}
