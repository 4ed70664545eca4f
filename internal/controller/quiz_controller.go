package controller

import (
	"errors"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	orchestrator *service.OrchestratorService
	quizzes      *service.QuizService
}

func NewQuizController(orchestrator *service.OrchestratorService, quizzes *service.QuizService) *QuizController {
	return &QuizController{orchestrator: orchestrator, quizzes: quizzes}
}

type submitQuizRequest struct {
	LearnerID string            `json:"learner_id" binding:"required"`
	Answers   map[string]string `json:"answers"`
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Description Grades the answers, stores the submission, and advances the learner's path on a passing score
// @Tags quiz
// @Accept json
// @Produce json
// @Param quiz_id path string true "Quiz ID"
// @Param submission body submitQuizRequest true "Answers keyed by question id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/quiz/{quiz_id}/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	var req submitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	outcome, err := c.orchestrator.SubmitQuiz(ctx.Request.Context(), ctx.Param("quiz_id"), req.LearnerID, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrQuizNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "submit quiz", err)
		return
	}
	util.Success(ctx, outcome)
}

type submitPretestRequest struct {
	Answers map[string]string `json:"answers"`
}

// SubmitPretest godoc
// @Summary Submit pretest answers for grading
// @Tags quiz
// @Accept json
// @Produce json
// @Param pretest_id path string true "Pretest ID"
// @Param submission body submitPretestRequest true "Answers keyed by question id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/pretest/{pretest_id}/submit [post]
func (c *QuizController) SubmitPretest(ctx *gin.Context) {
	var req submitPretestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Answers == nil {
		req.Answers = map[string]string{}
	}

	pretest, err := c.quizzes.SubmitPretest(ctx.Request.Context(), ctx.Param("pretest_id"), req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrPretestNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, "submit pretest", err)
		return
	}
	util.SuccessFields(ctx, gin.H{
		"results":          pretest.Results,
		"overall_feedback": pretest.OverallFeedback.Data(),
		"weak_areas":       pretest.WeakAreas,
	})
}
