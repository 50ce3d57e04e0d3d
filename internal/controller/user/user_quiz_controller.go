package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/service"
	"github.com/rs/zerolog/log"
)

type UserQuizController struct {
	userQuizService       service.UserQuizService
	quizSubmissionService service.QuizSubmissionService
}

func NewUserQuizController(uqs service.UserQuizService, qss service.QuizSubmissionService) *UserQuizController {
	return &UserQuizController{
		userQuizService:       uqs,
		quizSubmissionService: qss,
	}
}

// ListPublishedQuizzes godoc
// @Summary List published quizzes
// @Description Returns every published quiz projected to title, description and tags. Unpublished quizzes are never included.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quizzes [get]
func (c *UserQuizController) ListPublishedQuizzes(ctx *gin.Context) {
	quizzes, err := c.userQuizService.ListPublished()
	if err != nil {
		log.Error().Err(err).Msg("ListPublishedQuizzes: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, quizzes)
}

// SubmitQuiz godoc
// @Summary Submit quiz answers
// @Description Scores the submitted (question, answer) pairs into per-trait totals and a winning trait, and bumps the quiz's attempt counters. Result is null when nothing scored.
// @Tags Quizzes
// @Accept json
// @Produce json
// @Param id path int true "Quiz ID"
// @Param submission body dto.QuizSubmitDTO true "Submitted answers"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz id or body"
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/quizzes/{id}/submit [post]
func (c *UserQuizController) SubmitQuiz(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	result, err := c.quizSubmissionService.SubmitQuiz(uint(quizID), req)
	if err != nil {
		log.Error().Err(err).Uint64("quizID", quizID).Msg("SubmitQuiz: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetQuizAnalytics godoc
// @Summary Get attempt analytics for a quiz
// @Tags Quizzes
// @Produce json
// @Param id path int true "Quiz ID"
// @Success 200 {object} dto.QuizAnalyticsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid quiz id"
// @Failure 404 {object} dto.ErrorResponse "No analytics record for quiz"
// @Router /api/quizzes/{id}/analytics [get]
func (c *UserQuizController) GetQuizAnalytics(ctx *gin.Context) {
	quizID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid quiz id"})
		return
	}

	analytics, err := c.quizSubmissionService.GetQuizAnalytics(uint(quizID))
	if err != nil {
		if errors.Is(err, service.ErrAnalyticsNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Uint64("quizID", quizID).Msg("GetQuizAnalytics: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, analytics)
}
