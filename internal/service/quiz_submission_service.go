package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// QuizSubmissionService scores submitted answers and maintains the per-quiz
// attempt analytics.
type QuizSubmissionService interface {
	SubmitQuiz(quizID uint, req dto.QuizSubmitDTO) (*dto.SubmissionResultDTO, error)
	GetQuizAnalytics(quizID uint) (*dto.QuizAnalyticsDTO, error)
}

type quizSubmissionService struct {
	questionRepo  repository.QuestionRepository
	analyticsRepo repository.AnalyticsRepository
}

func NewQuizSubmissionService(questionRepo repository.QuestionRepository, analyticsRepo repository.AnalyticsRepository) QuizSubmissionService {
	return &quizSubmissionService{
		questionRepo:  questionRepo,
		analyticsRepo: analyticsRepo,
	}
}

// SubmitQuiz runs the scoring engine over the quiz's questions and, when a
// winner exists, records the attempt. A submission that produced no trait
// scores (unknown quiz, all pairs stale, empty trait maps) is answered with a
// null result and does not count as an attempt.
func (s *quizSubmissionService) SubmitQuiz(quizID uint, req dto.QuizSubmitDTO) (*dto.SubmissionResultDTO, error) {
	questions, err := s.questionRepo.FindByQuizID(quizID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Msg("SubmitQuiz: failed to fetch questions")
		return nil, fmt.Errorf("fetching questions for quiz %d: %w", quizID, err)
	}

	scores, order := ScoreAnswers(questions, req.Answers)
	resp := &dto.SubmissionResultDTO{Scores: scores}

	winner, ok := WinningTrait(scores, order)
	if !ok {
		log.Warn().Uint("quizID", quizID).Int("answerCount", len(req.Answers)).Msg("SubmitQuiz: submission produced no trait scores")
		return resp, nil
	}
	resp.Result = &winner

	if err := s.analyticsRepo.RecordAttempt(quizID, winner); err != nil {
		log.Error().Err(err).Uint("quizID", quizID).Str("winner", winner).Msg("SubmitQuiz: failed to record attempt")
		return nil, fmt.Errorf("recording attempt for quiz %d: %w", quizID, err)
	}

	return resp, nil
}

func (s *quizSubmissionService) GetQuizAnalytics(quizID uint) (*dto.QuizAnalyticsDTO, error) {
	analytics, err := s.analyticsRepo.FindByQuizID(quizID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnalyticsNotFound
		}
		log.Error().Err(err).Uint("quizID", quizID).Msg("GetQuizAnalytics: repository error")
		return nil, fmt.Errorf("fetching analytics for quiz %d: %w", quizID, err)
	}

	return &dto.QuizAnalyticsDTO{
		QuizID:        analytics.QuizID,
		TotalAttempts: analytics.TotalAttempts,
		ResultCounts:  analytics.ResultCounts,
		LastAttemptAt: analytics.LastAttemptAt,
	}, nil
}
