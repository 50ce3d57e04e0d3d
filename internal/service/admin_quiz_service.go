package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Pangolin/internal/cache"
	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/model"
	"github.com/lshigami/Pangolin/internal/repository"
	"github.com/rs/zerolog/log"
)

// AdminQuizService covers the creator-facing catalog operations.
type AdminQuizService interface {
	CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error)
}

type adminQuizService struct {
	quizRepo      repository.QuizRepository
	analyticsRepo repository.AnalyticsRepository
	listingCache  *cache.Cache
}

func NewAdminQuizService(quizRepo repository.QuizRepository, analyticsRepo repository.AnalyticsRepository, listingCache *cache.Cache) AdminQuizService {
	return &adminQuizService{
		quizRepo:      quizRepo,
		analyticsRepo: analyticsRepo,
		listingCache:  listingCache,
	}
}

// CreateQuiz persists the quiz with its nested questions and answers, then
// inserts the zeroed analytics row. The two writes are separate round-trips;
// the attempt counter's upsert heals the gap if the second one is ever lost.
func (s *adminQuizService) CreateQuiz(req dto.QuizCreateDTO) (*dto.QuizResponseDTO, error) {
	quiz := model.Quiz{
		Title:       req.Title,
		Description: req.Description,
		Tags:        model.StringSlice(req.Tags),
		IsPublished: req.IsPublished,
		CreatedBy:   req.CreatedBy,
	}
	for _, r := range req.Results {
		quiz.Results = append(quiz.Results, model.QuizResult{
			Trait:       r.Trait,
			Title:       r.Title,
			Description: r.Description,
		})
	}
	for _, q := range req.Questions {
		question := model.Question{Text: q.Text}
		for _, a := range q.Answers {
			question.Answers = append(question.Answers, model.Answer{
				Text:   a.Text,
				Traits: model.TraitMap(a.Traits),
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := s.quizRepo.Create(&quiz); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("CreateQuiz: failed to create quiz")
		return nil, fmt.Errorf("creating quiz: %w", err)
	}

	analytics := model.QuizAnalytics{
		QuizID:       quiz.ID,
		ResultCounts: model.TraitCounts{},
	}
	if err := s.analyticsRepo.Create(&analytics); err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: failed to create analytics record")
		return nil, fmt.Errorf("creating analytics record for quiz %d: %w", quiz.ID, err)
	}

	if quiz.IsPublished {
		if err := s.listingCache.Del(cache.PublishedQuizzesKey); err != nil {
			log.Warn().Err(err).Msg("CreateQuiz: failed to invalidate listing cache")
		}
	}

	created, err := s.quizRepo.FindByIDWithQuestions(quiz.ID)
	if err != nil {
		log.Error().Err(err).Uint("quizID", quiz.ID).Msg("CreateQuiz: failed to reload created quiz")
		created = &quiz
	}

	var resp dto.QuizResponseDTO
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing quiz response: %w", err)
	}
	return &resp, nil
}
