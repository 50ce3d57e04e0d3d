package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lshigami/Pangolin/internal/cache"
	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/repository"
	"github.com/rs/zerolog/log"
)

const publishedListingTTL = 5 * time.Minute

// UserQuizService covers the taker-facing catalog operations.
type UserQuizService interface {
	ListPublished() ([]dto.QuizSummaryDTO, error)
}

type userQuizService struct {
	quizRepo     repository.QuizRepository
	listingCache *cache.Cache
}

func NewUserQuizService(quizRepo repository.QuizRepository, listingCache *cache.Cache) UserQuizService {
	return &userQuizService{quizRepo: quizRepo, listingCache: listingCache}
}

// ListPublished returns every published quiz projected to title, description
// and tags. The listing is served read-through from Redis when configured.
func (s *userQuizService) ListPublished() ([]dto.QuizSummaryDTO, error) {
	if cached, err := s.listingCache.Get(cache.PublishedQuizzesKey); err != nil {
		log.Warn().Err(err).Msg("ListPublished: cache read failed, falling back to store")
	} else if cached != "" {
		var summaries []dto.QuizSummaryDTO
		if err := json.Unmarshal([]byte(cached), &summaries); err == nil {
			return summaries, nil
		}
		log.Warn().Msg("ListPublished: dropping undecodable cache entry")
	}

	quizzes, err := s.quizRepo.FindPublished()
	if err != nil {
		log.Error().Err(err).Msg("ListPublished: repository error")
		return nil, fmt.Errorf("fetching published quizzes: %w", err)
	}

	summaries := make([]dto.QuizSummaryDTO, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, dto.QuizSummaryDTO{
			Title:       quiz.Title,
			Description: quiz.Description,
			Tags:        []string(quiz.Tags),
		})
	}

	if payload, err := json.Marshal(summaries); err == nil {
		if err := s.listingCache.Set(cache.PublishedQuizzesKey, string(payload), publishedListingTTL); err != nil {
			log.Warn().Err(err).Msg("ListPublished: cache write failed")
		}
	}

	return summaries, nil
}
