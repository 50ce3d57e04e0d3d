package repository

import (
	"github.com/lshigami/Pangolin/internal/model"
	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	Create(analytics *model.QuizAnalytics) error
	FindByQuizID(quizID uint) (*model.QuizAnalytics, error)
	RecordAttempt(quizID uint, winningTrait string) error
}

type analyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) Create(analytics *model.QuizAnalytics) error {
	return r.db.Create(analytics).Error
}

func (r *analyticsRepository) FindByQuizID(quizID uint) (*model.QuizAnalytics, error) {
	var analytics model.QuizAnalytics
	if err := r.db.Where("quiz_id = ?", quizID).First(&analytics).Error; err != nil {
		return nil, err
	}
	return &analytics, nil
}

// recordAttemptSQL bumps the attempt counters in one statement so concurrent
// submissions never lose updates. The upsert also self-heals quizzes whose
// analytics row went missing: the first attempt recreates it.
const recordAttemptSQL = `
INSERT INTO quiz_analytics (quiz_id, total_attempts, result_counts, last_attempt_at, created_at, updated_at)
VALUES (?, 1, jsonb_build_object(?::text, 1), NOW(), NOW(), NOW())
ON CONFLICT (quiz_id) DO UPDATE SET
	total_attempts  = quiz_analytics.total_attempts + 1,
	result_counts   = jsonb_set(
		COALESCE(quiz_analytics.result_counts, '{}'::jsonb),
		ARRAY[?::text],
		(COALESCE(quiz_analytics.result_counts ->> ?, '0')::bigint + 1)::text::jsonb
	),
	last_attempt_at = NOW(),
	updated_at      = NOW()`

func (r *analyticsRepository) RecordAttempt(quizID uint, winningTrait string) error {
	return r.db.Exec(recordAttemptSQL, quizID, winningTrait, winningTrait, winningTrait).Error
}
