package repository

import (
	"github.com/lshigami/Pangolin/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	FindByQuizID(quizID uint) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindByQuizID returns the quiz's questions with their answers, in creation
// order. Scoring depends on this order for its tie-break, so it must stay
// primary-key ascending.
func (r *questionRepository) FindByQuizID(quizID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.Where("quiz_id = ?", quizID).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Order("questions.id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}
