package dto

import "time"

// --- DTOs for quiz creation (creator-facing) ---

// AnswerCreateDTO is one selectable answer with its trait weights. Every
// answer must weight at least one trait; all weights contribute additively
// when the answer is picked.
type AnswerCreateDTO struct {
	Text   string             `json:"text" binding:"required"`
	Traits map[string]float64 `json:"traits" binding:"required,min=1"`
}

type QuestionCreateDTO struct {
	Text    string            `json:"text" binding:"required"`
	Answers []AnswerCreateDTO `json:"answers" binding:"dive"`
}

type QuizResultDTO struct {
	Trait       string `json:"trait"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// QuizCreateDTO is the request body for POST /api/quizzes.
type QuizCreateDTO struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Tags        []string            `json:"tags"`
	Results     []QuizResultDTO     `json:"results"`
	IsPublished bool                `json:"isPublished"`
	CreatedBy   *uint               `json:"createdBy"`
	Questions   []QuestionCreateDTO `json:"questions" binding:"dive"`
}

// --- DTOs for quiz responses ---

type AnswerResponseDTO struct {
	ID     uint               `json:"id"`
	Text   string             `json:"text"`
	Traits map[string]float64 `json:"traits"`
}

type QuestionResponseDTO struct {
	ID      uint                `json:"id"`
	QuizID  uint                `json:"quizId"`
	Text    string              `json:"text"`
	Answers []AnswerResponseDTO `json:"answers,omitempty"`
}

// QuizResponseDTO is the full created-quiz payload returned with 201.
type QuizResponseDTO struct {
	ID          uint                  `json:"id"`
	Title       string                `json:"title"`
	Description string                `json:"description,omitempty"`
	Tags        []string              `json:"tags"`
	Results     []QuizResultDTO       `json:"results,omitempty"`
	Questions   []QuestionResponseDTO `json:"questions,omitempty"`
	IsPublished bool                  `json:"isPublished"`
	CreatedBy   *uint                 `json:"createdBy,omitempty"`
	CreatedAt   time.Time             `json:"createdAt"`
}

// QuizSummaryDTO is the published-listing projection: title, description and
// tags only.
type QuizSummaryDTO struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags"`
}
