package dto

import "time"

// SubmittedAnswerDTO pairs a question with the answer the taker picked.
type SubmittedAnswerDTO struct {
	QuestionID uint `json:"questionId" binding:"required"`
	AnswerID   uint `json:"answerId" binding:"required"`
}

// QuizSubmitDTO is the request body for POST /api/quizzes/:id/submit.
type QuizSubmitDTO struct {
	Answers []SubmittedAnswerDTO `json:"answers" binding:"required,dive"`
}

// SubmissionResultDTO reports the winning trait and the full per-trait score
// breakdown. Result is null when no trait accumulated any score.
type SubmissionResultDTO struct {
	Result *string            `json:"result"`
	Scores map[string]float64 `json:"scores"`
}

// QuizAnalyticsDTO exposes a quiz's running attempt counters.
type QuizAnalyticsDTO struct {
	QuizID        uint             `json:"quizId"`
	TotalAttempts int64            `json:"totalAttempts"`
	ResultCounts  map[string]int64 `json:"resultCounts"`
	LastAttemptAt *time.Time       `json:"lastAttemptAt,omitempty"`
}
