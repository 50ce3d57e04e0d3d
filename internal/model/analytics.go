package model

import (
	"database/sql/driver"
	"time"
)

// TraitCounts counts winning-trait outcomes per trait name. Keys appear
// lazily as traits win for the first time; they are not pre-seeded from the
// quiz's declared results.
type TraitCounts map[string]int64

func (c TraitCounts) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}
	return jsonbValue(c)
}

func (c *TraitCounts) Scan(value interface{}) error {
	*c = TraitCounts{}
	return jsonbScan(value, c)
}

// QuizAnalytics carries the running attempt counters for one quiz. Exactly
// one row exists per quiz; it is only ever mutated in place, never replaced.
type QuizAnalytics struct {
	ID            uint        `gorm:"primarykey" json:"id"`
	QuizID        uint        `json:"quizId" gorm:"not null;uniqueIndex"`
	TotalAttempts int64       `json:"totalAttempts" gorm:"not null;default:0"`
	ResultCounts  TraitCounts `json:"resultCounts" gorm:"type:jsonb"`
	LastAttemptAt *time.Time  `json:"lastAttemptAt,omitempty"`
	CreatedAt     time.Time   `json:"-"`
	UpdatedAt     time.Time   `json:"-"`
}

func (QuizAnalytics) TableName() string {
	return "quiz_analytics"
}
