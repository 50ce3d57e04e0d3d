package model

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// QuizResult describes one possible outcome of a quiz: the trait it maps to
// and the copy shown to the taker who lands on it.
type QuizResult struct {
	Trait       string `json:"trait"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// StringSlice stores a string array as a jsonb column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return jsonbValue(s)
}

func (s *StringSlice) Scan(value interface{}) error {
	*s = StringSlice{}
	return jsonbScan(value, s)
}

// ResultList stores the quiz's outcome descriptors as a jsonb column.
// Outcomes are owned by the quiz document; they have no independent lifecycle.
type ResultList []QuizResult

func (r ResultList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	return jsonbValue(r)
}

func (r *ResultList) Scan(value interface{}) error {
	*r = ResultList{}
	return jsonbScan(value, r)
}

type Quiz struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Tags        StringSlice    `json:"tags" gorm:"type:jsonb"`
	Results     ResultList     `json:"results,omitempty" gorm:"type:jsonb"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:QuizID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	IsPublished bool           `json:"isPublished" gorm:"default:false"`
	CreatedBy   *uint          `json:"createdBy,omitempty" gorm:"index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
