package model

import (
	"database/sql/driver"
	"time"

	"gorm.io/gorm"
)

// TraitMap weights an answer's contribution per trait name. Traits are
// user-defined per quiz, so keys are open-ended strings validated at runtime.
type TraitMap map[string]float64

func (m TraitMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return jsonbValue(m)
}

func (m *TraitMap) Scan(value interface{}) error {
	*m = TraitMap{}
	return jsonbScan(value, m)
}

// Answer is owned exclusively by its parent Question; it is created and
// deleted with it and never addressed outside a submission lookup.
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"questionId" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	Traits     TraitMap       `json:"traits" gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"-"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
