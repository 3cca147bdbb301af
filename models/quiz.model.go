package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuizOption is one selectable answer inside a question.
type QuizOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// QuizQuestion is stored inside the quiz's JSON questions column.
// CorrectAnswers must be a non-empty subset of the option ids.
type QuizQuestion struct {
	ID             string       `json:"id"`
	Type           string       `json:"type"` // multiple-choice, true-false, multi-select
	Text           string       `json:"text"`
	Options        []QuizOption `json:"options"`
	CorrectAnswers []string     `json:"correctAnswers,omitempty"`
	Explanation    string       `json:"explanation,omitempty"`
}

// Quiz belongs to one catalog module. Question order is presentation order only.
type Quiz struct {
	gorm.Model
	ModuleID     string         `json:"module_id" gorm:"index;not null"` // external catalog module id
	Title        string         `json:"title"`
	Questions    datatypes.JSON `json:"questions"`                       // []QuizQuestion
	PassingScore int            `json:"passing_score" gorm:"default:70"` // percentage 0-100
	IsDeleted    bool           `json:"-" gorm:"default:false"`
}

// QuizAttempt is one graded submission. Rows are insert-only.
type QuizAttempt struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"index;not null"`
	QuizID      uint           `json:"quiz_id" gorm:"index;not null"`
	Answers     datatypes.JSON `json:"answers"` // map[questionID][]optionID
	Score       int            `json:"score"`
	Passed      bool           `json:"passed" gorm:"default:false"`
	CompletedAt time.Time      `json:"completed_at"`
}
