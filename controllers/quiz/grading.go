package quizController

import (
	"errors"
	"learnhub/models"
	"math"
)

// ErrInvalidQuiz is returned when a quiz has no questions. It signals a
// data-integrity problem upstream, not a learner mistake.
var ErrInvalidQuiz = errors.New("quiz has no questions")

// QuestionFeedback explains the grading of one question.
type QuestionFeedback struct {
	QuestionID     string   `json:"questionId"`
	Correct        bool     `json:"correct"`
	UserAnswers    []string `json:"userAnswers"`
	CorrectAnswers []string `json:"correctAnswers"`
	Explanation    string   `json:"explanation,omitempty"`
}

// QuizResult is the graded outcome of one submission.
type QuizResult struct {
	Score          int                `json:"score"`
	Passed         bool               `json:"passed"`
	TotalQuestions int                `json:"totalQuestions"`
	CorrectAnswers int                `json:"correctAnswers"`
	Feedback       []QuestionFeedback `json:"feedback"`
}

// GradeQuiz scores a submission against the quiz's answer keys.
//
// A question is correct only when the selected option set equals the
// correct set exactly: missing selections, extra selections, and
// unanswered questions all count as incorrect, never as errors. Feedback
// order follows question order. The score is the percentage of correct
// questions rounded half-up.
func GradeQuiz(questions []models.QuizQuestion, passingScore int, answers map[string][]string) (QuizResult, error) {
	if len(questions) == 0 {
		return QuizResult{}, ErrInvalidQuiz
	}

	correctCount := 0
	feedback := make([]QuestionFeedback, 0, len(questions))

	for _, question := range questions {
		given := answers[question.ID] // nil means unanswered
		correct := setsEqual(given, question.CorrectAnswers)
		if correct {
			correctCount++
		}

		feedback = append(feedback, QuestionFeedback{
			QuestionID:     question.ID,
			Correct:        correct,
			UserAnswers:    nonNil(given),
			CorrectAnswers: nonNil(question.CorrectAnswers),
			Explanation:    question.Explanation,
		})
	}

	score := int(math.Round(float64(correctCount) / float64(len(questions)) * 100))

	return QuizResult{
		Score:          score,
		Passed:         score >= passingScore,
		TotalQuestions: len(questions),
		CorrectAnswers: correctCount,
		Feedback:       feedback,
	}, nil
}

// setsEqual treats both slices as sets: duplicates collapse, order is
// irrelevant, and equality requires the same members on both sides.
func setsEqual(a, b []string) bool {
	setA := make(map[string]bool, len(a))
	for _, id := range a {
		setA[id] = true
	}
	setB := make(map[string]bool, len(b))
	for _, id := range b {
		setB[id] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for id := range setA {
		if !setB[id] {
			return false
		}
	}
	return true
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
