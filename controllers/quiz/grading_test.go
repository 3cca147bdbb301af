package quizController

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeQuestionQuiz() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			ID:   "q1",
			Type: "multiple-choice",
			Options: []models.QuizOption{
				{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"},
			},
			CorrectAnswers: []string{"a"},
			Explanation:    "A is the answer.",
		},
		{
			ID:   "q2",
			Type: "true-false",
			Options: []models.QuizOption{
				{ID: "true", Text: "True"}, {ID: "false", Text: "False"},
			},
			CorrectAnswers: []string{"true"},
		},
		{
			ID:   "q3",
			Type: "multi-select",
			Options: []models.QuizOption{
				{ID: "a", Text: "A"}, {ID: "b", Text: "B"}, {ID: "c", Text: "C"}, {ID: "d", Text: "D"},
			},
			CorrectAnswers: []string{"a", "b", "c"},
		},
	}
}

func TestGradeQuizPerfectScore(t *testing.T) {
	result, err := GradeQuiz(threeQuestionQuiz(), 70, map[string][]string{
		"q1": {"a"},
		"q2": {"true"},
		"q3": {"c", "a", "b"}, // order must not matter
	})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Score)
	assert.True(t, result.Passed)
	assert.Equal(t, 3, result.TotalQuestions)
	assert.Equal(t, 3, result.CorrectAnswers)
}

func TestGradeQuizEmptySubmission(t *testing.T) {
	result, err := GradeQuiz(threeQuestionQuiz(), 70, map[string][]string{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.Passed)
	assert.Equal(t, 0, result.CorrectAnswers)
	for _, fb := range result.Feedback {
		assert.False(t, fb.Correct)
		assert.Empty(t, fb.UserAnswers)
		assert.NotNil(t, fb.UserAnswers)
	}
}

func TestGradeQuizRounding(t *testing.T) {
	questions := threeQuestionQuiz()

	oneOfThree, err := GradeQuiz(questions, 70, map[string][]string{"q1": {"a"}})
	require.NoError(t, err)
	assert.Equal(t, 33, oneOfThree.Score)

	twoOfThree, err := GradeQuiz(questions, 70, map[string][]string{
		"q1": {"a"},
		"q2": {"true"},
	})
	require.NoError(t, err)
	assert.Equal(t, 67, twoOfThree.Score)
}

func TestGradeQuizRoundsHalfUp(t *testing.T) {
	// 5 of 8 correct is 62.5 and must round to 63, not 62.
	questions := make([]models.QuizQuestion, 8)
	answers := make(map[string][]string)
	for i := range questions {
		id := string(rune('a' + i))
		questions[i] = models.QuizQuestion{
			ID:             id,
			Type:           "true-false",
			Options:        []models.QuizOption{{ID: "true"}, {ID: "false"}},
			CorrectAnswers: []string{"true"},
		}
		if i < 5 {
			answers[id] = []string{"true"}
		} else {
			answers[id] = []string{"false"}
		}
	}

	result, err := GradeQuiz(questions, 70, answers)
	require.NoError(t, err)
	assert.Equal(t, 63, result.Score)
	assert.Equal(t, 5, result.CorrectAnswers)
}

func TestGradeQuizMultiSelectExactness(t *testing.T) {
	questions := threeQuestionQuiz()

	missing, err := GradeQuiz(questions, 70, map[string][]string{"q3": {"a", "b"}})
	require.NoError(t, err)
	assert.False(t, missing.Feedback[2].Correct)

	extra, err := GradeQuiz(questions, 70, map[string][]string{"q3": {"a", "b", "c", "d"}})
	require.NoError(t, err)
	assert.False(t, extra.Feedback[2].Correct)

	exact, err := GradeQuiz(questions, 70, map[string][]string{"q3": {"a", "b", "c"}})
	require.NoError(t, err)
	assert.True(t, exact.Feedback[2].Correct)
}

func TestGradeQuizEmptyQuestionList(t *testing.T) {
	_, err := GradeQuiz(nil, 70, map[string][]string{})
	assert.ErrorIs(t, err, ErrInvalidQuiz)
}

func TestGradeQuizIgnoresUnknownAnswerKeys(t *testing.T) {
	result, err := GradeQuiz(threeQuestionQuiz(), 70, map[string][]string{
		"q1":      {"a"},
		"ghost-q": {"x"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Len(t, result.Feedback, 3)
}

func TestGradeQuizIsDeterministic(t *testing.T) {
	answers := map[string][]string{"q1": {"a"}, "q2": {"false"}}
	first, err := GradeQuiz(threeQuestionQuiz(), 50, answers)
	require.NoError(t, err)
	second, err := GradeQuiz(threeQuestionQuiz(), 50, answers)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGradeQuizFeedbackFollowsQuestionOrder(t *testing.T) {
	result, err := GradeQuiz(threeQuestionQuiz(), 70, map[string][]string{})
	require.NoError(t, err)
	require.Len(t, result.Feedback, 3)
	assert.Equal(t, "q1", result.Feedback[0].QuestionID)
	assert.Equal(t, "q2", result.Feedback[1].QuestionID)
	assert.Equal(t, "q3", result.Feedback[2].QuestionID)
}
