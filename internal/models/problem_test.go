package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/leetkeeper/pkg/api"
)

func TestDifficultyFromIndex(t *testing.T) {
	tests := []struct {
		index string
		want  Difficulty
	}{
		{index: "Q1", want: DifficultyEasy},
		{index: "Q2", want: DifficultyMedium},
		{index: "Q3", want: DifficultyHard},
		{index: "Q4", want: DifficultyHard},
		{index: "Q5", want: DifficultyHard},
		{index: "", want: DifficultyMedium},
		{index: "anything-else", want: DifficultyMedium},
		{index: "q1", want: DifficultyMedium}, // коды фида чувствительны к регистру
	}

	for _, tt := range tests {
		t.Run("index "+tt.index, func(t *testing.T) {
			assert.Equal(t, tt.want, DifficultyFromIndex(tt.index))
		})
	}
}

func TestDifficulty_Weight(t *testing.T) {
	// Порядковый вес, не лексикографический порядок: Easy < Medium < Hard
	assert.Less(t, DifficultyEasy.Weight(), DifficultyMedium.Weight())
	assert.Less(t, DifficultyMedium.Weight(), DifficultyHard.Weight())

	// Неизвестная метка ведёт себя как Medium
	assert.Equal(t, DifficultyMedium.Weight(), Difficulty("weird").Weight())
}

func TestNewProblem(t *testing.T) {
	raw := api.RawProblem{
		ID:           1234,
		Title:        "Two Sum Variant",
		TitleSlug:    "two-sum-variant",
		Rating:       1567.4999,
		ContestID:    "weekly-contest-300",
		ProblemIndex: "Q3",
	}

	p := NewProblem(raw)

	assert.Equal(t, 1234, p.ID)
	assert.Equal(t, "Two Sum Variant", p.Title)
	assert.Equal(t, "two-sum-variant", p.TitleSlug)
	assert.Equal(t, 1567, p.Rating) // округление до ближайшего целого
	assert.Equal(t, "weekly-contest-300", p.ContestID)
	assert.Equal(t, DifficultyHard, p.Difficulty)

	// Пользовательские поля у свежеимпортированной записи нулевые
	assert.False(t, p.Solved)
	assert.False(t, p.Starred)
	assert.Empty(t, p.Notes)
	assert.Empty(t, p.TimeComplexity)
	assert.Empty(t, p.SpaceComplexity)
}

func TestNewProblem_Defaults(t *testing.T) {
	// Отсутствующий рейтинг и индекс толерантно заменяются дефолтами
	p := NewProblem(api.RawProblem{ID: 1, Title: "No Rating"})

	assert.Equal(t, 0, p.Rating)
	assert.Equal(t, DifficultyMedium, p.Difficulty)
}

func TestNewProblem_RoundsHalfUp(t *testing.T) {
	p := NewProblem(api.RawProblem{ID: 1, Rating: 1500.5})
	assert.Equal(t, 1501, p.Rating)
}

func TestProblem_URL(t *testing.T) {
	p := Problem{TitleSlug: "two-sum"}
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", p.URL())
}
