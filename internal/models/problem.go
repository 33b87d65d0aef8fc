package models

import (
	"fmt"
	"math"

	"github.com/iudanet/leetkeeper/pkg/api"
)

// Difficulty представляет категорию сложности задачи.
// Выводится из кода позиции задачи в контесте и не хранится отдельно
// от правила вывода (см. DifficultyFromIndex).
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Weight возвращает порядковый вес сложности для сортировки:
// Easy < Medium < Hard, независимо от лексикографического порядка меток.
func (d Difficulty) Weight() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// DifficultyFromIndex выводит сложность из кода позиции задачи в контесте.
// "Q1" — первая задача контеста, всегда Easy; "Q3", "Q4", "Q5" — Hard.
// Всё остальное, включая отсутствующий код, — Medium.
// Функция тотальна: ошибочных входов не существует.
func DifficultyFromIndex(index string) Difficulty {
	switch index {
	case "Q1":
		return DifficultyEasy
	case "Q3", "Q4", "Q5":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Problem представляет задачу вместе с пользовательским прогрессом.
// Канонические поля (ID, Title, TitleSlug, Rating, ContestID, ProblemIndex,
// Difficulty) перезаписываются из фида при каждом обновлении датасета;
// пользовательские поля (Solved, Starred, Notes, TimeComplexity,
// SpaceComplexity) переживают обновления — см. data.Refresh.
type Problem struct {
	ID              int        `json:"id"`         // ID уникальный идентификатор задачи (назначается фидом)
	Title           string     `json:"title"`      // Title название задачи
	TitleSlug       string     `json:"title_slug"` // TitleSlug slug для канонической ссылки
	Rating          int        `json:"rating"`     // Rating рейтинг, округлён до целого; 0 если фид его не дал
	ContestID       string     `json:"contest_id"` // ContestID контест, может быть пустым
	ProblemIndex    string     `json:"problem_index"`
	Difficulty      Difficulty `json:"difficulty"`
	Solved          bool       `json:"solved"`  // Solved задача решена (пользовательское поле)
	Starred         bool       `json:"starred"` // Starred задача отмечена звездой (пользовательское поле)
	Notes           string     `json:"notes"`   // Notes произвольные заметки (пользовательское поле)
	TimeComplexity  string     `json:"tc"`      // TimeComplexity аннотация сложности по времени (пользовательское поле)
	SpaceComplexity string     `json:"sc"`      // SpaceComplexity аннотация сложности по памяти (пользовательское поле)
}

// NewProblem конвертирует запись фида в доменную модель.
// Rating округляется до ближайшего целого; отсутствующий рейтинг даёт 0,
// отсутствующий ProblemIndex даёт Medium. Пользовательские поля нулевые.
func NewProblem(raw api.RawProblem) Problem {
	return Problem{
		ID:           raw.ID,
		Title:        raw.Title,
		TitleSlug:    raw.TitleSlug,
		Rating:       int(math.Round(raw.Rating)),
		ContestID:    raw.ContestID,
		ProblemIndex: raw.ProblemIndex,
		Difficulty:   DifficultyFromIndex(raw.ProblemIndex),
	}
}

// URL возвращает каноническую ссылку на страницу задачи.
// Страница не скачивается, ссылка только отображается.
func (p Problem) URL() string {
	return fmt.Sprintf("https://leetcode.com/problems/%s/", p.TitleSlug)
}
