package api

// RawProblem представляет одну запись датасета рейтингов в том виде,
// в котором её отдаёт удалённый фид. Имена JSON-полей фиксированы фидом.
type RawProblem struct {
	ID           int     `json:"ID"`            // ID уникальный идентификатор задачи
	Title        string  `json:"Title"`         // Title название задачи
	TitleSlug    string  `json:"TitleSlug"`     // TitleSlug slug для канонической ссылки
	Rating       float64 `json:"Rating"`        // Rating рейтинг сложности, может отсутствовать
	ContestID    string  `json:"ContestID_en"`  // ContestID контест, может быть пустым
	ProblemIndex string  `json:"ProblemIndex"`  // ProblemIndex код позиции в контесте ("Q1".."Q5"), может отсутствовать
}
