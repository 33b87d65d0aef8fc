package view

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/iudanet/leetkeeper/internal/models"
)

// DefaultPageSize — размер страницы таблицы по умолчанию.
const DefaultPageSize = 25

// SortField перечисляет поля, по которым сортируется таблица.
type SortField string

const (
	SortNone         SortField = ""
	SortByID         SortField = "id"
	SortByTitle      SortField = "title"
	SortByRating     SortField = "rating"
	SortByDifficulty SortField = "difficulty"
	SortBySolved     SortField = "solved"
)

// SortFields — все поля сортировки в порядке переключения в TUI.
// SortNone первым: "без сортировки" — валидное состояние.
var SortFields = []SortField{SortNone, SortByID, SortByTitle, SortByRating, SortByDifficulty, SortBySolved}

// ParseSortField распознаёт имя поля сортировки из CLI-флага.
func ParseSortField(s string) (SortField, error) {
	field := SortField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortFields {
		if field == known {
			return field, nil
		}
	}
	return SortNone, fmt.Errorf("unknown sort field: %q (use id, title, rating, difficulty or solved)", s)
}

// Filters описывает конъюнктивный набор предикатов: запись попадает в
// выборку, только если проходит все активные фильтры сразу.
type Filters struct {
	Query       string // подстрока названия или ID, без учёта регистра
	MinRating   int
	MaxRating   int // 0 — без верхней границы
	SolvedOnly  bool
	StarredOnly bool
}

// Sort описывает поле и направление сортировки.
type Sort struct {
	Field SortField
	Desc  bool
}

// Query — полное состояние вью: фильтры, сортировка, пагинация.
// Владеет им один контроллер (TUI-модель или CLI-команда), пакет view
// только читает его в чистых функциях. Никакого разделяемого состояния.
type Query struct {
	Filters  Filters
	Sort     Sort
	Page     int
	PageSize int
}

// NewQuery возвращает состояние вью по умолчанию: без фильтров,
// без сортировки, первая страница.
func NewQuery() Query {
	return Query{Page: 1, PageSize: DefaultPageSize}
}

// SetFilters заменяет фильтры целиком и сбрасывает страницу на первую.
func (q *Query) SetFilters(f Filters) {
	q.Filters = f
	q.Page = 1
}

// SetSort заменяет сортировку и сбрасывает страницу на первую.
func (q *Query) SetSort(s Sort) {
	q.Sort = s
	q.Page = 1
}

// Result — производное представление одной страницы таблицы.
type Result struct {
	Rows      []models.Problem // записи текущей страницы
	Total     int              // записей после фильтрации
	Page      int              // текущая страница, зажата в [1, PageCount]
	PageCount int              // всего страниц, минимум 1
}

// HasPrevPage сообщает, доступна ли предыдущая страница.
// На границах навигация выключается, а не заворачивается по кругу.
func (r Result) HasPrevPage() bool { return r.Page > 1 }

// HasNextPage сообщает, доступна ли следующая страница.
func (r Result) HasNextPage() bool { return r.Page < r.PageCount }

// Derive прогоняет полный список через фильтр → сортировку → пагинацию.
// Чистая функция: пересчитывается с нуля при любом изменении входов,
// исходный список не мутируется.
func Derive(problems []models.Problem, q Query) Result {
	filtered := applyFilters(problems, q.Filters)
	applySort(filtered, q.Sort)
	return paginate(filtered, q.Page, q.PageSize)
}

// applyFilters возвращает новый срез: записи, прошедшие все активные предикаты
func applyFilters(problems []models.Problem, f Filters) []models.Problem {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.Problem, 0, len(problems))
	for _, p := range problems {
		if p.Rating < f.MinRating {
			continue
		}
		if f.MaxRating > 0 && p.Rating > f.MaxRating {
			continue
		}
		if f.SolvedOnly && !p.Solved {
			continue
		}
		if f.StarredOnly && !p.Starred {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Title), query) &&
			!strings.Contains(strconv.Itoa(p.ID), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// applySort сортирует на месте. Сортировка стабильная: равные элементы
// сохраняют порядок, пришедший с предыдущей стадии.
func applySort(problems []models.Problem, s Sort) {
	if s.Field == SortNone {
		return
	}

	less := lessFunc(s.Field)
	sort.SliceStable(problems, func(i, j int) bool {
		if s.Desc {
			i, j = j, i
		}
		return less(problems[i], problems[j])
	})
}

// lessFunc возвращает компаратор для поля. Difficulty сравнивается по
// порядковому весу Easy < Medium < Hard, не по алфавиту; остальные поля —
// по естественному порядку значения.
func lessFunc(field SortField) func(a, b models.Problem) bool {
	switch field {
	case SortByID:
		return func(a, b models.Problem) bool { return a.ID < b.ID }
	case SortByTitle:
		return func(a, b models.Problem) bool { return a.Title < b.Title }
	case SortByRating:
		return func(a, b models.Problem) bool { return a.Rating < b.Rating }
	case SortByDifficulty:
		return func(a, b models.Problem) bool { return a.Difficulty.Weight() < b.Difficulty.Weight() }
	case SortBySolved:
		return func(a, b models.Problem) bool { return !a.Solved && b.Solved }
	default:
		return func(a, b models.Problem) bool { return false }
	}
}

// paginate режет отфильтрованный список на страницы фиксированного размера
// и возвращает срез текущей. Страница зажимается в допустимые границы.
func paginate(filtered []models.Problem, page, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	pageCount := (len(filtered) + pageSize - 1) / pageSize
	if pageCount == 0 {
		// Пустая выборка — одна пустая страница
		pageCount = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Result{
		Rows:      filtered[start:end],
		Total:     len(filtered),
		Page:      page,
		PageCount: pageCount,
	}
}
