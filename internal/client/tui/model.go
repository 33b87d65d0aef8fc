// Package tui реализует интерактивную таблицу задач на bubbletea.
//
// Весь интерфейс имеет три верхнеуровневых состояния: Loading (идёт
// первичная загрузка из кеша или сети), Failed (загрузка не удалась,
// доступен повтор) и Ready (таблица активна). Перехода из Ready обратно
// в Loading нет.
//
// Модель — единственный владелец списка задач и состояния вью
// (фильтры, сортировка, страница); все производные считаются чистыми
// функциями пакета view. Весь код выполняется в одном событийном цикле
// bubbletea, разделяемого состояния между горутинами нет.
package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iudanet/leetkeeper/internal/client/data"
	"github.com/iudanet/leetkeeper/internal/client/view"
	"github.com/iudanet/leetkeeper/internal/models"
)

// uiState — верхнеуровневое состояние интерфейса
type uiState int

const (
	stateLoading uiState = iota
	stateFailed
	stateReady
)

// editField — какое поле сейчас редактируется в строке ввода
type editField int

const (
	editNone editField = iota
	editQuery
	editMinRating
	editMaxRating
	editNotes
	editTimeComplexity
	editSpaceComplexity
)

// loadedMsg доставляет список после первичной загрузки
type loadedMsg struct {
	problems []models.Problem
}

// refreshedMsg доставляет список после принудительного обновления из фида
type refreshedMsg struct {
	problems []models.Problem
	result   *data.RefreshResult
}

// loadFailedMsg сигнализирует о невосстановимой ошибке загрузки
type loadFailedMsg struct {
	err error
}

// Model — bubbletea-модель таблицы задач
type Model struct {
	svc data.Service
	ctx context.Context

	state uiState
	err   error

	// Полный список и состояние вью; производные пересчитываются
	// с нуля при любом изменении входов
	problems []models.Problem
	query    view.Query
	derived  view.Result
	stats    view.Stats

	tbl     table.Model
	input   textinput.Model
	editing editField
	editID  int // задача, чьё текстовое поле редактируется

	spin    spinner.Model
	status  string // однострочное сообщение под таблицей
	width   int
	height  int
	loading bool // идёт фоновое обновление из Ready
}

// NewModel создает модель в состоянии Loading
func NewModel(ctx context.Context, svc data.Service) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	ti := textinput.New()
	ti.CharLimit = 256

	tbl := table.New(
		table.WithColumns(tableColumns(defaultTableWidth)),
		table.WithFocused(true),
		table.WithHeight(view.DefaultPageSize),
	)
	tbl.SetStyles(tableStyles())

	return Model{
		svc:   svc,
		ctx:   ctx,
		state: stateLoading,
		query: view.NewQuery(),
		tbl:   tbl,
		input: ti,
		spin:  sp,
	}
}

// Run запускает интерактивную таблицу в alt-screen режиме
func Run(ctx context.Context, svc data.Service) error {
	_, err := tea.NewProgram(NewModel(ctx, svc), tea.WithAltScreen()).Run()
	return err
}

// Init запускает первичную загрузку: кеш, при промахе — сеть
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

// loadCmd resolves the dataset from cache or network exactly once
func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		problems, err := m.svc.Open(m.ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return loadedMsg{problems: problems}
	}
}

// refreshCmd forces a fetch-and-merge
func (m Model) refreshCmd() tea.Cmd {
	return func() tea.Msg {
		problems, result, err := m.svc.Refresh(m.ctx)
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return refreshedMsg{problems: problems, result: result}
	}
}

// Update обрабатывает все события интерфейса
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.SetColumns(tableColumns(m.width))
		m.tbl.SetHeight(m.tableHeight())
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading && !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case loadedMsg:
		// Единственный переход Loading → Ready
		m.state = stateReady
		m.setProblems(msg.problems)
		return m, nil

	case refreshedMsg:
		m.state = stateReady
		m.loading = false
		m.setProblems(msg.problems)
		m.status = refreshStatus(msg.result)
		return m, nil

	case loadFailedMsg:
		if m.state == stateReady {
			// Обновление из Ready не роняет таблицу: показываем ошибку строкой
			m.loading = false
			m.status = "refresh failed: " + msg.err.Error()
			return m, nil
		}
		m.state = stateFailed
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey разруливает клавиши по состояниям
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateLoading:
		if key := msg.String(); key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil

	case stateFailed:
		switch msg.String() {
		case "r":
			// Повторная попытка загрузки
			m.state = stateLoading
			m.err = nil
			return m, tea.Batch(m.spin.Tick, m.loadCmd())
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	// stateReady
	if m.editing != editNone {
		return m.handleEditKey(msg)
	}
	return m.handleTableKey(msg)
}

// handleEditKey обрабатывает ввод в строке редактирования
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.stopEditing()
		return m, nil
	case "enter":
		return m.commitEdit()
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Поисковый запрос применяется на каждое нажатие клавиши
	if m.editing == editQuery {
		f := m.query.Filters
		f.Query = m.input.Value()
		m.query.SetFilters(f)
		m.rederive()
	}

	return m, cmd
}

// commitEdit применяет значение из строки ввода и выходит из редактирования
func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	value := m.input.Value()

	switch m.editing {
	case editQuery:
		// Запрос уже применён по мере набора
	case editMinRating, editMaxRating:
		// Нечисловой ввод трактуем как снятие границы
		rating, _ := strconv.Atoi(value)
		f := m.query.Filters
		if m.editing == editMinRating {
			f.MinRating = rating
		} else {
			f.MaxRating = rating
		}
		m.query.SetFilters(f)
		m.rederive()
	case editNotes:
		m.applyEdit(func(ctx context.Context, problems []models.Problem) ([]models.Problem, error) {
			return m.svc.SetNotes(ctx, problems, m.editID, value)
		})
	case editTimeComplexity:
		m.applyEdit(func(ctx context.Context, problems []models.Problem) ([]models.Problem, error) {
			return m.svc.SetTimeComplexity(ctx, problems, m.editID, value)
		})
	case editSpaceComplexity:
		m.applyEdit(func(ctx context.Context, problems []models.Problem) ([]models.Problem, error) {
			return m.svc.SetSpaceComplexity(ctx, problems, m.editID, value)
		})
	}

	m.stopEditing()
	return m, nil
}

// handleTableKey обрабатывает клавиши активной таблицы
func (m Model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "/":
		return m.startEditing(editQuery, m.query.Filters.Query, "search: "), nil
	case "m":
		return m.startEditing(editMinRating, itoaOrEmpty(m.query.Filters.MinRating), "min rating: "), nil
	case "M":
		return m.startEditing(editMaxRating, itoaOrEmpty(m.query.Filters.MaxRating), "max rating: "), nil

	case "n", "t", "c":
		p, ok := m.selectedProblem()
		if !ok {
			return m, nil
		}
		m.editID = p.ID
		switch msg.String() {
		case "n":
			return m.startEditing(editNotes, p.Notes, "notes: "), nil
		case "t":
			return m.startEditing(editTimeComplexity, p.TimeComplexity, "time complexity: "), nil
		default:
			return m.startEditing(editSpaceComplexity, p.SpaceComplexity, "space complexity: "), nil
		}

	case "s":
		p, ok := m.selectedProblem()
		if !ok {
			return m, nil
		}
		m.applyEdit(func(ctx context.Context, problems []models.Problem) ([]models.Problem, error) {
			return m.svc.SetSolved(ctx, problems, p.ID, !p.Solved)
		})
		return m, nil

	case "f":
		p, ok := m.selectedProblem()
		if !ok {
			return m, nil
		}
		m.applyEdit(func(ctx context.Context, problems []models.Problem) ([]models.Problem, error) {
			return m.svc.SetStarred(ctx, problems, p.ID, !p.Starred)
		})
		return m, nil

	case "S":
		f := m.query.Filters
		f.SolvedOnly = !f.SolvedOnly
		m.query.SetFilters(f)
		m.rederive()
		return m, nil

	case "F":
		f := m.query.Filters
		f.StarredOnly = !f.StarredOnly
		m.query.SetFilters(f)
		m.rederive()
		return m, nil

	case "o":
		m.query.SetSort(view.Sort{Field: nextSortField(m.query.Sort.Field), Desc: m.query.Sort.Desc})
		m.rederive()
		return m, nil

	case "O":
		m.query.SetSort(view.Sort{Field: m.query.Sort.Field, Desc: !m.query.Sort.Desc})
		m.rederive()
		return m, nil

	case "esc":
		// Сброс всех фильтров и сортировки
		m.query.SetFilters(view.Filters{})
		m.query.SetSort(view.Sort{})
		m.rederive()
		return m, nil

	case "left", "h", "pgup":
		// На границах навигация выключена, не заворачивается
		if m.derived.HasPrevPage() {
			m.query.Page--
			m.rederive()
		}
		return m, nil

	case "right", "l", "pgdown":
		if m.derived.HasNextPage() {
			m.query.Page++
			m.rederive()
		}
		return m, nil

	case "R":
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = "refreshing dataset..."
		return m, tea.Batch(m.spin.Tick, m.refreshCmd())
	}

	// Остальное (up/down/j/k) — навигация курсора внутри страницы
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

// startEditing переводит модель в режим редактирования поля
func (m Model) startEditing(field editField, current, prompt string) Model {
	m.editing = field
	m.input.Prompt = prompt
	m.input.SetValue(current)
	m.input.CursorEnd()
	m.input.Focus()
	m.status = ""
	return m
}

// stopEditing выходит из режима редактирования
func (m *Model) stopEditing() {
	m.editing = editNone
	m.editID = 0
	m.input.Blur()
	m.input.SetValue("")
}

// applyEdit выполняет мутацию через data сервис. Сервис переписывает
// снапшот до возврата, поэтому здесь нет отдельного шага сохранения.
func (m *Model) applyEdit(mutate func(context.Context, []models.Problem) ([]models.Problem, error)) {
	updated, err := mutate(m.ctx, m.problems)
	if err != nil {
		m.status = "edit failed: " + err.Error()
		return
	}
	m.setProblems(updated)
}

// setProblems заменяет базовый список. Любое изменение базового списка,
// как и фильтров или сортировки, сбрасывает страницу на первую.
func (m *Model) setProblems(problems []models.Problem) {
	m.problems = problems
	m.query.Page = 1
	m.rederive()
}

// rederive пересчитывает производное вью и перестраивает строки таблицы
func (m *Model) rederive() {
	m.derived = view.Derive(m.problems, m.query)
	m.stats = view.Aggregate(m.problems)

	rows := make([]table.Row, 0, len(m.derived.Rows))
	for _, p := range m.derived.Rows {
		rows = append(rows, table.Row{
			strconv.Itoa(p.ID),
			p.Title,
			strconv.Itoa(p.Rating),
			string(p.Difficulty),
			markCell(p.Solved, "✓"),
			markCell(p.Starred, "★"),
			p.TimeComplexity,
			p.SpaceComplexity,
		})
	}
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(m.tableHeight())

	// Курсор не должен указывать за пределы новой страницы
	if cur := m.tbl.Cursor(); cur >= len(rows) && len(rows) > 0 {
		m.tbl.SetCursor(len(rows) - 1)
	}
	if len(rows) == 0 {
		m.tbl.SetCursor(0)
	}
}

// selectedProblem возвращает задачу под курсором таблицы
func (m Model) selectedProblem() (models.Problem, bool) {
	idx := m.tbl.Cursor()
	if idx < 0 || idx >= len(m.derived.Rows) {
		return models.Problem{}, false
	}
	return m.derived.Rows[idx], true
}

// tableHeight ограничивает таблицу размером страницы и высотой терминала
func (m Model) tableHeight() int {
	h := len(m.derived.Rows)
	if h < 1 {
		h = 1
	}
	if m.height > 0 {
		// заголовок, статистика, фильтры, пейджер, подсказки
		if maxRows := m.height - 8; maxRows > 0 && h > maxRows {
			h = maxRows
		}
	}
	return h
}

// nextSortField циклически переключает поле сортировки
func nextSortField(current view.SortField) view.SortField {
	for i, f := range view.SortFields {
		if f == current {
			return view.SortFields[(i+1)%len(view.SortFields)]
		}
	}
	return view.SortNone
}

func itoaOrEmpty(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func markCell(set bool, symbol string) string {
	if set {
		return symbol
	}
	return ""
}
