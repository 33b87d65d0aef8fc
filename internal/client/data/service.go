package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	httpClient "github.com/iudanet/leetkeeper/internal/client/api"
	"github.com/iudanet/leetkeeper/internal/client/storage"
	"github.com/iudanet/leetkeeper/internal/models"
	"github.com/iudanet/leetkeeper/pkg/api"
)

// ErrProblemNotFound indicates that no problem with the given ID exists in the list
var ErrProblemNotFound = errors.New("problem not found")

// Service определяет интерфейс клиентского data сервиса
type Service interface {
	// Open возвращает полный список задач: из локального снапшота, если он
	// читается, иначе через полный Refresh. Вызывается один раз при старте.
	Open(ctx context.Context) ([]models.Problem, error)

	// Refresh скачивает датасет, сливает его с локальным прогрессом и
	// сохраняет результат перед возвратом.
	Refresh(ctx context.Context) ([]models.Problem, *RefreshResult, error)

	// Мутации пользовательских полей. Каждая возвращает новый список с одной
	// изменённой записью, переписав снапшот целиком перед возвратом.
	SetSolved(ctx context.Context, problems []models.Problem, id int, solved bool) ([]models.Problem, error)
	SetStarred(ctx context.Context, problems []models.Problem, id int, starred bool) ([]models.Problem, error)
	SetNotes(ctx context.Context, problems []models.Problem, id int, notes string) ([]models.Problem, error)
	SetTimeComplexity(ctx context.Context, problems []models.Problem, id int, tc string) ([]models.Problem, error)
	SetSpaceComplexity(ctx context.Context, problems []models.Problem, id int, sc string) ([]models.Problem, error)

	// Cached возвращает локальный снапшот, никогда не обращаясь к фиду.
	// Пробрасывает storage.ErrSnapshotNotFound / ErrSnapshotInvalid как есть.
	Cached(ctx context.Context) ([]models.Problem, error)

	// LastRefresh возвращает время последнего успешного обновления.
	// Нулевое время — обновлений еще не было.
	LastRefresh(ctx context.Context) (time.Time, error)
}

// RefreshResult contains dataset refresh results
type RefreshResult struct {
	Total   int // записей в свежем фиде
	Carried int // записей, к которым привязан прежний прогресс
	Fresh   int // новых записей с дефолтным прогрессом
	Dropped int // записей прежнего снапшота, пропавших из фида
}

// service handles client-side dataset and progress operations
type service struct {
	apiClient httpClient.ClientAPI
	problems  storage.ProblemsStorage
	metadata  storage.MetadataStorage
	logger    *slog.Logger
}

// NewService creates a new data service
func NewService(apiClient httpClient.ClientAPI, problems storage.ProblemsStorage, metadata storage.MetadataStorage, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		problems:  problems,
		metadata:  metadata,
		logger:    logger,
	}
}

// Open returns the full problems list, from cache when possible
func (s *service) Open(ctx context.Context) ([]models.Problem, error) {
	problems, err := s.problems.LoadSnapshot(ctx)
	if err == nil {
		return problems, nil
	}
	if !isCacheMiss(err) {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	// Кеша нет (или он другой версии/нечитаем) — пересобираем список из фида
	s.logger.Info("local snapshot unusable, refreshing from feed", "reason", err)

	merged, _, err := s.Refresh(ctx)
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Refresh fetches the dataset, merges it with local progress and persists
// the merged list before returning it
func (s *service) Refresh(ctx context.Context) ([]models.Problem, *RefreshResult, error) {
	raws, err := s.apiClient.FetchProblems(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}

	// Предыдущий снапшот может отсутствовать — тогда сливать не с чем
	previous, err := s.problems.LoadSnapshot(ctx)
	if err != nil {
		if !isCacheMiss(err) {
			return nil, nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		previous = nil
	}

	merged, result := mergeProblems(previous, raws)

	// Сохраняем до публикации результата: вью всегда видит уже записанный список
	if err := s.problems.SaveSnapshot(ctx, merged); err != nil {
		return nil, nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	if err := s.metadata.SaveLastRefresh(ctx, time.Now().Unix()); err != nil {
		// Метка времени не стоит отмены обновления
		s.logger.Warn("failed to save last refresh timestamp", "error", err)
	}

	s.logger.Info("dataset refreshed",
		"total", result.Total,
		"carried", result.Carried,
		"fresh", result.Fresh,
		"dropped", result.Dropped)

	return merged, result, nil
}

// mergeProblems строит новый полный список: канонические поля каждой записи
// берутся из свежего фида, пользовательские — из предыдущего снапшота по
// совпадению ID (или остаются дефолтными для новых записей). Записи,
// пропавшие из фида, отбрасываются вместе с прогрессом. O(n) по map от ID.
func mergeProblems(previous []models.Problem, raws []api.RawProblem) ([]models.Problem, *RefreshResult) {
	byID := make(map[int]models.Problem, len(previous))
	for _, p := range previous {
		byID[p.ID] = p
	}

	result := &RefreshResult{Total: len(raws)}
	merged := make([]models.Problem, 0, len(raws))
	for _, raw := range raws {
		p := models.NewProblem(raw)
		if prev, ok := byID[raw.ID]; ok {
			p.Solved = prev.Solved
			p.Starred = prev.Starred
			p.Notes = prev.Notes
			p.TimeComplexity = prev.TimeComplexity
			p.SpaceComplexity = prev.SpaceComplexity
			result.Carried++
			delete(byID, raw.ID)
		} else {
			result.Fresh++
		}
		merged = append(merged, p)
	}
	result.Dropped = len(byID)

	return merged, result
}

// SetSolved updates the solved flag of one problem
func (s *service) SetSolved(ctx context.Context, problems []models.Problem, id int, solved bool) ([]models.Problem, error) {
	return s.update(ctx, problems, id, func(p *models.Problem) {
		p.Solved = solved
	})
}

// SetStarred updates the starred flag of one problem
func (s *service) SetStarred(ctx context.Context, problems []models.Problem, id int, starred bool) ([]models.Problem, error) {
	return s.update(ctx, problems, id, func(p *models.Problem) {
		p.Starred = starred
	})
}

// SetNotes updates the free-text notes of one problem
func (s *service) SetNotes(ctx context.Context, problems []models.Problem, id int, notes string) ([]models.Problem, error) {
	return s.update(ctx, problems, id, func(p *models.Problem) {
		p.Notes = notes
	})
}

// SetTimeComplexity updates the time-complexity annotation of one problem
func (s *service) SetTimeComplexity(ctx context.Context, problems []models.Problem, id int, tc string) ([]models.Problem, error) {
	return s.update(ctx, problems, id, func(p *models.Problem) {
		p.TimeComplexity = tc
	})
}

// SetSpaceComplexity updates the space-complexity annotation of one problem
func (s *service) SetSpaceComplexity(ctx context.Context, problems []models.Problem, id int, sc string) ([]models.Problem, error) {
	return s.update(ctx, problems, id, func(p *models.Problem) {
		p.SpaceComplexity = sc
	})
}

// update применяет правку к одной записи и переписывает снапшот целиком
// до возврата обновлённого списка. Исходный список не мутируется.
func (s *service) update(ctx context.Context, problems []models.Problem, id int, mutate func(*models.Problem)) ([]models.Problem, error) {
	updated := make([]models.Problem, len(problems))
	copy(updated, problems)

	idx := -1
	for i := range updated {
		if updated[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("problem %d: %w", id, ErrProblemNotFound)
	}

	mutate(&updated[idx])

	if err := s.problems.SaveSnapshot(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}

	return updated, nil
}

// Cached returns the local snapshot without touching the feed
func (s *service) Cached(ctx context.Context) ([]models.Problem, error) {
	return s.problems.LoadSnapshot(ctx)
}

// LastRefresh returns the time of the last successful refresh
func (s *service) LastRefresh(ctx context.Context) (time.Time, error) {
	ts, err := s.metadata.GetLastRefresh(ctx)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last refresh: %w", err)
	}
	if ts == 0 {
		return time.Time{}, nil
	}
	return time.Unix(ts, 0), nil
}

// isCacheMiss сообщает, означает ли ошибка чтения "кеша нет":
// отсутствие снапшота и несовпадение версии обрабатываются одинаково
func isCacheMiss(err error) bool {
	return errors.Is(err, storage.ErrSnapshotNotFound) || errors.Is(err, storage.ErrSnapshotInvalid)
}
