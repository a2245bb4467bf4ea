package crud

import (
	"log/slog"

	"github.com/dwisusanto/perf-tracker/internal"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page is one slice of a collection plus the collection-wide total, so
// callers can derive the page count as ceil(total/limit).
type Page[M any] struct {
	Data  []*M  `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// Repository is the persistence contract the generic service runs on.
// GetByID returns (nil, nil) when the row does not exist; UpdateFields and
// Delete report the number of affected rows so missing ids surface as zero.
type Repository[M any] interface {
	Create(m *M) error
	List(limit, offset int) ([]*M, int64, error)
	GetByID(id int64) (*M, error)
	UpdateFields(id int64, fields map[string]any) (int64, error)
	Delete(id int64) (int64, error)
}

// Service implements the record-scoped CRUD contract shared by every
// entity. Entity-specific validation and reference resolution live in the
// per-entity services that embed it.
type Service[M any] struct {
	Repo     Repository[M]
	Logger   *slog.Logger
	Entity   string
	NotFound *internal.AppError
}

func NewService[M any](repo Repository[M], logger *slog.Logger, entity string, notFound *internal.AppError) *Service[M] {
	return &Service[M]{
		Repo:     repo,
		Logger:   logger,
		Entity:   entity,
		NotFound: notFound,
	}
}

// Insert persists a fully validated record and returns it with the
// generated id and timestamps filled in.
func (s *Service[M]) Insert(m *M) (*M, error) {
	if err := s.Repo.Create(m); err != nil {
		s.Logger.Error("failed to create record", "entity", s.Entity, "error", err)
		return nil, internal.NewInternalError("failed to create "+s.Entity, err)
	}
	return m, nil
}

func (s *Service[M]) List(page, limit int) (*Page[M], error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	offset := (page - 1) * limit
	items, total, err := s.Repo.List(limit, offset)
	if err != nil {
		s.Logger.Error("failed to list records", "entity", s.Entity, "error", err)
		return nil, internal.NewInternalError("failed to list "+s.Entity, err)
	}

	if items == nil {
		items = []*M{}
	}

	return &Page[M]{
		Data:  items,
		Page:  page,
		Limit: limit,
		Total: total,
	}, nil
}

func (s *Service[M]) GetByID(id int64) (*M, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		s.Logger.Error("failed to get record", "entity", s.Entity, "id", id, "error", err)
		return nil, internal.NewInternalError("failed to get "+s.Entity, err)
	}
	if m == nil {
		return nil, s.NotFound
	}
	return m, nil
}

// UpdateFields applies only the supplied columns and returns the record
// re-fetched from storage. An empty patch is a no-op read.
func (s *Service[M]) UpdateFields(id int64, fields map[string]any) (*M, error) {
	if len(fields) == 0 {
		return s.GetByID(id)
	}

	affected, err := s.Repo.UpdateFields(id, fields)
	if err != nil {
		s.Logger.Error("failed to update record", "entity", s.Entity, "id", id, "error", err)
		return nil, internal.NewInternalError("failed to update "+s.Entity, err)
	}
	if affected == 0 {
		return nil, s.NotFound
	}

	return s.GetByID(id)
}

func (s *Service[M]) Delete(id int64) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		s.Logger.Error("failed to delete record", "entity", s.Entity, "id", id, "error", err)
		return internal.NewInternalError("failed to delete "+s.Entity, err)
	}
	if affected == 0 {
		return s.NotFound
	}

	s.Logger.Info("record deleted", "entity", s.Entity, "id", id)
	return nil
}
