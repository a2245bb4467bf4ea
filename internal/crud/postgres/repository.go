package postgres

import (
	"errors"
	"time"

	"github.com/dwisusanto/perf-tracker/internal/crud"
	"gorm.io/gorm"
)

// Repository is the GORM-backed implementation of crud.Repository. It is
// instantiated once per entity; preloads name the relations to embed on
// reads and order keeps list results stable across pages.
type Repository[M any] struct {
	db       *gorm.DB
	order    string
	preloads []string
}

func NewRepository[M any](db *gorm.DB, order string, preloads ...string) crud.Repository[M] {
	if order == "" {
		order = "id ASC"
	}
	return &Repository[M]{db: db, order: order, preloads: preloads}
}

func (r *Repository[M]) Create(m *M) error {
	return r.db.Create(m).Error
}

func (r *Repository[M]) List(limit, offset int) ([]*M, int64, error) {
	var model M
	var total int64
	if err := r.db.Model(&model).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.Order(r.order).Limit(limit).Offset(offset)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}

	var items []*M
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *Repository[M]) GetByID(id int64) (*M, error) {
	q := r.db
	for _, p := range r.preloads {
		q = q.Preload(p)
	}

	var m M
	err := q.Where("id = ?", id).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *Repository[M]) UpdateFields(id int64, fields map[string]any) (int64, error) {
	var model M
	updates := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		updates[k] = v
	}
	updates["updated_at"] = time.Now()

	res := r.db.Model(&model).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *Repository[M]) Delete(id int64) (int64, error) {
	var model M
	res := r.db.Where("id = ?", id).Delete(&model)
	return res.RowsAffected, res.Error
}
