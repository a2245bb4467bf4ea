// Package listview implements the per-entity list view model: fetch one
// page at a time, filter it locally, and run the add/edit/delete
// sub-flows against the API gateway.
package listview

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/dwisusanto/perf-tracker/pkg/apiclient"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateEmpty   State = "empty"
	StateFailed  State = "failed"
)

type FormMode string

const (
	FormAdd  FormMode = "add"
	FormEdit FormMode = "edit"
)

// FormState is the add/edit modal sub-flow. Its error state is
// independent of the list: a failed submit keeps the form open.
type FormState struct {
	Mode   FormMode
	ID     int64
	Err    error
	Saving bool
}

var (
	ErrNoForm           = errors.New("no form is open")
	ErrNoPendingDelete  = errors.New("no delete pending confirmation")
	ErrSubmitInProgress = errors.New("a submit is already in progress")
)

// Gateway is the slice of the API client the controller needs.
type Gateway[T any] interface {
	GetAll(ctx context.Context, opts apiclient.ListOptions) (*apiclient.ListResult[T], error)
	Create(ctx context.Context, payload any) (*T, error)
	Update(ctx context.Context, id int64, patch any) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Controller holds one entity view's state. It is driven by a single UI
// event loop and is not safe for concurrent use.
type Controller[T any] struct {
	gw Gateway[T]

	state   State
	page    int
	limit   int
	records []T
	visible []T
	total   int64
	lastErr error

	// filtering applies to the fetched page only; records on other
	// pages are never considered
	filter func(T) bool

	form          *FormState
	pendingDelete *int64
}

func NewController[T any](gw Gateway[T]) *Controller[T] {
	return &Controller[T]{
		gw:    gw,
		state: StateIdle,
		page:  1,
		limit: 10,
	}
}

func (c *Controller[T]) State() State   { return c.state }
func (c *Controller[T]) Page() int      { return c.page }
func (c *Controller[T]) Limit() int     { return c.limit }
func (c *Controller[T]) Total() int64   { return c.total }
func (c *Controller[T]) LastErr() error { return c.lastErr }
func (c *Controller[T]) Form() *FormState {
	return c.form
}

// PageCount derives ceil(total/limit) from the last fetch.
func (c *Controller[T]) PageCount() int {
	if c.limit < 1 {
		return 0
	}
	return int((c.total + int64(c.limit) - 1) / int64(c.limit))
}

// Visible returns the filtered view of the currently fetched page.
func (c *Controller[T]) Visible() []T {
	return c.visible
}

// Load fetches the current page and re-derives the visible subset.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.state = StateLoading

	res, err := c.gw.GetAll(ctx, apiclient.ListOptions{Page: c.page, Limit: c.limit})
	if err != nil {
		c.state = StateFailed
		c.lastErr = err
		return err
	}

	c.lastErr = nil
	c.records = res.Data
	c.total = res.Total
	c.applyFilter()

	if len(c.records) == 0 {
		c.state = StateEmpty
	} else {
		c.state = StateLoaded
	}
	return nil
}

// SetPage changes the page and refetches when a page was already loaded.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	if page == c.page {
		return nil
	}
	c.page = page
	if c.state == StateIdle {
		return nil
	}
	return c.Load(ctx)
}

func (c *Controller[T]) SetLimit(ctx context.Context, limit int) error {
	if limit < 1 {
		limit = 1
	}
	if limit == c.limit {
		return nil
	}
	c.limit = limit
	if c.state == StateIdle {
		return nil
	}
	return c.Load(ctx)
}

// SetFilter replaces the local filter and re-derives the visible subset
// from the already-fetched page. No request is made; records on other
// pages are out of scope for the filter.
func (c *Controller[T]) SetFilter(pred func(T) bool) {
	c.filter = pred
	c.applyFilter()
}

func (c *Controller[T]) applyFilter() {
	if c.filter == nil {
		c.visible = c.records
		return
	}
	visible := make([]T, 0, len(c.records))
	for _, rec := range c.records {
		if c.filter(rec) {
			visible = append(visible, rec)
		}
	}
	c.visible = visible
}

// OpenAdd starts the add sub-flow.
func (c *Controller[T]) OpenAdd() {
	c.form = &FormState{Mode: FormAdd}
}

// OpenEdit starts the edit sub-flow for one record.
func (c *Controller[T]) OpenEdit(id int64) {
	c.form = &FormState{Mode: FormEdit, ID: id}
}

func (c *Controller[T]) CloseForm() {
	c.form = nil
}

// Submit sends the open form's payload. On failure the form stays open
// with its error set; on success it closes and the list is refetched in
// full rather than patched locally.
func (c *Controller[T]) Submit(ctx context.Context, payload any) error {
	if c.form == nil {
		return ErrNoForm
	}
	if c.form.Saving {
		return ErrSubmitInProgress
	}

	c.form.Saving = true
	var err error
	switch c.form.Mode {
	case FormEdit:
		_, err = c.gw.Update(ctx, c.form.ID, payload)
	default:
		_, err = c.gw.Create(ctx, payload)
	}
	c.form.Saving = false

	if err != nil {
		c.form.Err = err
		return err
	}

	c.form = nil
	return c.Load(ctx)
}

// RequestDelete marks a record for deletion; nothing is sent until
// ConfirmDelete.
func (c *Controller[T]) RequestDelete(id int64) {
	c.pendingDelete = &id
}

func (c *Controller[T]) CancelDelete() {
	c.pendingDelete = nil
}

// ConfirmDelete performs the pending delete and refetches on success.
func (c *Controller[T]) ConfirmDelete(ctx context.Context) error {
	if c.pendingDelete == nil {
		return ErrNoPendingDelete
	}
	id := *c.pendingDelete
	c.pendingDelete = nil

	if err := c.gw.Delete(ctx, id); err != nil {
		return err
	}
	return c.Load(ctx)
}

// ContainsFilter matches records whose JSON rendering contains the query,
// case-insensitively. It is the generic free-text filter used by list
// views that have no entity-specific predicate.
func ContainsFilter[T any](query string) func(T) bool {
	query = strings.ToLower(query)
	return func(rec T) bool {
		data, err := json.Marshal(rec)
		if err != nil {
			return false
		}
		return strings.Contains(strings.ToLower(string(data)), query)
	}
}
