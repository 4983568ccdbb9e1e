// Package store holds the authoritative in-memory expense state and the
// mutation operations over it.
package store

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tally/internal/aggregate"
	"tally/internal/apperrors"
	"tally/internal/model"

	"github.com/google/uuid"
)

// Persister supplies the initial snapshot at construction and receives a new
// snapshot after every mutation. Saving is best-effort: a failed save is
// logged and never fails or rolls back the mutation.
type Persister interface {
	Load() (model.Snapshot, error)
	Save(model.Snapshot) error
}

// Store is the single source of truth for expenses, tags, and settings.
// Every operation runs to completion behind one mutex, so no observer ever
// sees a partial mutation, and the current-month view is recomputed before
// the mutex is released.
type Store struct {
	mu        sync.Mutex
	persister Persister
	logger    *slog.Logger

	allExpenses     []model.Expense
	currentMonth    []model.Expense
	currentDate     time.Time
	tags            []model.Tag
	defaultCurrency model.Currency
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithLogger sets the logger used to report best-effort save failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithDefaultCurrency sets the currency used when the loaded snapshot does
// not carry one, e.g. on a fresh database.
func WithDefaultCurrency(c model.Currency) Option {
	return func(s *Store) {
		if c.Valid() {
			s.defaultCurrency = c
		}
	}
}

// New builds a store seeded from the persister's snapshot. A nil persister
// yields an empty in-memory store. The month cursor starts at the current
// local time.
func New(p Persister, opts ...Option) (*Store, error) {
	s := &Store{
		persister:       p,
		logger:          slog.Default(),
		currentDate:     time.Now(),
		defaultCurrency: model.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(s)
	}

	if p != nil {
		snap, err := p.Load()
		if err != nil {
			return nil, fmt.Errorf("loading snapshot: %w", err)
		}
		s.allExpenses = snap.Expenses
		s.tags = snap.Tags
		if snap.DefaultCurrency != "" {
			s.defaultCurrency = snap.DefaultCurrency
		}
	}

	s.refreshCurrentMonth()
	return s, nil
}

// AddExpense validates the input, assigns a fresh id, stamps the store's
// default currency (any caller-supplied currency is ignored), and appends
// the expense. The created expense is returned.
func (s *Store) AddExpense(v model.ExpenseFormValues) (model.Expense, error) {
	if err := model.ValidateExpenseForm(v); err != nil {
		return model.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e := model.Expense{
		ID:       uuid.NewString(),
		Name:     v.Name,
		Amount:   v.Amount,
		Currency: s.defaultCurrency,
		Date:     v.Date,
		TagID:    v.TagID,
	}
	s.allExpenses = append(s.allExpenses, e)
	s.refreshCurrentMonth()
	s.persist()
	return e, nil
}

// UpdateExpense replaces every field of the matching expense except its id.
// Unlike AddExpense, the caller-supplied currency is honored here, so it
// must name a supported currency.
func (s *Store) UpdateExpense(id string, v model.ExpenseFormValues) error {
	if err := model.ValidateExpenseForm(v); err != nil {
		return err
	}
	if !v.Currency.Valid() {
		return fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, v.Currency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.allExpenses {
		if e.ID != id {
			continue
		}
		s.allExpenses[i] = model.Expense{
			ID:       id,
			Name:     v.Name,
			Amount:   v.Amount,
			Currency: v.Currency,
			Date:     v.Date,
			TagID:    v.TagID,
		}
		s.refreshCurrentMonth()
		s.persist()
		return nil
	}
	return fmt.Errorf("expense %s: %w", id, apperrors.ErrNotFound)
}

// DeleteExpense removes the expense if present. Deleting an id that does not
// exist is a no-op, never an error.
func (s *Store) DeleteExpense(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.allExpenses {
		if e.ID == id {
			s.allExpenses = append(s.allExpenses[:i], s.allExpenses[i+1:]...)
			s.refreshCurrentMonth()
			s.persist()
			return
		}
	}
}

// SetCurrentDate moves the month cursor and recomputes the current-month
// view against it.
func (s *Store) SetCurrentDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentDate = date
	s.refreshCurrentMonth()
}

// AddTag validates the input, assigns a fresh id, and appends the tag. An
// empty color falls back to the palette default. The created tag is returned
// so callers can reference its id immediately.
func (s *Store) AddTag(v model.TagFormValues) (model.Tag, error) {
	if v.Color == "" {
		v.Color = model.DefaultColor
	}
	if err := model.ValidateTagForm(v); err != nil {
		return model.Tag{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := model.Tag{ID: uuid.NewString(), Name: v.Name, Color: v.Color}
	s.tags = append(s.tags, t)
	s.persist()
	return t, nil
}

// UpdateTag replaces the name and color of the tag matching t.ID.
func (s *Store) UpdateTag(t model.Tag) error {
	if err := model.ValidateTagForm(model.TagFormValues{Name: t.Name, Color: t.Color}); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.tags {
		if existing.ID == t.ID {
			s.tags[i] = t
			s.persist()
			return nil
		}
	}
	return fmt.Errorf("tag %s: %w", t.ID, apperrors.ErrNotFound)
}

// DeleteTag removes the tag unless any expense still references it, in which
// case the operation is refused with apperrors.ErrTagInUse and state is left
// unchanged. Deleting an absent id is a no-op.
func (s *Store) DeleteTag(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.allExpenses {
		if e.TagID == id {
			return fmt.Errorf("tag %s: %w", id, apperrors.ErrTagInUse)
		}
	}

	for i, t := range s.tags {
		if t.ID == id {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			s.persist()
			return nil
		}
	}
	return nil
}

// SetDefaultCurrency changes the currency stamped onto future expenses.
// Existing expenses keep the currency they were created with.
func (s *Store) SetDefaultCurrency(c model.Currency) error {
	if !c.Valid() {
		return fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.defaultCurrency = c
	s.persist()
	return nil
}

// Expenses returns a copy of the full expense history.
func (s *Store) Expenses() []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Expense(nil), s.allExpenses...)
}

// CurrentMonthExpenses returns a copy of the derived current-month view.
func (s *Store) CurrentMonthExpenses() []model.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Expense(nil), s.currentMonth...)
}

// Tags returns a copy of the tag collection.
func (s *Store) Tags() []model.Tag {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Tag(nil), s.tags...)
}

// CurrentDate returns the month cursor.
func (s *Store) CurrentDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDate
}

// DefaultCurrency returns the currency stamped onto new expenses.
func (s *Store) DefaultCurrency() model.Currency {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.defaultCurrency
}

// Snapshot returns a copy of the persistable state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// refreshCurrentMonth recomputes the derived view. Callers hold mu.
func (s *Store) refreshCurrentMonth() {
	s.currentMonth = aggregate.FilterByMonth(s.allExpenses, s.currentDate)
}

// persist hands the new snapshot to the persister. Callers hold mu.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.snapshotLocked()); err != nil {
		s.logger.Warn("saving snapshot failed", "error", err)
	}
}

func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Expenses:        append([]model.Expense(nil), s.allExpenses...),
		Tags:            append([]model.Tag(nil), s.tags...),
		DefaultCurrency: s.defaultCurrency,
	}
}
