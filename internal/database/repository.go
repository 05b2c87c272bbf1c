package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/crastudio/crastudio/domain/record"
	"gorm.io/gorm"
)

// ErrNotFound indicates the requested entity was not found.
var ErrNotFound = errors.New("entity not found")

// ErrDuplicateKey indicates an insert violated a uniqueness constraint.
var ErrDuplicateKey = errors.New("duplicate key")

// Repository provides generic persistence operations for one entity type
// using record.Option-based queries. The application instantiates one
// Repository per table; entity rows are stored and returned as-is, with no
// separate domain/model mapping layer.
type Repository[E any] struct {
	db    Database
	label string
}

// NewRepository creates a new Repository.
func NewRepository[E any](db Database, label string) Repository[E] {
	return Repository[E]{
		db:    db,
		label: label,
	}
}

// Create inserts a new row, assigning the auto-incremented identifier to the
// entity. Uniqueness violations are reported as ErrDuplicateKey.
func (r Repository[E]) Create(ctx context.Context, entity *E) error {
	result := r.db.Session(ctx).Create(entity)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return fmt.Errorf("create %s: %w", r.label, ErrDuplicateKey)
		}
		return fmt.Errorf("create %s: %w", r.label, result.Error)
	}
	return nil
}

// Find retrieves entities matching the given options.
func (r Repository[E]) Find(ctx context.Context, options ...record.Option) ([]E, error) {
	var entities []E
	db := ApplyOptions(r.db.Session(ctx).Model(new(E)), options...)
	result := db.Find(&entities)
	if result.Error != nil {
		return nil, fmt.Errorf("find %s: %w", r.label, result.Error)
	}
	return entities, nil
}

// FindOne retrieves a single entity matching the given options.
func (r Repository[E]) FindOne(ctx context.Context, options ...record.Option) (E, error) {
	var entity E
	db := ApplyOptions(r.db.Session(ctx).Model(new(E)), options...)
	result := db.First(&entity)
	if result.Error != nil {
		var zero E
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, r.label)
		}
		return zero, fmt.Errorf("find one %s: %w", r.label, result.Error)
	}
	return entity, nil
}

// Exists checks if any entity matches the given options.
func (r Repository[E]) Exists(ctx context.Context, options ...record.Option) (bool, error) {
	count, err := r.Count(ctx, options...)
	if err != nil {
		return false, fmt.Errorf("check %s exists: %w", r.label, err)
	}
	return count > 0, nil
}

// Count returns the number of entities matching the given options.
func (r Repository[E]) Count(ctx context.Context, options ...record.Option) (int64, error) {
	var count int64
	db := ApplyConditions(r.db.Session(ctx).Model(new(E)), options...)
	if result := db.Count(&count); result.Error != nil {
		return 0, fmt.Errorf("count %s: %w", r.label, result.Error)
	}
	return count, nil
}

// Updates sets the given column values on every row matching the options and
// returns the number of rows affected.
func (r Repository[E]) Updates(ctx context.Context, values map[string]any, options ...record.Option) (int64, error) {
	db := ApplyConditions(r.db.Session(ctx).Model(new(E)), options...)
	result := db.Updates(values)
	if result.Error != nil {
		return 0, fmt.Errorf("update %s: %w", r.label, result.Error)
	}
	return result.RowsAffected, nil
}

// DB returns the underlying GORM session for custom queries.
func (r Repository[E]) DB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx)
}

// isUniqueViolation detects uniqueness-constraint errors across the
// supported drivers. GORM exposes ErrDuplicatedKey for translated errors;
// the string checks cover SQLite and PostgreSQL messages that are not.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
