package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/launchhub/launchhub-backend/internal/apperrors"
)

// Content is the surface the generic store needs from a model. Types
// without a slug inherit the empty GetSlug from ContentFields.
type Content interface {
	GetID() uint
	GetSlug() string
}

// FilterKind selects how a query parameter matches its column.
type FilterKind int

const (
	// FilterSubstring is a case-insensitive substring match.
	FilterSubstring FilterKind = iota
	// FilterExact matches the column value verbatim.
	FilterExact
	// FilterExactInt parses the parameter as an integer before matching.
	FilterExactInt
)

// FilterField binds one recognized query parameter to a column.
type FilterField struct {
	Param  string
	Column string
	Kind   FilterKind
}

// Schema configures one content type: its public name, whether it
// carries a slug, which columns the free-text search spans, and the
// extra filters its list endpoints recognize. One Schema plus one model
// type replaces a per-type copy of the whole CRUD module.
type Schema struct {
	Name          string
	HasSlug       bool
	SearchColumns []string
	Filters       []FilterField
}

// Store is the CRUD surface for a single content type.
type Store[T any, PT interface {
	*T
	Content
}] struct {
	db     *gorm.DB
	schema Schema
}

func NewStore[T any, PT interface {
	*T
	Content
}](db *gorm.DB, schema Schema) *Store[T, PT] {
	return &Store[T, PT]{db: db, schema: schema}
}

// Schema exposes the store's configuration to handlers.
func (s *Store[T, PT]) Schema() Schema { return s.schema }

// Create persists a new record. A colliding slug fails with ErrConflict
// before anything is written.
func (s *Store[T, PT]) Create(ctx context.Context, item PT) error {
	if s.schema.HasSlug {
		if item.GetSlug() == "" {
			return apperrors.NewValidation("slug", "could not derive a slug from the title")
		}
		taken, err := s.slugTaken(ctx, item.GetSlug(), 0)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%s slug %q: %w", s.schema.Name, item.GetSlug(), apperrors.ErrConflict)
		}
	}
	return s.db.WithContext(ctx).Create(item).Error
}

// GetByID fetches one record regardless of publication state.
func (s *Store[T, PT]) GetByID(ctx context.Context, id uint) (PT, error) {
	var item T
	err := s.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, translateGormError(err)
	}
	return PT(&item), nil
}

// GetByKey resolves a numeric id or, for slug-bearing types, a slug.
// With publishedOnly set, drafts are indistinguishable from missing
// records.
func (s *Store[T, PT]) GetByKey(ctx context.Context, key string, publishedOnly bool) (PT, error) {
	q := s.db.WithContext(ctx)
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	var item T
	if id, err := strconv.ParseUint(key, 10, 64); err == nil {
		err = q.First(&item, "id = ?", uint(id)).Error
		if err != nil {
			return nil, translateGormError(err)
		}
		return PT(&item), nil
	}

	if !s.schema.HasSlug {
		return nil, apperrors.ErrNotFound
	}
	if err := q.First(&item, "slug = ?", key).Error; err != nil {
		return nil, translateGormError(err)
	}
	return PT(&item), nil
}

// Update applies a partial field map and refreshes updated_at. The
// empty patch is a valid no-op on every field except the timestamp.
func (s *Store[T, PT]) Update(ctx context.Context, id uint, fields map[string]any) (PT, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if slugVal, ok := fields["slug"]; ok {
		newSlug, _ := slugVal.(string)
		if newSlug == "" {
			return nil, apperrors.NewValidation("slug", "must not be empty")
		}
		taken, err := s.slugTaken(ctx, newSlug, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%s slug %q: %w", s.schema.Name, newSlug, apperrors.ErrConflict)
		}
	}

	fields["updated_at"] = time.Now()
	if err := s.db.WithContext(ctx).Model(PT(new(T))).Where("id = ?", id).Updates(fields).Error; err != nil {
		return nil, translateGormError(err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes a record. Deleting the same id twice fails the second
// time with ErrNotFound.
func (s *Store[T, PT]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(PT(new(T)), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// List returns all matching records in insertion order. Unrecognized
// query parameters are ignored; recognized ones are ANDed together.
func (s *Store[T, PT]) List(ctx context.Context, params map[string]string, publishedOnly bool) ([]T, error) {
	q, err := s.applyFilters(s.db.WithContext(ctx).Model(PT(new(T))), params)
	if err != nil {
		return nil, err
	}
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}

	items := []T{}
	if err := q.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// IncrementViews bumps the view counter without touching updated_at.
func (s *Store[T, PT]) IncrementViews(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).
		Model(PT(new(T))).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

// Count returns the number of records, optionally published only.
func (s *Store[T, PT]) Count(ctx context.Context, publishedOnly bool) (int64, error) {
	q := s.db.WithContext(ctx).Model(PT(new(T)))
	if publishedOnly {
		q = q.Where("is_published = ?", true)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

// Recent returns the newest records for the admin dashboard.
func (s *Store[T, PT]) Recent(ctx context.Context, limit int) ([]T, error) {
	items := []T{}
	err := s.db.WithContext(ctx).Model(PT(new(T))).
		Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

// MostViewed returns the most read published records.
func (s *Store[T, PT]) MostViewed(ctx context.Context, limit int) ([]T, error) {
	items := []T{}
	err := s.db.WithContext(ctx).Model(PT(new(T))).
		Where("is_published = ?", true).
		Order("views DESC").Limit(limit).Find(&items).Error
	return items, err
}

func (s *Store[T, PT]) slugTaken(ctx context.Context, slug string, excludeID uint) (bool, error) {
	var n int64
	q := s.db.WithContext(ctx).Model(PT(new(T))).Where("slug = ?", slug)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// applyFilters translates the recognized query parameters into WHERE
// clauses. The free-text search ORs across the schema's search columns;
// everything else is ANDed. Absent parameters impose no constraint.
func (s *Store[T, PT]) applyFilters(q *gorm.DB, params map[string]string) (*gorm.DB, error) {
	if term := strings.TrimSpace(params["search"]); term != "" && len(s.schema.SearchColumns) > 0 {
		pattern := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(s.schema.SearchColumns))
		args := make([]any, len(s.schema.SearchColumns))
		for i, col := range s.schema.SearchColumns {
			clauses[i] = "LOWER(" + col + ") LIKE ?"
			args[i] = pattern
		}
		q = q.Where(strings.Join(clauses, " OR "), args...)
	}

	for _, f := range s.schema.Filters {
		v := strings.TrimSpace(params[f.Param])
		if v == "" {
			continue
		}
		switch f.Kind {
		case FilterSubstring:
			q = q.Where("LOWER("+f.Column+") LIKE ?", "%"+strings.ToLower(v)+"%")
		case FilterExact:
			q = q.Where(f.Column+" = ?", v)
		case FilterExactInt:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, apperrors.NewValidation(f.Param, "must be an integer")
			}
			q = q.Where(f.Column+" = ?", n)
		}
	}
	return q, nil
}

func translateGormError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.ErrNotFound
	}
	return err
}
