package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Diego-EC/questioner-backend/internal/apperror"
)

// Record is the pointer type of a model that embeds model.Base.
type Record[T any] interface {
	*T
	Touch(now time.Time)
	Key() uint
}

// Table is the uniform CRUD surface over one model type.
type Table[T any, P Record[T]] struct {
	db     *gorm.DB
	now    func() time.Time
	entity string
}

func newTable[T any, P Record[T]](db *gorm.DB, now func() time.Time, entity string) *Table[T, P] {
	return &Table[T, P]{db: db, now: now, entity: entity}
}

// Entity is the singular name used in not-found messages.
func (t *Table[T, P]) Entity() string {
	return t.entity
}

// Insert stamps rec's timestamps and stores it. Associations are not
// written; each table owns only its own rows.
func (t *Table[T, P]) Insert(ctx context.Context, rec P) error {
	rec.Touch(t.now())
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error; err != nil {
		return translate(err)
	}
	return nil
}

// InsertMany stamps and stores recs in one statement.
func (t *Table[T, P]) InsertMany(ctx context.Context, recs []P) error {
	if len(recs) == 0 {
		return nil
	}
	now := t.now()
	for _, rec := range recs {
		rec.Touch(now)
	}
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(recs).Error; err != nil {
		return translate(err)
	}
	return nil
}

// Get loads the row with the given id. preloads name associations to load with it.
func (t *Table[T, P]) Get(ctx context.Context, id uint, preloads ...string) (P, error) {
	q := t.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var rec T
	if err := q.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(t.entity)
		}
		return nil, translate(err)
	}
	return &rec, nil
}

// FindBy loads the first row whose column equals value.
func (t *Table[T, P]) FindBy(ctx context.Context, column string, value any, preloads ...string) (P, error) {
	q := t.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var rec T
	if err := q.Where(map[string]any{column: value}).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(t.entity)
		}
		return nil, translate(err)
	}
	return &rec, nil
}

// Exists reports whether any row has column equal to value.
func (t *Table[T, P]) Exists(ctx context.Context, column string, value any) (bool, error) {
	var count int64
	err := t.db.WithContext(ctx).Model(new(T)).Where(map[string]any{column: value}).Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// Update applies fields to the row with the given id and re-stamps
// last_update. Fields absent from the map are left untouched.
func (t *Table[T, P]) Update(ctx context.Context, id uint, fields map[string]any) error {
	exists, err := t.Exists(ctx, "id", id)
	if err != nil {
		return err
	}
	if !exists {
		return apperror.NotFound(t.entity)
	}
	_, err = t.UpdateBy(ctx, "id", id, fields)
	return err
}

// UpdateBy applies fields to every row whose column equals value (or is
// in value, for slices) and returns the number of rows matched.
func (t *Table[T, P]) UpdateBy(ctx context.Context, column string, value any, fields map[string]any) (int64, error) {
	set := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		set[k] = v
	}
	set["last_update"] = t.now()

	res := t.db.WithContext(ctx).Model(new(T)).Where(map[string]any{column: value}).Updates(set)
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// Delete removes the row with the given id.
func (t *Table[T, P]) Delete(ctx context.Context, id uint) error {
	n, err := t.DeleteBy(ctx, "id", id)
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound(t.entity)
	}
	return nil
}

// DeleteBy removes every row whose column equals value (or is in value,
// for slices) and returns how many were removed.
func (t *Table[T, P]) DeleteBy(ctx context.Context, column string, value any) (int64, error) {
	res := t.db.WithContext(ctx).Where(map[string]any{column: value}).Delete(new(T))
	if res.Error != nil {
		return 0, translate(res.Error)
	}
	return res.RowsAffected, nil
}

// List returns every row ordered by id.
func (t *Table[T, P]) List(ctx context.Context, preloads ...string) ([]T, error) {
	q := t.db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	recs := []T{}
	if err := q.Order("id").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

// ListBy returns rows whose column equals value (or is in value, for
// slices), ordered by id.
func (t *Table[T, P]) ListBy(ctx context.Context, column string, value any) ([]T, error) {
	recs := []T{}
	if err := t.db.WithContext(ctx).Where(map[string]any{column: value}).Order("id").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

// Where returns rows matching a raw condition, ordered by id.
func (t *Table[T, P]) Where(ctx context.Context, query string, args ...any) ([]T, error) {
	recs := []T{}
	if err := t.db.WithContext(ctx).Where(query, args...).Order("id").Find(&recs).Error; err != nil {
		return nil, translate(err)
	}
	return recs, nil
}

// IDsBy returns the ids of rows whose column equals value.
func (t *Table[T, P]) IDsBy(ctx context.Context, column string, value any) ([]uint, error) {
	ids := []uint{}
	err := t.db.WithContext(ctx).Model(new(T)).Where(map[string]any{column: value}).Order("id").Pluck("id", &ids).Error
	if err != nil {
		return nil, translate(err)
	}
	return ids, nil
}

// CountBy groups rows by column and counts them, restricted to the given keys.
func (t *Table[T, P]) CountBy(ctx context.Context, column string, keys []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(keys))
	if len(keys) == 0 {
		return counts, nil
	}

	var rows []struct {
		GroupKey uint
		Total    int64
	}
	err := t.db.WithContext(ctx).Model(new(T)).
		Select(column+" AS group_key, COUNT(*) AS total").
		Where(map[string]any{column: keys}).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	for _, r := range rows {
		counts[r.GroupKey] = r.Total
	}
	return counts, nil
}
