// Package store is the persistence layer: one generic Table per entity,
// grouped in a Store built around an explicit *gorm.DB.
package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Diego-EC/questioner-backend/internal/model"
)

type Store struct {
	db  *gorm.DB
	now func() time.Time

	Roles          *Table[model.Role, *model.Role]
	Users          *Table[model.User, *model.User]
	Questions      *Table[model.Question, *model.Question]
	Answers        *Table[model.Answer, *model.Answer]
	QuestionImages *Table[model.QuestionImage, *model.QuestionImage]
	AnswerImages   *Table[model.AnswerImage, *model.AnswerImage]
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the clock used to stamp created/last_update.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New builds a Store over db. The clock defaults to db's NowFunc.
func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db, now: db.Config.NowFunc}
	for _, opt := range opts {
		opt(s)
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s.bind(db)
}

func (s *Store) bind(db *gorm.DB) *Store {
	return &Store{
		db:             db,
		now:            s.now,
		Roles:          newTable[model.Role](db, s.now, "role"),
		Users:          newTable[model.User](db, s.now, "user"),
		Questions:      newTable[model.Question](db, s.now, "question"),
		Answers:        newTable[model.Answer](db, s.now, "answer"),
		QuestionImages: newTable[model.QuestionImage](db, s.now, "question image"),
		AnswerImages:   newTable[model.AnswerImage](db, s.now, "answer image"),
	}
}

// Transaction runs fn against a Store bound to one transaction. Any error
// returned by fn rolls every statement back.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.bind(tx))
	})
}

// Dialect is the name of the underlying gorm dialector, e.g. "postgres".
func (s *Store) Dialect() string {
	return s.db.Dialector.Name()
}

// Now returns the store clock's current time.
func (s *Store) Now() time.Time {
	return s.now()
}
