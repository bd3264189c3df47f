package repository

import (
	"context"
	"database/sql"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/internal/errs"
)

// tableSpec tells a Store how one entity type maps onto its table. columns
// excludes id, which storage assigns.
type tableSpec[T any] struct {
	table   string
	columns []string
	values  func(*T) []any
	id      func(*T) *int
}

type opKind int

const (
	opAdd opKind = iota
	opUpdate
	opRemove
)

type change[T any] struct {
	kind   opKind
	entity *T
	id     int
}

// Store is a staged CRUD gateway over one table. Add, Update and Remove only
// stage work; Commit flushes everything staged so far in a single transaction
// and reports affected rows. Ids are written back through the staged pointer
// on commit. One Store is shared across requests, so staging and commit are
// serialized by the mutex; a failed commit drops its staged batch instead of
// retrying it against the next caller's changes.
type Store[T any] struct {
	db   *sqlx.DB
	log  *zap.Logger
	spec tableSpec[T]

	mu     sync.Mutex
	staged []change[T]
}

func newStore[T any](db *sqlx.DB, log *zap.Logger, spec tableSpec[T]) *Store[T] {
	return &Store[T]{
		db:   db,
		log:  log.Named("store." + spec.table),
		spec: spec,
	}
}

func (s *Store[T]) selectColumns() []string {
	return append([]string{"id"}, s.spec.columns...)
}

func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	query, args, err := qb.Select(s.selectColumns()...).
		From(s.spec.table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var items []T
	if err := s.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store[T]) GetByID(ctx context.Context, id int) (T, error) {
	var item T
	query, args, err := qb.Select(s.selectColumns()...).
		From(s.spec.table).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return item, err
	}

	if err := s.db.GetContext(ctx, &item, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return item, errs.ErrNotFound
		}
		return item, err
	}
	return item, nil
}

func (s *Store[T]) Add(e *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = append(s.staged, change[T]{kind: opAdd, entity: e})
}

func (s *Store[T]) Update(e *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = append(s.staged, change[T]{kind: opUpdate, entity: e})
}

// Remove stages deletion by id. Removing an id that does not exist is not an
// error; the commit just reports zero rows for it.
func (s *Store[T]) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staged = append(s.staged, change[T]{kind: opRemove, id: id})
}

func (s *Store[T]) Commit(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.staged) == 0 {
		return 0, nil
	}
	// The batch is consumed by this commit, pass or fail.
	defer func() { s.staged = s.staged[:0] }()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, commitErr(err)
	}
	defer tx.Rollback() //nolint:errcheck

	var affected int64
	for _, c := range s.staged {
		n, err := s.apply(ctx, tx, c)
		if err != nil {
			s.log.Error("commit", zap.Error(err))
			return 0, commitErr(err)
		}
		affected += n
	}

	if err := tx.Commit(); err != nil {
		return 0, commitErr(err)
	}
	return affected, nil
}

func (s *Store[T]) apply(ctx context.Context, tx *sqlx.Tx, c change[T]) (int64, error) {
	switch c.kind {
	case opAdd:
		query, args, err := qb.Insert(s.spec.table).
			Columns(s.spec.columns...).
			Values(s.spec.values(c.entity)...).
			Suffix("returning id").
			ToSql()
		if err != nil {
			return 0, err
		}
		var id int
		if err := tx.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		*s.spec.id(c.entity) = id
		return 1, nil

	case opUpdate:
		vals := s.spec.values(c.entity)
		set := make(map[string]any, len(s.spec.columns))
		for i, col := range s.spec.columns {
			set[col] = vals[i]
		}
		query, args, err := qb.Update(s.spec.table).
			SetMap(set).
			Where(sq.Eq{"id": *s.spec.id(c.entity)}).
			ToSql()
		if err != nil {
			return 0, err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()

	case opRemove:
		query, args, err := qb.Delete(s.spec.table).
			Where(sq.Eq{"id": c.id}).
			ToSql()
		if err != nil {
			return 0, err
		}
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, err
		}
		return res.RowsAffected()
	}
	return 0, nil
}
