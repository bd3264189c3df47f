package repository_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/internal/errs"
	"github.com/dsalazr/biblioteca-service/internal/model"
	"github.com/dsalazr/biblioteca-service/internal/repository"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() }) //nolint:errcheck
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestStore_List(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewLoanStore(db, zap.NewExample())

	loanDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, book_id, member_id, loan_date, expected_return_date, actual_return_date, returned FROM loans ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "member_id", "loan_date", "expected_return_date", "actual_return_date", "returned"}).
			AddRow(1, 1, 2, loanDate, loanDate.AddDate(0, 0, 14), nil, false).
			AddRow(2, 3, 2, loanDate, loanDate.AddDate(0, 0, 7), loanDate.AddDate(0, 0, 5), true))

	loans, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, loans, 2)
	require.Equal(t, 1, loans[0].ID)
	require.False(t, loans[0].Returned)
	require.True(t, loans[1].Returned)
	require.NotNil(t, loans[1].ActualReturnDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetByID_NotFound(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewCategoryStore(db, zap.NewExample())

	mock.ExpectQuery(`SELECT id, name, description FROM categories WHERE id = $1 LIMIT 1`).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err := store.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, errs.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitAssignsID(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewCategoryStore(db, zap.NewExample())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO categories (name,description) VALUES ($1,$2) returning id`).
		WithArgs("Science", "Popular science and reference").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	cat := model.Category{Name: "Science", Description: "Popular science and reference"}
	store.Add(&cat)

	affected, err := store.Commit(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
	require.Equal(t, 7, cat.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A removed id that no row carries is not an error; the batch just counts
// zero rows for it.
func TestStore_CommitReportsAffectedRows(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewCategoryStore(db, zap.NewExample())

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE categories SET description = $1, name = $2 WHERE id = $3`).
		WithArgs("Long-form fiction", "Novel", 3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM categories WHERE id = $1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	store.Update(&model.Category{ID: 3, Name: "Novel", Description: "Long-form fiction"})
	store.Remove(99)

	affected, err := store.Commit(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CommitNothingStaged(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewCategoryStore(db, zap.NewExample())

	affected, err := store.Commit(context.Background())
	require.NoError(t, err)
	require.Zero(t, affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A failed batch must not stay queued and poison the next commit.
func TestStore_FailedCommitDropsBatch(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewCategoryStore(db, zap.NewExample())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO categories (name,description) VALUES ($1,$2) returning id`).
		WithArgs("Novel", "").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	store.Add(&model.Category{Name: "Novel"})

	_, err := store.Commit(context.Background())
	require.ErrorIs(t, err, errs.ErrPersistence)

	affected, err := store.Commit(context.Background())
	require.NoError(t, err)
	require.Zero(t, affected)
	require.NoError(t, mock.ExpectationsWereMet())
}

// One store per table is shared across requests; staging from concurrent
// goroutines must not lose or cross-flush entries.
func TestStore_ConcurrentStaging(t *testing.T) {
	t.Parallel()
	db, mock := newMockDB(t)
	store := repository.NewCategoryStore(db, zap.NewExample())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO categories (name,description) VALUES ($1,$2) returning id`).
		WithArgs("Science", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO categories (name,description) VALUES ($1,$2) returning id`).
		WithArgs("Science", "").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	first := model.Category{Name: "Science"}
	second := model.Category{Name: "Science"}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		store.Add(&first)
	}()
	go func() {
		defer wg.Done()
		store.Add(&second)
	}()
	wg.Wait()

	affected, err := store.Commit(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, affected)
	require.ElementsMatch(t, []int{1, 2}, []int{first.ID, second.ID})
	require.NoError(t, mock.ExpectationsWereMet())
}
