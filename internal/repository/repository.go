package repository

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/internal/errs"
	"github.com/dsalazr/biblioteca-service/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	GetBook(ctx context.Context, id int) (model.Book, error)
	GetMember(ctx context.Context, id int) (model.Member, error)
	GetLoan(ctx context.Context, id int) (model.Loan, error)
	ListBooks(ctx context.Context) ([]model.BookWithCategory, error)
	SearchByAuthor(ctx context.Context, author string) ([]model.BookWithCategory, error)
	SearchByCategory(ctx context.Context, category string) ([]model.BookWithCategory, error)
	ActiveLoans(ctx context.Context) ([]model.ActiveLoan, error)
	Statistics(ctx context.Context) (model.Statistics, error)
	TopBorrowedBooks(ctx context.Context, limit int) ([]model.TopBorrowedBook, error)
	CreateLoan(ctx context.Context, loan model.Loan, book model.Book) (model.Loan, error)
	CompleteLoan(ctx context.Context, loan model.Loan, book model.Book) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	categoriesTableName = `categories`
	booksTableName      = `books`
	membersTableName    = `members`
	loansTableName      = `loans`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var bookColumns = []string{"id", "title", "author", "isbn", "category_id", "publication_date", "stock", "available"}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	query, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}

	var book model.Book
	if err := r.db.GetContext(ctx, &book, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetMember(ctx context.Context, id int) (model.Member, error) {
	query, args, err := qb.Select("id", "name", "email", "phone", "registration_date", "active").
		From(membersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Member{}, err
	}

	var member model.Member
	if err := r.db.GetContext(ctx, &member, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Member{}, errs.ErrNotFound
		}
		return model.Member{}, err
	}
	return member, nil
}

func (r *repository) GetLoan(ctx context.Context, id int) (model.Loan, error) {
	query, args, err := qb.Select("id", "book_id", "member_id", "loan_date", "expected_return_date", "actual_return_date", "returned").
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}

	var loan model.Loan
	if err := r.db.GetContext(ctx, &loan, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNotFound
		}
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) booksWithCategory() sq.SelectBuilder {
	return qb.Select("b.id", "b.title", "b.author", "b.isbn", "b.category_id", "b.publication_date", "b.stock", "b.available",
		"c.name as category_name", "c.description as category_description").
		From(booksTableName + " b").
		Join(fmt.Sprintf("%s c on c.id = b.category_id", categoriesTableName))
}

func (r *repository) ListBooks(ctx context.Context) ([]model.BookWithCategory, error) {
	query, args, err := r.booksWithCategory().
		OrderBy("b.title").
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookWithCategory
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// SearchByAuthor matches a substring of the author, case-insensitively.
func (r *repository) SearchByAuthor(ctx context.Context, author string) ([]model.BookWithCategory, error) {
	query, args, err := r.booksWithCategory().
		Where(sq.ILike{"b.author": "%" + author + "%"}).
		ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("SearchByAuthor", zap.String("query", query), zap.Any("args", args))

	var books []model.BookWithCategory
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// SearchByCategory matches a substring of the joined category name,
// case-insensitively.
func (r *repository) SearchByCategory(ctx context.Context, category string) ([]model.BookWithCategory, error) {
	query, args, err := r.booksWithCategory().
		Where(sq.ILike{"c.name": "%" + category + "%"}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var books []model.BookWithCategory
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ActiveLoans(ctx context.Context) ([]model.ActiveLoan, error) {
	q := `
select l.id, l.book_id, b.title as book_title, l.member_id, m.name as member_name,
       l.loan_date, l.expected_return_date,
       date_part('day', now() - l.loan_date)::int as days_elapsed
from loans l
join books b on b.id = l.book_id
join members m on m.id = l.member_id
where not l.returned
order by l.loan_date`

	var loans []model.ActiveLoan
	if err := r.db.SelectContext(ctx, &loans, q); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) Statistics(ctx context.Context) (model.Statistics, error) {
	q := `
select (select count(*) from books)                 as total_books,
       (select count(*) from books where available) as available_books,
       (select count(*) from members)               as total_members,
       (select count(*) from members where active)  as active_members`

	var stats model.Statistics
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return model.Statistics{}, err
	}
	return stats, nil
}

func (r *repository) TopBorrowedBooks(ctx context.Context, limit int) ([]model.TopBorrowedBook, error) {
	q := `
select l.book_id, b.title, count(*) as loan_count
from loans l
join books b on b.id = l.book_id
group by l.book_id, b.title
order by loan_count desc, l.book_id
limit $1`

	var top []model.TopBorrowedBook
	if err := r.db.SelectContext(ctx, &top, q, limit); err != nil {
		return nil, err
	}
	return top, nil
}

// CreateLoan persists a new loan and the issued book state in one transaction.
// The book update is guarded on the availability flag, so a raced issue on the
// same book affects zero rows and fails instead of driving stock negative.
func (r *repository) CreateLoan(ctx context.Context, loan model.Loan, book model.Book) (model.Loan, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Loan{}, commitErr(err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`update books set stock = $2, available = $3 where id = $1 and available`,
		book.ID, book.Stock, book.Available)
	if err != nil {
		return model.Loan{}, commitErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Loan{}, errs.ErrBookUnavailable
	}

	query, args, err := qb.Insert(loansTableName).
		Columns("book_id", "member_id", "loan_date", "expected_return_date", "returned").
		Values(loan.BookID, loan.MemberID, loan.LoanDate, loan.ExpectedReturnDate, loan.Returned).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.Loan{}, err
	}
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&loan.ID); err != nil {
		r.log.Error("CreateLoan", zap.String("q", query), zap.Any("args", args))
		return model.Loan{}, commitErr(err)
	}

	if err := tx.Commit(); err != nil {
		return model.Loan{}, commitErr(err)
	}
	return loan, nil
}

// CompleteLoan persists a closed loan and the returned book state in one
// transaction, guarded against the loan being returned twice.
func (r *repository) CompleteLoan(ctx context.Context, loan model.Loan, book model.Book) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return commitErr(err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx,
		`update loans set actual_return_date = $2, returned = true where id = $1 and not returned`,
		loan.ID, loan.ActualReturnDate)
	if err != nil {
		return commitErr(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrLoanAlreadyReturned
	}

	if _, err := tx.ExecContext(ctx,
		`update books set stock = $2, available = $3 where id = $1`,
		book.ID, book.Stock, book.Available); err != nil {
		return commitErr(err)
	}

	if err := tx.Commit(); err != nil {
		return commitErr(err)
	}
	return nil
}

// commitErr folds storage failures into the persistence sentinel, keeping the
// postgres detail in the message.
func commitErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return errors.WithMessagef(errs.ErrPersistence, "constraint %s", pgErr.ConstraintName)
		}
		return errors.WithMessagef(errs.ErrPersistence, "%s: %s", pgErr.Code, pgErr.Message)
	}
	return errors.WithMessage(errs.ErrPersistence, err.Error())
}
