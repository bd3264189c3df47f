package repository

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/internal/model"
)

func NewCategoryStore(db *sqlx.DB, log *zap.Logger) *Store[model.Category] {
	return newStore(db, log, tableSpec[model.Category]{
		table:   categoriesTableName,
		columns: []string{"name", "description"},
		values: func(c *model.Category) []any {
			return []any{c.Name, c.Description}
		},
		id: func(c *model.Category) *int { return &c.ID },
	})
}

func NewBookStore(db *sqlx.DB, log *zap.Logger) *Store[model.Book] {
	return newStore(db, log, tableSpec[model.Book]{
		table:   booksTableName,
		columns: []string{"title", "author", "isbn", "category_id", "publication_date", "stock", "available"},
		values: func(b *model.Book) []any {
			return []any{b.Title, b.Author, b.ISBN, b.CategoryID, b.PublicationDate, b.Stock, b.Available}
		},
		id: func(b *model.Book) *int { return &b.ID },
	})
}

func NewMemberStore(db *sqlx.DB, log *zap.Logger) *Store[model.Member] {
	return newStore(db, log, tableSpec[model.Member]{
		table:   membersTableName,
		columns: []string{"name", "email", "phone", "registration_date", "active"},
		values: func(m *model.Member) []any {
			return []any{m.Name, m.Email, m.Phone, m.RegistrationDate, m.Active}
		},
		id: func(m *model.Member) *int { return &m.ID },
	})
}

func NewLoanStore(db *sqlx.DB, log *zap.Logger) *Store[model.Loan] {
	return newStore(db, log, tableSpec[model.Loan]{
		table:   loansTableName,
		columns: []string{"book_id", "member_id", "loan_date", "expected_return_date", "actual_return_date", "returned"},
		values: func(l *model.Loan) []any {
			return []any{l.BookID, l.MemberID, l.LoanDate, l.ExpectedReturnDate, l.ActualReturnDate, l.Returned}
		},
		id: func(l *model.Loan) *int { return &l.ID },
	})
}
