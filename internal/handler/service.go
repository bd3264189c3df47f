package handler

import (
	"context"

	"github.com/dsalazr/biblioteca-service/internal/model"
	"github.com/dsalazr/biblioteca-service/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BibliotecaService interface {
	IssueLoan(ctx context.Context, bookID, memberID, loanDays int) (model.Loan, error)
	ReturnLoan(ctx context.Context, loanID int) (model.Loan, error)
	ListBooks(ctx context.Context) ([]model.BookWithCategory, error)
	SearchByAuthor(ctx context.Context, author string) ([]model.BookWithCategory, error)
	SearchByCategory(ctx context.Context, category string) ([]model.BookWithCategory, error)
	ActiveLoans(ctx context.Context) ([]model.ActiveLoan, error)
	GetStatistics(ctx context.Context) (model.Statistics, error)
	GetTopBorrowedBooks(ctx context.Context, limit int) ([]model.TopBorrowedBook, error)
}

var _ BibliotecaService = (*service.Service)(nil)
