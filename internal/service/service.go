package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/dsalazr/biblioteca-service/internal/errs"
	"github.com/dsalazr/biblioteca-service/internal/model"
	"github.com/dsalazr/biblioteca-service/internal/repository"
)

type Service struct {
	log  *zap.Logger
	repo repository.Repository
}

func NewService(repo repository.Repository, log *zap.Logger) *Service {
	return &Service{
		log:  log,
		repo: repo,
	}
}

// IssueLoan lends a book to a member for loanDays days. Preconditions are
// checked in order: book exists, member exists, book available, member
// active. Any failed check leaves storage untouched.
func (s *Service) IssueLoan(ctx context.Context, bookID, memberID, loanDays int) (model.Loan, error) {
	book, err := s.repo.GetBook(ctx, bookID)
	if err != nil {
		return model.Loan{}, err
	}
	member, err := s.repo.GetMember(ctx, memberID)
	if err != nil {
		return model.Loan{}, err
	}
	if !book.Available {
		return model.Loan{}, errs.ErrBookUnavailable
	}
	if !member.Active {
		return model.Loan{}, errs.ErrMemberInactive
	}

	loan := model.NewLoan(book.ID, member.ID, time.Now().UTC(), loanDays)
	book.ApplyIssue()

	loan, err = s.repo.CreateLoan(ctx, loan, book)
	if err != nil {
		return model.Loan{}, err
	}
	s.log.Info("loan issued",
		zap.Int("loanId", loan.ID),
		zap.Int("bookId", book.ID),
		zap.Int("memberId", member.ID),
		zap.Int("loanDays", loanDays))
	return loan, nil
}

// ReturnLoan closes an open loan and puts the copy back on the shelf.
func (s *Service) ReturnLoan(ctx context.Context, loanID int) (model.Loan, error) {
	loan, err := s.repo.GetLoan(ctx, loanID)
	if err != nil {
		return model.Loan{}, err
	}
	if loan.Returned {
		return model.Loan{}, errs.ErrLoanAlreadyReturned
	}
	book, err := s.repo.GetBook(ctx, loan.BookID)
	if err != nil {
		return model.Loan{}, err
	}

	loan.Close(time.Now().UTC())
	book.ApplyReturn()

	if err := s.repo.CompleteLoan(ctx, loan, book); err != nil {
		return model.Loan{}, err
	}
	s.log.Info("loan returned", zap.Int("loanId", loan.ID), zap.Int("bookId", book.ID))
	return loan, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]model.BookWithCategory, error) {
	return s.repo.ListBooks(ctx)
}

func (s *Service) SearchByAuthor(ctx context.Context, author string) ([]model.BookWithCategory, error) {
	return s.repo.SearchByAuthor(ctx, author)
}

func (s *Service) SearchByCategory(ctx context.Context, category string) ([]model.BookWithCategory, error) {
	return s.repo.SearchByCategory(ctx, category)
}

func (s *Service) ActiveLoans(ctx context.Context) ([]model.ActiveLoan, error) {
	return s.repo.ActiveLoans(ctx)
}

// GetStatistics recomputes the catalog and member counts on every call.
// BorrowedBooks is derived from the other two book counts.
func (s *Service) GetStatistics(ctx context.Context) (model.Statistics, error) {
	stats, err := s.repo.Statistics(ctx)
	if err != nil {
		return model.Statistics{}, err
	}
	stats.BorrowedBooks = stats.TotalBooks - stats.AvailableBooks
	return stats, nil
}

// GetTopBorrowedBooks ranks books by how often they were ever loaned,
// returned loans included. Ties break on the lower book id.
func (s *Service) GetTopBorrowedBooks(ctx context.Context, limit int) ([]model.TopBorrowedBook, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.repo.TopBorrowedBooks(ctx, limit)
}
