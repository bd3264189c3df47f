package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/dsalazr/biblioteca-service/internal/cli"
	"github.com/dsalazr/biblioteca-service/internal/model"
)

// stubService lets each test wire just the calls its scenario hits.
type stubService struct {
	issueLoan      func(bookID, memberID, loanDays int) (model.Loan, error)
	returnLoan     func(loanID int) (model.Loan, error)
	listBooks      func() ([]model.BookWithCategory, error)
	searchByAuthor func(author string) ([]model.BookWithCategory, error)
	activeLoans    func() ([]model.ActiveLoan, error)
	getStatistics  func() (model.Statistics, error)
	getTopBorrowed func(limit int) ([]model.TopBorrowedBook, error)
}

func (s *stubService) IssueLoan(_ context.Context, bookID, memberID, loanDays int) (model.Loan, error) {
	return s.issueLoan(bookID, memberID, loanDays)
}

func (s *stubService) ReturnLoan(_ context.Context, loanID int) (model.Loan, error) {
	return s.returnLoan(loanID)
}

func (s *stubService) ListBooks(_ context.Context) ([]model.BookWithCategory, error) {
	return s.listBooks()
}

func (s *stubService) SearchByAuthor(_ context.Context, author string) ([]model.BookWithCategory, error) {
	return s.searchByAuthor(author)
}

func (s *stubService) ActiveLoans(_ context.Context) ([]model.ActiveLoan, error) {
	return s.activeLoans()
}

func (s *stubService) GetStatistics(_ context.Context) (model.Statistics, error) {
	return s.getStatistics()
}

func (s *stubService) GetTopBorrowedBooks(_ context.Context, limit int) ([]model.TopBorrowedBook, error) {
	return s.getTopBorrowed(limit)
}

func runConsole(t *testing.T, svc cli.Service, input string) string {
	t.Helper()
	var out bytes.Buffer
	console := cli.New(svc, strings.NewReader(input), &out)
	require.NoError(t, console.Run(context.Background()))
	return out.String()
}

func TestConsole_ExitAndMenu(t *testing.T) {
	t.Parallel()
	out := runConsole(t, &stubService{}, "0\n")

	require.Contains(t, out, "=== LIBRARY MANAGEMENT ===")
	require.Contains(t, out, "--- MAIN MENU ---")
	require.Contains(t, out, "1. List all books")
	require.Contains(t, out, "0. Exit")
	require.Contains(t, out, "Bye!")
}

func TestConsole_EOFStopsLoop(t *testing.T) {
	t.Parallel()
	out := runConsole(t, &stubService{}, "")

	require.Contains(t, out, "--- MAIN MENU ---")
	require.NotContains(t, out, "Bye!")
}

func TestConsole_InvalidOption(t *testing.T) {
	t.Parallel()
	out := runConsole(t, &stubService{}, "9\n0\n")

	require.Contains(t, out, "Invalid option")
	require.Equal(t, 2, strings.Count(out, "--- MAIN MENU ---"))
}

func TestConsole_ListBooks(t *testing.T) {
	t.Parallel()
	svc := &stubService{
		listBooks: func() ([]model.BookWithCategory, error) {
			return []model.BookWithCategory{
				{
					Book: model.Book{
						ID:        1,
						Title:     "Cosmos",
						Author:    "Carl Sagan",
						Stock:     2,
						Available: true,
					},
					CategoryName: "Science",
				},
				{
					Book: model.Book{
						ID:     2,
						Title:  "SPQR",
						Author: "Mary Beard",
					},
					CategoryName: "History",
				},
			}, nil
		},
	}
	out := runConsole(t, svc, "1\n0\n")

	require.Contains(t, out, "=== CATALOG ===")
	require.Contains(t, out, "Title: Cosmos")
	require.Contains(t, out, "Status: Available (stock: 2)")
	require.Contains(t, out, "Title: SPQR")
	require.Contains(t, out, "Status: Borrowed (stock: 0)")
}

func TestConsole_SearchByAuthor(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		var gotAuthor string
		svc := &stubService{
			searchByAuthor: func(author string) ([]model.BookWithCategory, error) {
				gotAuthor = author
				return []model.BookWithCategory{
					{Book: model.Book{ID: 1, Title: "Cosmos", Author: "Carl Sagan", Available: true}},
				}, nil
			},
		}
		out := runConsole(t, svc, "2\nsagan\n0\n")

		require.Equal(t, "sagan", gotAuthor)
		require.Contains(t, out, "Author name: ")
		require.Contains(t, out, "Title: Cosmos")
	})

	t.Run("no matches", func(t *testing.T) {
		t.Parallel()
		svc := &stubService{
			searchByAuthor: func(string) ([]model.BookWithCategory, error) { return nil, nil },
		}
		out := runConsole(t, svc, "2\nnobody\n0\n")

		require.Contains(t, out, "No books found for that author")
	})
}

func TestConsole_IssueLoan(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc := &stubService{
			issueLoan: func(bookID, memberID, loanDays int) (model.Loan, error) {
				require.Equal(t, 1, bookID)
				require.Equal(t, 2, memberID)
				require.Equal(t, 14, loanDays)
				return model.Loan{
					ID:                 7,
					ExpectedReturnDate: time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		out := runConsole(t, svc, "3\n1\n2\n14\n0\n")

		require.Contains(t, out, "Loan 7 issued, due 24/03/2024")
	})

	t.Run("service error", func(t *testing.T) {
		t.Parallel()
		svc := &stubService{
			issueLoan: func(int, int, int) (model.Loan, error) {
				return model.Loan{}, errors.New("book is not available")
			},
		}
		out := runConsole(t, svc, "3\n1\n2\n14\n0\n")

		require.Contains(t, out, "Could not issue the loan")
	})

	t.Run("non numeric input aborts", func(t *testing.T) {
		t.Parallel()
		out := runConsole(t, &stubService{}, "3\nabc\n0\n")

		require.Contains(t, out, "Not a number")
		require.NotContains(t, out, "issued")
	})
}

func TestConsole_ReturnLoan(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		var gotID int
		svc := &stubService{
			returnLoan: func(loanID int) (model.Loan, error) {
				gotID = loanID
				return model.Loan{ID: loanID, Returned: true}, nil
			},
		}
		out := runConsole(t, svc, "4\n5\n0\n")

		require.Equal(t, 5, gotID)
		require.Contains(t, out, "Book returned")
	})

	t.Run("service error", func(t *testing.T) {
		t.Parallel()
		svc := &stubService{
			returnLoan: func(int) (model.Loan, error) {
				return model.Loan{}, errors.New("loan is already returned")
			},
		}
		out := runConsole(t, svc, "4\n5\n0\n")

		require.Contains(t, out, "Could not return the book")
	})
}

func TestConsole_Statistics(t *testing.T) {
	t.Parallel()
	svc := &stubService{
		getStatistics: func() (model.Statistics, error) {
			return model.Statistics{
				TotalBooks:     10,
				AvailableBooks: 7,
				BorrowedBooks:  3,
				TotalMembers:   5,
				ActiveMembers:  4,
			}, nil
		},
	}
	out := runConsole(t, svc, "5\n0\n")

	require.Contains(t, out, "=== LIBRARY STATISTICS ===")
	require.Contains(t, out, "Total books: 10")
	require.Contains(t, out, "Available books: 7")
	require.Contains(t, out, "Borrowed books: 3")
	require.Contains(t, out, "Active members: 4")
}

func TestConsole_TopBorrowed(t *testing.T) {
	t.Parallel()
	svc := &stubService{
		getTopBorrowed: func(limit int) ([]model.TopBorrowedBook, error) {
			require.Equal(t, 5, limit)
			return []model.TopBorrowedBook{
				{BookID: 1, Title: "Cosmos", LoanCount: 9},
				{BookID: 3, Title: "SPQR", LoanCount: 4},
			}, nil
		},
	}
	out := runConsole(t, svc, "6\n0\n")

	require.Contains(t, out, "=== TOP 5 BORROWED BOOKS ===")
	require.Contains(t, out, "Cosmos: 9 loans")
	require.Contains(t, out, "SPQR: 4 loans")
}

func TestConsole_ActiveLoans(t *testing.T) {
	t.Parallel()
	svc := &stubService{
		activeLoans: func() ([]model.ActiveLoan, error) {
			return []model.ActiveLoan{
				{
					LoanID:             5,
					BookTitle:          "Cosmos",
					MemberName:         "Ana",
					LoanDate:           time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
					ExpectedReturnDate: time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC),
					DaysElapsed:        4,
				},
			}, nil
		},
	}
	out := runConsole(t, svc, "7\n0\n")

	require.Contains(t, out, "=== ACTIVE LOANS ===")
	require.Contains(t, out, "Book: Cosmos")
	require.Contains(t, out, "Member: Ana")
	require.Contains(t, out, "Days elapsed: 4")
}
