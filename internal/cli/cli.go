package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dsalazr/biblioteca-service/internal/model"
)

// Service is the slice of the library service the console needs.
type Service interface {
	IssueLoan(ctx context.Context, bookID, memberID, loanDays int) (model.Loan, error)
	ReturnLoan(ctx context.Context, loanID int) (model.Loan, error)
	ListBooks(ctx context.Context) ([]model.BookWithCategory, error)
	SearchByAuthor(ctx context.Context, author string) ([]model.BookWithCategory, error)
	ActiveLoans(ctx context.Context) ([]model.ActiveLoan, error)
	GetStatistics(ctx context.Context) (model.Statistics, error)
	GetTopBorrowedBooks(ctx context.Context, limit int) ([]model.TopBorrowedBook, error)
}

// Console is the interactive menu shell. It collapses service errors into a
// plain could/could-not outcome; everything richer stays behind the service.
type Console struct {
	svc Service
	in  *bufio.Scanner
	out io.Writer
}

func New(svc Service, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== LIBRARY MANAGEMENT ===")
	for {
		c.printMenu()
		choice, ok := c.readLine()
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "1":
			c.listBooks(ctx)
		case "2":
			c.searchByAuthor(ctx)
		case "3":
			c.issueLoan(ctx)
		case "4":
			c.returnLoan(ctx)
		case "5":
			c.showStatistics(ctx)
		case "6":
			c.showTopBorrowed(ctx)
		case "7":
			c.showActiveLoans(ctx)
		case "0":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option")
		}
	}
}

func (c *Console) printMenu() {
	fmt.Fprint(c.out, `
--- MAIN MENU ---
1. List all books
2. Search books by author
3. Issue a loan
4. Return a book
5. Statistics
6. Top borrowed books
7. Active loans
0. Exit

Select an option: `)
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) readInt(prompt string) (int, bool) {
	fmt.Fprint(c.out, prompt)
	line, ok := c.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		fmt.Fprintln(c.out, "Not a number")
		return 0, false
	}
	return n, true
}

func (c *Console) listBooks(ctx context.Context) {
	books, err := c.svc.ListBooks(ctx)
	if err != nil {
		fmt.Fprintln(c.out, "Could not load the catalog")
		return
	}
	fmt.Fprintln(c.out, "\n=== CATALOG ===")
	c.printBooks(books)
}

func (c *Console) searchByAuthor(ctx context.Context) {
	fmt.Fprint(c.out, "\nAuthor name: ")
	author, ok := c.readLine()
	if !ok {
		return
	}
	books, err := c.svc.SearchByAuthor(ctx, strings.TrimSpace(author))
	if err != nil {
		fmt.Fprintln(c.out, "Search failed")
		return
	}
	if len(books) == 0 {
		fmt.Fprintln(c.out, "No books found for that author")
		return
	}
	c.printBooks(books)
}

func (c *Console) printBooks(books []model.BookWithCategory) {
	for _, b := range books {
		status := "Borrowed"
		if b.Available {
			status = "Available"
		}
		fmt.Fprintf(c.out, "\nID: %d\nTitle: %s\nAuthor: %s\nCategory: %s\nStatus: %s (stock: %d)\n",
			b.ID, b.Title, b.Author, b.CategoryName, status, b.Stock)
	}
}

func (c *Console) issueLoan(ctx context.Context) {
	bookID, ok := c.readInt("\nBook ID: ")
	if !ok {
		return
	}
	memberID, ok := c.readInt("Member ID: ")
	if !ok {
		return
	}
	days, ok := c.readInt("Loan days: ")
	if !ok {
		return
	}
	loan, err := c.svc.IssueLoan(ctx, bookID, memberID, days)
	if err != nil {
		fmt.Fprintln(c.out, "\nCould not issue the loan")
		return
	}
	fmt.Fprintf(c.out, "\nLoan %d issued, due %s\n", loan.ID, loan.ExpectedReturnDate.Format("02/01/2006"))
}

func (c *Console) returnLoan(ctx context.Context) {
	loanID, ok := c.readInt("\nLoan ID: ")
	if !ok {
		return
	}
	if _, err := c.svc.ReturnLoan(ctx, loanID); err != nil {
		fmt.Fprintln(c.out, "\nCould not return the book")
		return
	}
	fmt.Fprintln(c.out, "\nBook returned")
}

func (c *Console) showStatistics(ctx context.Context) {
	stats, err := c.svc.GetStatistics(ctx)
	if err != nil {
		fmt.Fprintln(c.out, "Could not compute statistics")
		return
	}
	fmt.Fprintln(c.out, "\n=== LIBRARY STATISTICS ===")
	fmt.Fprintf(c.out, "Total books: %d\n", stats.TotalBooks)
	fmt.Fprintf(c.out, "Available books: %d\n", stats.AvailableBooks)
	fmt.Fprintf(c.out, "Borrowed books: %d\n", stats.BorrowedBooks)
	fmt.Fprintf(c.out, "Total members: %d\n", stats.TotalMembers)
	fmt.Fprintf(c.out, "Active members: %d\n", stats.ActiveMembers)
}

func (c *Console) showTopBorrowed(ctx context.Context) {
	top, err := c.svc.GetTopBorrowedBooks(ctx, 5)
	if err != nil {
		fmt.Fprintln(c.out, "Could not load the ranking")
		return
	}
	fmt.Fprintln(c.out, "\n=== TOP 5 BORROWED BOOKS ===")
	for _, t := range top {
		fmt.Fprintf(c.out, "%s: %d loans\n", t.Title, t.LoanCount)
	}
}

func (c *Console) showActiveLoans(ctx context.Context) {
	loans, err := c.svc.ActiveLoans(ctx)
	if err != nil {
		fmt.Fprintln(c.out, "Could not load active loans")
		return
	}
	fmt.Fprintln(c.out, "\n=== ACTIVE LOANS ===")
	for _, l := range loans {
		fmt.Fprintf(c.out, "\nLoan ID: %d\nBook: %s\nMember: %s\nLoan date: %s\nDue: %s\nDays elapsed: %d\n",
			l.LoanID, l.BookTitle, l.MemberName,
			l.LoanDate.Format("02/01/2006"), l.ExpectedReturnDate.Format("02/01/2006"), l.DaysElapsed)
	}
}
