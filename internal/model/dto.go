package model

import (
	"fmt"
	"time"
)

// BookWithCategory is a Book with its category resolved for listings.
type BookWithCategory struct {
	Book
	CategoryName        string `json:"categoryName" db:"category_name"`
	CategoryDescription string `json:"categoryDescription" db:"category_description"`
}

// ActiveLoan is an open loan joined with what the reader wants to see.
type ActiveLoan struct {
	LoanID             int       `json:"loanId" db:"id"`
	BookID             int       `json:"bookId" db:"book_id"`
	BookTitle          string    `json:"bookTitle" db:"book_title"`
	MemberID           int       `json:"memberId" db:"member_id"`
	MemberName         string    `json:"memberName" db:"member_name"`
	LoanDate           time.Time `json:"loanDate" db:"loan_date"`
	ExpectedReturnDate time.Time `json:"expectedReturnDate" db:"expected_return_date"`
	DaysElapsed        int       `json:"daysElapsed" db:"days_elapsed"`
}

// Statistics is a point-in-time aggregate over the catalog and the members.
// BorrowedBooks is derived from the other two book counts so the three always
// agree.
type Statistics struct {
	TotalBooks     int `json:"totalBooks" db:"total_books"`
	AvailableBooks int `json:"availableBooks" db:"available_books"`
	BorrowedBooks  int `json:"borrowedBooks" db:"-"`
	TotalMembers   int `json:"totalMembers" db:"total_members"`
	ActiveMembers  int `json:"activeMembers" db:"active_members"`
}

func (s Statistics) String() string {
	return fmt.Sprintf("total books: %d, available: %d, borrowed: %d, members: %d, active: %d",
		s.TotalBooks, s.AvailableBooks, s.BorrowedBooks, s.TotalMembers, s.ActiveMembers)
}

type TopBorrowedBook struct {
	BookID    int    `json:"bookId" db:"book_id"`
	Title     string `json:"title" db:"title"`
	LoanCount int    `json:"loanCount" db:"loan_count"`
}

type IssueLoanRequest struct {
	BookID   int `json:"bookId" validate:"required"`
	MemberID int `json:"memberId" validate:"required"`
	LoanDays int `json:"loanDays"`
}
