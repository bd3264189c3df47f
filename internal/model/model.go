package model

import (
	"time"
)

type Category struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name" validate:"required,max=50"`
	Description string `json:"description" db:"description" validate:"max=200"`
}

type Book struct {
	ID              int        `json:"id" db:"id"`
	Title           string     `json:"title" db:"title" validate:"required,max=200"`
	Author          string     `json:"author" db:"author" validate:"required,max=100"`
	ISBN            string     `json:"isbn" db:"isbn" validate:"required,max=20"`
	CategoryID      int        `json:"categoryId" db:"category_id" validate:"required"`
	PublicationDate *time.Time `json:"publicationDate,omitempty" db:"publication_date"`
	Stock           int        `json:"stock" db:"stock" validate:"min=0"`
	Available       bool       `json:"available" db:"available"`
}

// ApplyIssue records one copy leaving the shelf. The availability flag is
// cleared even when stock remains, and restored by the next return.
func (b *Book) ApplyIssue() {
	b.Stock--
	b.Available = false
}

// ApplyReturn records one copy coming back.
func (b *Book) ApplyReturn() {
	b.Stock++
	b.Available = true
}

type Member struct {
	ID               int       `json:"id" db:"id"`
	Name             string    `json:"name" db:"name" validate:"required,max=100"`
	Email            string    `json:"email" db:"email" validate:"required,email,max=100"`
	Phone            string    `json:"phone" db:"phone" validate:"max=20"`
	RegistrationDate time.Time `json:"registrationDate" db:"registration_date"`
	Active           bool      `json:"active" db:"active"`
}

type Loan struct {
	ID                 int        `json:"id" db:"id"`
	BookID             int        `json:"bookId" db:"book_id"`
	MemberID           int        `json:"memberId" db:"member_id"`
	LoanDate           time.Time  `json:"loanDate" db:"loan_date"`
	ExpectedReturnDate time.Time  `json:"expectedReturnDate" db:"expected_return_date"`
	ActualReturnDate   *time.Time `json:"actualReturnDate,omitempty" db:"actual_return_date"`
	Returned           bool       `json:"returned" db:"returned"`
}

// NewLoan opens a loan at now for loanDays days. loanDays is taken as given,
// zero and negative values included.
func NewLoan(bookID, memberID int, now time.Time, loanDays int) Loan {
	return Loan{
		BookID:             bookID,
		MemberID:           memberID,
		LoanDate:           now,
		ExpectedReturnDate: now.AddDate(0, 0, loanDays),
		Returned:           false,
	}
}

// Close marks the loan returned at now.
func (l *Loan) Close(now time.Time) {
	t := now
	l.ActualReturnDate = &t
	l.Returned = true
}

// DaysElapsed reports whole days between the loan date and the actual return
// date, or now while the loan is still open.
func (l Loan) DaysElapsed(now time.Time) int {
	end := now
	if l.ActualReturnDate != nil {
		end = *l.ActualReturnDate
	}
	return int(end.Sub(l.LoanDate).Hours() / 24)
}
