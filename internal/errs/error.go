package errs

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrBookUnavailable     = errors.New("book is not available")
	ErrMemberInactive      = errors.New("member is not active")
	ErrLoanAlreadyReturned = errors.New("loan is already returned")
	ErrPersistence         = errors.New("persistence failure")
)
