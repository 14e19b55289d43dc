package ledger

import (
	"errors"
	"net/http"
)

var (
	ErrTransactionDeclined = errors.New("transaction declined")
	ErrTransactionNotFound = errors.New("cannot find transaction you want to delete")
	ErrValueNegative       = errors.New("the value of a transaction must not be negative")
)

// Error is a rejection caused by the client. It is returned for all
// business rule violations and carries the HTTP status code to respond with.
type Error struct {
	Err    error
	Status int // Used with http.StatusX for the corresponding HTTP status code
}

// Error returns the error as a string.
func (e Error) Error() string {
	return e.Err.Error()
}

func (e Error) Unwrap() error {
	return e.Err
}

// clientError wraps err in an Error with status 400.
func clientError(err error) Error {
	return Error{
		Err:    err,
		Status: http.StatusBadRequest,
	}
}
