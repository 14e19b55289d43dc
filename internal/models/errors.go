package models

import (
	"errors"
)

var (
	ErrGeneral                  = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound         = errors.New("there is no")
	ErrCategoryTitleNotUnique   = errors.New("the category title must be unique")
	ErrTransactionValueNegative = errors.New("the value of a transaction must not be negative")
)
