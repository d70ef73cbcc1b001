package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Validation errors. These map to HTTP 400.
var (
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be income or expense")
	ErrBudgetAmountNotPositive      = errors.New("budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid          = errors.New("the budget period must be monthly")
	ErrCategoryNameEmpty            = errors.New("the category name must not be empty")
)

// Conflict errors. These map to HTTP 409.
var (
	ErrCategoryNameNotUnique = errors.New("the category name is already in use")
	ErrBudgetNotUnique       = errors.New("there already is a budget for this category and period")
	ErrEmailNotUnique        = errors.New("this email is already registered")
	ErrCategoryReferenced    = errors.New("the category is still referenced by transactions or budgets")
)

// conflicts lists all errors that represent a conflict with existing state.
var conflicts = []error{
	ErrCategoryNameNotUnique,
	ErrBudgetNotUnique,
	ErrEmailNotUnique,
	ErrCategoryReferenced,
}

// IsConflict reports whether err is a conflict with an existing resource.
func IsConflict(err error) bool {
	for _, conflict := range conflicts {
		if errors.Is(err, conflict) {
			return true
		}
	}

	return false
}
