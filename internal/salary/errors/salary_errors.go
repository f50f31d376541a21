package salaryerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeValidation,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeValidation,
		"Invalid effectiveFrom date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNoLinkedEmployee = apperror.New(
		apperror.CodeInvalidState,
		"No employee record is linked to this account",
		http.StatusBadRequest,
	)
)
