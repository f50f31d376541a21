package leaveerrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeValidation,
		"Invalid leave request id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeValidation,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidRange,
		"toDate must be after fromDate",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"A leave request already covers part of this period",
		http.StatusConflict,
	)
	ErrAlreadyReviewed = apperror.New(
		apperror.CodeInvalidState,
		"Leave request has already been reviewed",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"You can only manage your own leave requests",
		http.StatusForbidden,
	)
	ErrDeleteReviewed = apperror.New(
		apperror.CodeInvalidState,
		"Only pending leave requests can be withdrawn",
		http.StatusConflict,
	)
	ErrNoLinkedEmployee = apperror.New(
		apperror.CodeInvalidState,
		"No employee record is linked to this account",
		http.StatusBadRequest,
	)
)
