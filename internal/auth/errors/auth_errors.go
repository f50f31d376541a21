package autherrors

import (
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Current password is incorrect",
		http.StatusUnauthorized,
	)
	ErrNoLinkedEmployee = apperror.New(
		apperror.CodeInvalidState,
		"No employee record is linked to this account",
		http.StatusBadRequest,
	)
	ErrTokenGeneration = apperror.New(
		apperror.CodeInternalError,
		"Could not generate access token",
		http.StatusInternalServerError,
	)
)
