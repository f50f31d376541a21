package departmenterrors

import (
	"fmt"
	"net/http"

	"go-ems/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrNameTaken = apperror.New(
		apperror.CodeDuplicateKey,
		"A department with this name already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeValidation,
		"Invalid department id",
		http.StatusBadRequest,
	)
)

// ErrHasEmployees names the blocking head count so the caller knows the
// size of the reassignment job.
func ErrHasEmployees(count int64) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf("Cannot delete department: %d employee(s) are still assigned to it", count),
		http.StatusConflict,
	)
}
