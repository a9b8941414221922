package employeeerrors

import (
	"net/http"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID is required",
		http.StatusBadRequest,
	)
	ErrEmployeeNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee name is required",
		http.StatusBadRequest,
	)
	ErrEmployeeConflict = apperror.New(
		apperror.CodeConflict,
		"Employee was modified by a concurrent upload",
		http.StatusConflict,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client ID",
		http.StatusBadRequest,
	)
)
