package autherrors

import (
	"net/http"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/apperror"
)

var (
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid authentication token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Your session has expired, please log in again",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidMobile = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid mobile number",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not issue a session token",
		http.StatusInternalServerError,
	)
)
