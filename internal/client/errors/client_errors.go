package clienterrors

import (
	"net/http"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"Client not found",
		http.StatusNotFound,
	)
	ErrClientNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Client name is required",
		http.StatusBadRequest,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client ID",
		http.StatusBadRequest,
	)
)
