package paysliperrors

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
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found for the selected month",
		http.StatusNotFound,
	)
	ErrNoRecords = apperror.New(
		apperror.CodeInvalidInput,
		"No payslips provided or invalid format",
		http.StatusBadRequest,
	)
	ErrMonthYearRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Month and year are required",
		http.StatusBadRequest,
	)
	ErrInvalidMonthFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month format. Expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrClientRequired = apperror.New(
		apperror.CodeInvalidInput,
		"A client must be selected before uploading",
		http.StatusBadRequest,
	)
	ErrInvalidClientID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid client ID",
		http.StatusBadRequest,
	)
	ErrMissingEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Row is missing an employee ID",
		http.StatusBadRequest,
	)
	ErrDeleteFilterRequired = apperror.New(
		apperror.CodeInvalidInput,
		"At least one filter criteria is required",
		http.StatusBadRequest,
	)
	ErrEmptyWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file contains no data rows",
		http.StatusBadRequest,
	)
	ErrUnreadableWorkbook = apperror.New(
		apperror.CodeInvalidInput,
		"The uploaded file could not be read as an Excel workbook",
		http.StatusBadRequest,
	)
)
