package employee_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newRepoOverMock(t *testing.T) (employee.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return employee.NewRepository(gdb), mock
}

func TestDeleteCascadesPayslipsInOneTransaction(t *testing.T) {
	repo, mock := newRepoOverMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM payslips").
		WithArgs("EMP001").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs("EMP001").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteByEmployeeID(context.Background(), "EMP001")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePayslipFailureRollsBackEmployee(t *testing.T) {
	repo, mock := newRepoOverMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM payslips").
		WithArgs("EMP001").
		WillReturnError(errors.New("permission denied for table payslips"))
	mock.ExpectRollback()

	err := repo.DeleteByEmployeeID(context.Background(), "EMP001")
	assert.Error(t, err)
	// The employee delete never ran: the only statements the mock saw
	// are the failed payslip delete and the rollback.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteUnknownEmployeeRollsBack(t *testing.T) {
	repo, mock := newRepoOverMock(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM payslips").
		WithArgs("EMP404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "employees"`).
		WithArgs("EMP404").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteByEmployeeID(context.Background(), "EMP404")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
