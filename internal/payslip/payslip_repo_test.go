package payslip_test

import (
	"context"
	"testing"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/payslip"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newPayslipRepoOverMock(t *testing.T) (payslip.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	return payslip.NewRepository(gdb), mock
}

func payslipRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"employee_id", "month", "year"}).
		AddRow("EMP001", "03", "2025")
}

func TestFindAllFiltersByMonthAlone(t *testing.T) {
	repo, mock := newPayslipRepoOverMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payslips" WHERE month = \$1`).
		WithArgs("03").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "payslips" WHERE month = \$1`).
		WithArgs("03", 10).
		WillReturnRows(payslipRows())

	slips, total, err := repo.FindAll(context.Background(), payslip.ListFilter{
		Page: 1, Limit: 10, Month: "03",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, slips, 1)
	assert.Equal(t, "EMP001", slips[0].EmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllFiltersByYearAlone(t *testing.T) {
	repo, mock := newPayslipRepoOverMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payslips" WHERE year = \$1`).
		WithArgs("2025").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "payslips" WHERE year = \$1`).
		WithArgs("2025", 10).
		WillReturnRows(payslipRows())

	_, total, err := repo.FindAll(context.Background(), payslip.ListFilter{
		Page: 1, Limit: 10, Year: "2025",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindAllFiltersByFullPeriod(t *testing.T) {
	repo, mock := newPayslipRepoOverMock(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "payslips" WHERE month = \$1 AND year = \$2`).
		WithArgs("03", "2025").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "payslips" WHERE month = \$1 AND year = \$2`).
		WithArgs("03", "2025", 10).
		WillReturnRows(payslipRows())

	_, total, err := repo.FindAll(context.Background(), payslip.ListFilter{
		Page: 1, Limit: 10, Month: "03", Year: "2025",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}
