package employee

import (
	"errors"

	employeeerrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// 23505 on the employee_id unique index should be rare: the upsert
	// path resolves the conflict itself. It can still surface when two
	// uploads race on the same fresh employee_id.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmployeeConflict
	}

	return err
}
