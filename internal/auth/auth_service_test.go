package auth_test

import (
	"context"
	"testing"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/auth"
	autherrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/auth/errors"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	findByEmployeeIDFn func(ctx context.Context, employeeID string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepo) Upsert(ctx context.Context, emp *employee.Employee) error { return nil }

func (f *fakeEmployeeRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*employee.Employee, error) {
	return f.findByEmployeeIDFn(ctx, employeeID)
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context, page, limit int, search string) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return nil
}

func repoWith(emp *employee.Employee) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		findByEmployeeIDFn: func(ctx context.Context, employeeID string) (*employee.Employee, error) {
			if emp != nil && emp.EmployeeID == employeeID {
				return emp, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestLoginAdminSentinel(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := auth.NewService(repoWith(nil))

	token, resp, err := svc.Login(context.Background(), "ant05", "0000000000")
	assert.NoError(t, err)
	assert.Equal(t, middleware.RoleAdmin, resp.Role)
	assert.Equal(t, "Administrator", resp.EmployeeName)

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, "ant05", claims["employee_id"])
	assert.Equal(t, middleware.RoleAdmin, claims["role"])
}

func TestLoginAdminWrongMobile(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := auth.NewService(repoWith(nil))

	_, _, err := svc.Login(context.Background(), "ant05", "1111111111")
	assert.ErrorIs(t, err, autherrors.ErrInvalidMobile)
}

func TestLoginAdminOverrideFromEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMPLOYEE_ID", "root01")
	t.Setenv("ADMIN_MOBILE_NUMBER", "9999999999")
	svc := auth.NewService(repoWith(nil))

	_, resp, err := svc.Login(context.Background(), "root01", "9999999999")
	assert.NoError(t, err)
	assert.Equal(t, middleware.RoleAdmin, resp.Role)

	// The built-in pair no longer authenticates once overridden.
	_, _, err = svc.Login(context.Background(), "ant05", "0000000000")
	assert.ErrorIs(t, err, autherrors.ErrEmployeeNotFound)
}

func TestLoginEmployee(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := auth.NewService(repoWith(&employee.Employee{
		EmployeeID:   "EMP001",
		EmployeeName: "Asha Rao",
		MobileNumber: "9876543210",
	}))

	token, resp, err := svc.Login(context.Background(), "  EMP001  ", "9876543210")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, middleware.RoleEmployee, resp.Role)
	assert.Equal(t, "Asha Rao", resp.EmployeeName)
}

func TestLoginEmployeeMobileMismatch(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := auth.NewService(repoWith(&employee.Employee{
		EmployeeID:   "EMP001",
		MobileNumber: "9876543210",
	}))

	_, _, err := svc.Login(context.Background(), "EMP001", "1234567890")
	assert.ErrorIs(t, err, autherrors.ErrInvalidMobile)
}

func TestLoginUnknownEmployee(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	svc := auth.NewService(repoWith(nil))

	_, _, err := svc.Login(context.Background(), "EMP404", "9876543210")
	assert.ErrorIs(t, err, autherrors.ErrEmployeeNotFound)
}

func TestMe(t *testing.T) {
	svc := auth.NewService(repoWith(&employee.Employee{
		EmployeeID:   "EMP001",
		EmployeeName: "Asha Rao",
	}))

	resp, err := svc.Me(context.Background(), "EMP001", middleware.RoleEmployee)
	assert.NoError(t, err)
	assert.Equal(t, "Asha Rao", resp.EmployeeName)

	resp, err = svc.Me(context.Background(), "ant05", middleware.RoleAdmin)
	assert.NoError(t, err)
	assert.Equal(t, "Administrator", resp.EmployeeName)

	_, err = svc.Me(context.Background(), "EMP404", middleware.RoleEmployee)
	assert.ErrorIs(t, err, autherrors.ErrEmployeeNotFound)
}
