package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	autherrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/auth/errors"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/employee"
	"github.com/Ant-honY-Richard/payslip-newchecks/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

const (
	defaultAdminEmployeeID = "ant05"
	defaultAdminMobile     = "0000000000"

	tokenTTL = 24 * time.Hour
)

type Service interface {
	// Login authenticates with the employee id and registered mobile
	// number. The configured admin pair bypasses the employee lookup.
	Login(ctx context.Context, employeeID, mobileNumber string) (token string, resp AuthResponse, err error)

	Me(ctx context.Context, employeeID, role string) (AuthResponse, error)
}

type service struct {
	employees employee.Repository
}

func NewService(employees employee.Repository) Service {
	return &service{employees: employees}
}

func adminCredentials() (string, string) {
	id := os.Getenv("ADMIN_EMPLOYEE_ID")
	if id == "" {
		id = defaultAdminEmployeeID
	}
	mobile := os.Getenv("ADMIN_MOBILE_NUMBER")
	if mobile == "" {
		mobile = defaultAdminMobile
	}
	return id, mobile
}

func (s *service) Login(ctx context.Context, employeeID, mobileNumber string) (string, AuthResponse, error) {
	employeeID = strings.TrimSpace(employeeID)
	mobileNumber = strings.TrimSpace(mobileNumber)

	adminID, adminMobile := adminCredentials()
	if employeeID == adminID {
		if mobileNumber != adminMobile {
			return "", AuthResponse{}, autherrors.ErrInvalidMobile
		}
		token, err := s.generateToken(employeeID, middleware.RoleAdmin)
		if err != nil {
			return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
		}
		return token, AuthResponse{
			EmployeeID:   employeeID,
			EmployeeName: "Administrator",
			Role:         middleware.RoleAdmin,
		}, nil
	}

	emp, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", AuthResponse{}, autherrors.ErrEmployeeNotFound
		}
		return "", AuthResponse{}, err
	}

	if strings.TrimSpace(emp.MobileNumber) != mobileNumber {
		return "", AuthResponse{}, autherrors.ErrInvalidMobile
	}

	token, err := s.generateToken(emp.EmployeeID, middleware.RoleEmployee)
	if err != nil {
		return "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	return token, AuthResponse{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		Role:         middleware.RoleEmployee,
	}, nil
}

func (s *service) Me(ctx context.Context, employeeID, role string) (AuthResponse, error) {
	if role == middleware.RoleAdmin {
		return AuthResponse{
			EmployeeID:   employeeID,
			EmployeeName: "Administrator",
			Role:         middleware.RoleAdmin,
		}, nil
	}

	emp, err := s.employees.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResponse{}, autherrors.ErrEmployeeNotFound
		}
		return AuthResponse{}, err
	}
	return AuthResponse{
		EmployeeID:   emp.EmployeeID,
		EmployeeName: emp.EmployeeName,
		Role:         middleware.RoleEmployee,
	}, nil
}

func (s *service) generateToken(employeeID, role string) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": employeeID,
		"role":        role,
		"exp":         time.Now().Add(tokenTTL).Unix(),
		"iat":         time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
