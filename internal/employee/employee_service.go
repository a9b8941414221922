package employee

import (
	"context"
	"strings"
	"time"

	employeeerrors "github.com/Ant-honY-Richard/payslip-newchecks/internal/employee/errors"

	"github.com/google/uuid"
)

type Service interface {
	Upsert(ctx context.Context, req UpsertEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, int64, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Upsert(ctx context.Context, req UpsertEmployeeRequest) (EmployeeResponse, error) {
	if strings.TrimSpace(req.EmployeeID) == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeIDRequired
	}
	if strings.TrimSpace(req.EmployeeName) == "" {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNameRequired
	}

	emp := &Employee{
		EmployeeID:    strings.TrimSpace(req.EmployeeID),
		EmployeeName:  req.EmployeeName,
		MobileNumber:  req.MobileNumber,
		DOB:           req.DOB,
		DOJ:           req.DOJ,
		Designation:   req.Designation,
		Department:    req.Department,
		BankName:      req.BankName,
		BankAccountNo: req.BankAccountNo,
		IFSCCode:      req.IFSCCode,
		PANNo:         req.PANNo,
		PFNumber:      req.PFNumber,
		UANNo:         req.UANNo,
		ESICNo:        req.ESICNo,
	}

	if req.ClientID != "" {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidClientID
		}
		emp.ClientID = &clientID
	}

	if err := s.repo.Upsert(ctx, emp); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context, filter GetEmployeesFilterRequest) ([]EmployeeResponse, int64, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	emps, total, err := s.repo.FindAll(ctx, page, limit, filter.Search)
	if err != nil {
		return nil, 0, mapRepositoryError(err)
	}

	return mapToListResponse(emps), total, nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error) {
	emp, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

// Delete removes the employee and cascades to all of its payslips.
func (s *service) Delete(ctx context.Context, employeeID string) error {
	if err := s.repo.DeleteByEmployeeID(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(emp Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:    emp.EmployeeID,
		EmployeeName:  emp.EmployeeName,
		MobileNumber:  emp.MobileNumber,
		DOB:           emp.DOB,
		DOJ:           emp.DOJ,
		Designation:   emp.Designation,
		Department:    emp.Department,
		BankName:      emp.BankName,
		BankAccountNo: emp.BankAccountNo,
		IFSCCode:      emp.IFSCCode,
		PANNo:         emp.PANNo,
		PFNumber:      emp.PFNumber,
		UANNo:         emp.UANNo,
		ESICNo:        emp.ESICNo,
	}
	if emp.ClientID != nil {
		resp.ClientID = emp.ClientID.String()
	}
	if !emp.UpdatedAt.IsZero() {
		resp.UpdatedAt = emp.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, emp := range emps {
		res[i] = mapToResponse(emp)
	}
	return res
}
