package payslip

import (
	"context"
	"time"

	"github.com/Ant-honY-Richard/payslip-newchecks/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ListFilter struct {
	Page       int
	Limit      int
	EmployeeID string
	Month      string
	Year       string
	ClientID   string
}

// DeleteFilter selects payslips for bulk deletion. Empty slices match
// nothing; at least one must be populated.
type DeleteFilter struct {
	EmployeeIDs []string
	Months      []string
	Years       []string
}

func (f DeleteFilter) Empty() bool {
	return len(f.EmployeeIDs) == 0 && len(f.Months) == 0 && len(f.Years) == 0
}

type Repository interface {
	Upsert(ctx context.Context, slip *Payslip) error
	FindByKey(ctx context.Context, employeeID, month, year string) (*Payslip, error)
	FindAll(ctx context.Context, filter ListFilter) ([]Payslip, int64, error)
	DeleteByFilter(ctx context.Context, filter DeleteFilter) (int64, error)
	MarkGenerated(ctx context.Context, employeeID, month, year string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// upsertColumns are overwritten on re-upload of the same
// (employee_id, month, year). GeneratedAt survives so an already
// rendered artifact is only re-requested, never silently forgotten.
var upsertColumns = []string{
	"client_id", "working_days", "extra_days", "ot_hrs", "arrears_days", "lop",
	"basic", "hra", "special_allowance", "statutory_bonus", "arrears_amount",
	"ot_amount", "extra_holiday_pay", "attendance_incentive",
	"performance_incentive", "special_incentive",
	"profession_tax", "pf_amount", "esic", "arrear_deduction", "karma_life",
	"gross_earnings", "gross_deductions", "net_pay", "net_pay_words",
	"updated_at",
}

func (r *repository) Upsert(ctx context.Context, slip *Payslip) error {
	if slip.ID == uuid.Nil {
		slip.ID = uuid.New()
	}
	now := time.Now().UTC()
	if slip.CreatedAt.IsZero() {
		slip.CreatedAt = now
	}
	slip.UpdatedAt = now

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "employee_id"}, {Name: "month"}, {Name: "year"},
			},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(slip).Error
}

func (r *repository) FindByKey(ctx context.Context, employeeID, month, year string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Scopes(scope.ByPeriod(month, year)).
		First(&slip, "employee_id = ?", employeeID).Error
	return &slip, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]Payslip, int64, error) {
	query := r.db.WithContext(ctx).Model(&Payslip{})

	if filter.EmployeeID != "" {
		query = query.Where("employee_id = ?", filter.EmployeeID)
	}
	switch {
	case filter.Month != "" && filter.Year != "":
		query = query.Scopes(scope.ByPeriod(filter.Month, filter.Year))
	case filter.Month != "":
		query = query.Where("month = ?", filter.Month)
	case filter.Year != "":
		query = query.Where("year = ?", filter.Year)
	}
	if filter.ClientID != "" {
		query = query.Scopes(scope.ByClient(filter.ClientID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var slips []Payslip
	err := query.
		Order("year DESC, month DESC, employee_id ASC").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Find(&slips).Error
	return slips, total, err
}

func (r *repository) DeleteByFilter(ctx context.Context, filter DeleteFilter) (int64, error) {
	query := r.db.WithContext(ctx)

	if len(filter.EmployeeIDs) > 0 {
		query = query.Where("employee_id IN ?", filter.EmployeeIDs)
	}
	if len(filter.Months) > 0 {
		query = query.Where("month IN ?", filter.Months)
	}
	if len(filter.Years) > 0 {
		query = query.Where("year IN ?", filter.Years)
	}

	res := query.Delete(&Payslip{})
	return res.RowsAffected, res.Error
}

func (r *repository) MarkGenerated(ctx context.Context, employeeID, month, year string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Scopes(scope.ByPeriod(month, year)).
		Where("employee_id = ?", employeeID).
		Update("generated_at", at).Error
}
