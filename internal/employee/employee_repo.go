package employee

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Upsert(ctx context.Context, emp *Employee) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error)
	FindAll(ctx context.Context, page, limit int, search string) ([]Employee, int64, error)
	DeleteByEmployeeID(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// upsertColumns are the mutable profile fields overwritten on every
// re-upload of the same employee_id.
var upsertColumns = []string{
	"client_id", "employee_name", "mobile_number", "dob", "doj",
	"designation", "department", "bank_name", "bank_account_no",
	"ifsc_code", "pan_no", "pf_number", "uan_no", "esic_no", "updated_at",
}

func (r *repository) Upsert(ctx context.Context, emp *Employee) error {
	if emp.ID == uuid.Nil {
		emp.ID = uuid.New()
	}
	now := time.Now().UTC()
	if emp.CreatedAt.IsZero() {
		emp.CreatedAt = now
	}
	emp.UpdatedAt = now

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns),
		}).
		Create(emp).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		First(&emp, "employee_id = ?", employeeID).Error
	return &emp, err
}

func (r *repository) FindAll(ctx context.Context, page, limit int, search string) ([]Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&Employee{})

	if s := strings.TrimSpace(search); s != "" {
		like := "%" + s + "%"
		query = query.Where(
			"employee_id ILIKE ? OR employee_name ILIKE ? OR mobile_number ILIKE ? OR department ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emps []Employee
	err := query.
		Order("employee_id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&emps).Error
	return emps, total, err
}

// DeleteByEmployeeID removes the employee together with every payslip
// sharing its business key, so no orphaned payslips remain.
func (r *repository) DeleteByEmployeeID(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM payslips WHERE employee_id = ?", employeeID).Error; err != nil {
			return err
		}

		res := tx.Delete(&Employee{}, "employee_id = ?", employeeID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
