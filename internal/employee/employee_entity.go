package employee

import (
	"time"

	"github.com/google/uuid"
)

// Employee is keyed by the stable business identifier printed on the
// payslip, independent of any pay period. Re-uploading the same
// employee_id mutates this row instead of duplicating it.
type Employee struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index"`

	EmployeeName string `gorm:"not null"`
	MobileNumber string
	DOB          string
	DOJ          string
	Designation  string
	Department   string

	BankName      string
	BankAccountNo string
	IFSCCode      string
	PANNo         string
	PFNumber      string
	UANNo         string
	ESICNo        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
