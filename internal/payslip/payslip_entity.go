package payslip

import (
	"time"

	"github.com/google/uuid"
)

// Payslip is one employee's compensation record for exactly one
// (month, year) period. The composite unique index makes bulk uploads
// upserts rather than insert-duplicates.
type Payslip struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	EmployeeID string     `gorm:"type:varchar(32);not null;index:idx_payslip_period,unique"`
	Month      string     `gorm:"type:varchar(2);not null;index:idx_payslip_period,unique"`
	Year       string     `gorm:"type:varchar(4);not null;index:idx_payslip_period,unique"`
	ClientID   *uuid.UUID `gorm:"type:uuid;index"`

	WorkingDays string
	ExtraDays   string
	OTHrs       string
	ArrearsDays string
	LOP         string

	// Earnings
	Basic                float64 `gorm:"type:numeric(14,2);not null;default:0"`
	HRA                  float64 `gorm:"type:numeric(14,2);not null;default:0"`
	SpecialAllowance     float64 `gorm:"type:numeric(14,2);not null;default:0"`
	StatutoryBonus       float64 `gorm:"type:numeric(14,2);not null;default:0"`
	ArrearsAmount        float64 `gorm:"type:numeric(14,2);not null;default:0"`
	OTAmount             float64 `gorm:"type:numeric(14,2);not null;default:0"`
	ExtraHolidayPay      float64 `gorm:"type:numeric(14,2);not null;default:0"`
	AttendanceIncentive  float64 `gorm:"type:numeric(14,2);not null;default:0"`
	PerformanceIncentive float64 `gorm:"type:numeric(14,2);not null;default:0"`
	SpecialIncentive     float64 `gorm:"type:numeric(14,2);not null;default:0"`

	// Deductions
	ProfessionTax   float64 `gorm:"type:numeric(14,2);not null;default:0"`
	PFAmount        float64 `gorm:"type:numeric(14,2);not null;default:0"`
	ESIC            float64 `gorm:"type:numeric(14,2);not null;default:0"`
	ArrearDeduction float64 `gorm:"type:numeric(14,2);not null;default:0"`
	KarmaLife       float64 `gorm:"type:numeric(14,2);not null;default:0"`

	// Derived totals, always the deterministic function of the
	// components above. Reads recompute them anyway to self-heal drift.
	GrossEarnings   float64 `gorm:"type:numeric(14,2);not null;default:0"`
	GrossDeductions float64 `gorm:"type:numeric(14,2);not null;default:0"`
	NetPay          float64 `gorm:"type:numeric(14,2);not null;default:0"`
	NetPayWords     string

	GeneratedAt *time.Time `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AmountsOfPayslip rebuilds the component set from a persisted row so
// read paths can recompute totals through the same calculation path the
// upload used.
func AmountsOfPayslip(p *Payslip) Amounts {
	return Amounts{
		Basic:                p.Basic,
		HRA:                  p.HRA,
		SpecialAllowance:     p.SpecialAllowance,
		StatutoryBonus:       p.StatutoryBonus,
		ArrearsAmount:        p.ArrearsAmount,
		OTAmount:             p.OTAmount,
		ExtraHolidayPay:      p.ExtraHolidayPay,
		AttendanceIncentive:  p.AttendanceIncentive,
		PerformanceIncentive: p.PerformanceIncentive,
		SpecialIncentive:     p.SpecialIncentive,

		ProfessionTax:   p.ProfessionTax,
		PFAmount:        p.PFAmount,
		ESIC:            p.ESIC,
		ArrearDeduction: p.ArrearDeduction,
		KarmaLife:       p.KarmaLife,
	}
}
