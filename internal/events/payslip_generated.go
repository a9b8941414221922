package events

import "time"

const (
	PayslipGeneratedTopic = "payroll.payslip.generated.v1"
	TypePayslipGenerated  = "payslip.generated"
)

// PayslipGeneratedEvent announces that a payslip was upserted and its
// PDF artifact should be (re)rendered.
type PayslipGeneratedEvent struct {
	EventType  string    `json:"event_type"`
	EmployeeID string    `json:"employee_id"`
	Month      string    `json:"month"`
	Year       string    `json:"year"`
	OccurredAt time.Time `json:"occurred_at"`
}
