package payslip

// Amounts is the closed set of payslip components. Fields outside this
// set never participate in totals.
type Amounts struct {
	// Earnings
	Basic                float64
	HRA                  float64
	SpecialAllowance     float64
	StatutoryBonus       float64
	ArrearsAmount        float64
	OTAmount             float64
	ExtraHolidayPay      float64
	AttendanceIncentive  float64
	PerformanceIncentive float64
	SpecialIncentive     float64

	// Deductions
	ProfessionTax   float64
	PFAmount        float64
	ESIC            float64
	ArrearDeduction float64
	KarmaLife       float64
}

type Totals struct {
	GrossEarnings   float64
	GrossDeductions float64
	NetPay          float64
}

// ComputeTotals derives the three payslip totals from the component
// amounts. NetPay can go negative when deductions exceed earnings; that
// is surfaced as-is, not treated as an error.
func ComputeTotals(a Amounts) Totals {
	gross := a.Basic +
		a.HRA +
		a.SpecialAllowance +
		a.StatutoryBonus +
		a.ArrearsAmount +
		a.OTAmount +
		a.ExtraHolidayPay +
		a.AttendanceIncentive +
		a.PerformanceIncentive +
		a.SpecialIncentive

	deductions := a.ProfessionTax +
		a.PFAmount +
		a.ESIC +
		a.ArrearDeduction +
		a.KarmaLife

	return Totals{
		GrossEarnings:   gross,
		GrossDeductions: deductions,
		NetPay:          gross - deductions,
	}
}
