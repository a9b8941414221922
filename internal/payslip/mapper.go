package payslip

// Record is the canonical shape of one uploaded payroll row. Text fields
// keep the raw cell text; amount fields stay untyped until they flow
// through Normalize, because JSON uploads send numbers where spreadsheet
// parsing yields strings.
type Record struct {
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	MobileNumber  string `json:"mobileNumber"`
	DOB           string `json:"dob"`
	DOJ           string `json:"doj"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	BankName      string `json:"bankName"`
	BankAccountNo string `json:"bankAccountNo"`
	IFSCCode      string `json:"ifscCode"`
	PANNo         string `json:"panNo"`
	PFNumber      string `json:"pfNumber"`
	UANNo         string `json:"uanNo"`
	ESICNo        string `json:"esicNo"`

	WorkingDays string `json:"workingDays"`
	ExtraDays   string `json:"extraDays"`
	OTHrs       string `json:"otHrs"`
	ArrearsDays string `json:"arrearsDays"`
	LOP         string `json:"lop"`

	// Earnings
	Basic                any `json:"basic"`
	HRA                  any `json:"hra"`
	SpecialAllowance     any `json:"specialAllowance"`
	StatutoryBonus       any `json:"statutoryBonus"`
	ArrearsAmount        any `json:"arrearsAmount"`
	GrossEarningsTotal   any `json:"grossEarningsTotal"`
	OTAmount             any `json:"otAmount"`
	ExtraHolidayPay      any `json:"extraHolidayPay"`
	AttendanceIncentive  any `json:"attendanceIncentive"`
	PerformanceIncentive any `json:"performanceIncentive"`
	SpecialIncentive     any `json:"specialIncentive"`

	// Deductions
	ProfessionTax   any `json:"professionTax"`
	PFAmount        any `json:"pfAmount"`
	ESIC            any `json:"esic"`
	ArrearDeduction any `json:"arrearDeduction"`
	KarmaLife       any `json:"karmaLife"`

	// Sheet-provided totals; ignored by the calculator, which recomputes
	// them from the components.
	TotalGrossA     any    `json:"totalGrossA"`
	GrossDeductionB any    `json:"grossDeductionB"`
	NetTakeHome     any    `json:"netTakeHome"`
	NetPayWords     string `json:"netPayWords"`

	Month    string `json:"month"`
	Year     string `json:"year"`
	ClientID string `json:"clientId"`
}

// RowContext carries the upload-level selections attached to every row.
type RowContext struct {
	Month    string
	Year     string
	ClientID string
}

// MapRow maps one header-keyed spreadsheet row into a Record. Column
// headers are matched exactly, case-sensitive, the way the upload
// template names them; absent cells default to the empty string. The
// mapping is pure: rows without an employee ID pass through and are
// rejected later by the reconciliation engine.
func MapRow(row map[string]string, rc RowContext) Record {
	return Record{
		EmployeeID:    row["Emp ID"],
		EmployeeName:  row["Employee Name"],
		MobileNumber:  row["Mobile Number"],
		DOB:           row["DOB"],
		DOJ:           row["DOJ"],
		Designation:   row["Designation"],
		Department:    row["Department"],
		BankName:      row["Bank Name"],
		BankAccountNo: row["Bank Account No"],
		IFSCCode:      row["IFSC code"],
		PANNo:         row["PAN NO"],
		PFNumber:      row["PF Number"],
		UANNo:         row["UAN No"],
		ESICNo:        row["ESI No"],

		WorkingDays: row["Number of days working"],
		ExtraDays:   row["Extra Days"],
		OTHrs:       row["OT hrs"],
		ArrearsDays: row["Arrears Days"],
		LOP:         row["LOP"],

		Basic:                row["BASIC"],
		HRA:                  row["HRA"],
		SpecialAllowance:     row["Special Allowance"],
		StatutoryBonus:       row["Statutory Bonus"],
		ArrearsAmount:        row["Arrears amount"],
		GrossEarningsTotal:   row["Gross Earnings Total"],
		OTAmount:             row["OT Amount"],
		ExtraHolidayPay:      row["Extra & Holiday pay"],
		AttendanceIncentive:  row["Attendance Incentive"],
		PerformanceIncentive: row["Performance Incentive"],
		SpecialIncentive:     row["Special Incentive"],

		ProfessionTax:   row["Profession Tax"],
		PFAmount:        row["PF amount"],
		ESIC:            row["ESIC"],
		ArrearDeduction: row["Arrear Deduction"],
		KarmaLife:       row["Karma Life"],

		TotalGrossA:     row["Total Gross A"],
		GrossDeductionB: row["Gross Deductions B"],
		NetTakeHome:     row["Take Home"],
		NetPayWords:     row["Net Pay In Words"],

		Month:    rc.Month,
		Year:     rc.Year,
		ClientID: rc.ClientID,
	}
}

// AmountsOf normalizes the record's component cells into the closed
// amount set used by the totals calculator.
func AmountsOf(r Record) Amounts {
	return Amounts{
		Basic:                Normalize(r.Basic),
		HRA:                  Normalize(r.HRA),
		SpecialAllowance:     Normalize(r.SpecialAllowance),
		StatutoryBonus:       Normalize(r.StatutoryBonus),
		ArrearsAmount:        Normalize(r.ArrearsAmount),
		OTAmount:             Normalize(r.OTAmount),
		ExtraHolidayPay:      Normalize(r.ExtraHolidayPay),
		AttendanceIncentive:  Normalize(r.AttendanceIncentive),
		PerformanceIncentive: Normalize(r.PerformanceIncentive),
		SpecialIncentive:     Normalize(r.SpecialIncentive),

		ProfessionTax:   Normalize(r.ProfessionTax),
		PFAmount:        Normalize(r.PFAmount),
		ESIC:            Normalize(r.ESIC),
		ArrearDeduction: Normalize(r.ArrearDeduction),
		KarmaLife:       Normalize(r.KarmaLife),
	}
}
