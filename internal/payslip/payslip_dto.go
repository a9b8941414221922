package payslip

// BulkUpsertRequest mirrors the portal's JSON bulk upload: rows already
// mapped client-side plus the upload-level month/year/client selection.
type BulkUpsertRequest struct {
	Payslips []Record `json:"payslips" binding:"required"`
	Month    string   `json:"month" binding:"required"`
	Year     string   `json:"year" binding:"required"`
	ClientID string   `json:"clientId"`
}

// SavePayslipRequest is the manual single-payslip editor payload.
type SavePayslipRequest struct {
	Record
	MonthYear string `json:"monthYear" binding:"required"`
}

type GetPayslipsFilterRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	Month      string `form:"month"`
	Year       string `form:"year"`
	EmployeeID string `form:"employeeId"`
	ClientID   string `form:"clientId"`
}

type DeletePayslipsRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
	Months      []string `json:"months"`
	Years       []string `json:"years"`
}

type PayslipResponse struct {
	EmployeeID string `json:"employeeId"`
	Month      string `json:"month"`
	Year       string `json:"year"`
	ClientID   string `json:"clientId,omitempty"`

	WorkingDays string `json:"workingDays"`
	ExtraDays   string `json:"extraDays"`
	OTHrs       string `json:"otHrs"`
	ArrearsDays string `json:"arrearsDays"`
	LOP         string `json:"lop"`

	Basic                float64 `json:"basic"`
	HRA                  float64 `json:"hra"`
	SpecialAllowance     float64 `json:"specialAllowance"`
	StatutoryBonus       float64 `json:"statutoryBonus"`
	ArrearsAmount        float64 `json:"arrearsAmount"`
	OTAmount             float64 `json:"otAmount"`
	ExtraHolidayPay      float64 `json:"extraHolidayPay"`
	AttendanceIncentive  float64 `json:"attendanceIncentive"`
	PerformanceIncentive float64 `json:"performanceIncentive"`
	SpecialIncentive     float64 `json:"specialIncentive"`

	ProfessionTax   float64 `json:"professionTax"`
	PFAmount        float64 `json:"pfAmount"`
	ESIC            float64 `json:"esic"`
	ArrearDeduction float64 `json:"arrearDeduction"`
	KarmaLife       float64 `json:"karmaLife"`

	GrossEarnings   float64 `json:"grossEarnings"`
	GrossDeductions float64 `json:"grossDeductions"`
	NetPay          float64 `json:"netPay"`
	NetPayWords     string  `json:"netPayWords"`

	GeneratedAt string `json:"generatedAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// PayslipView is the flat employee + payslip + client merge consumed by
// rendering. Totals in the view are always recomputed from components,
// never trusted from storage.
type PayslipView struct {
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

	Month string `json:"month"`
	Year  string `json:"year"`

	WorkingDays string `json:"workingDays"`
	ExtraDays   string `json:"extraDays"`
	OTHrs       string `json:"otHrs"`
	ArrearsDays string `json:"arrearsDays"`
	LOP         string `json:"lop"`

	Basic                float64 `json:"basic"`
	HRA                  float64 `json:"hra"`
	SpecialAllowance     float64 `json:"specialAllowance"`
	StatutoryBonus       float64 `json:"statutoryBonus"`
	ArrearsAmount        float64 `json:"arrearsAmount"`
	OTAmount             float64 `json:"otAmount"`
	ExtraHolidayPay      float64 `json:"extraHolidayPay"`
	AttendanceIncentive  float64 `json:"attendanceIncentive"`
	PerformanceIncentive float64 `json:"performanceIncentive"`
	SpecialIncentive     float64 `json:"specialIncentive"`

	ProfessionTax   float64 `json:"professionTax"`
	PFAmount        float64 `json:"pfAmount"`
	ESIC            float64 `json:"esic"`
	ArrearDeduction float64 `json:"arrearDeduction"`
	KarmaLife       float64 `json:"karmaLife"`

	GrossEarnings   float64 `json:"grossEarnings"`
	GrossDeductions float64 `json:"grossDeductions"`
	NetPay          float64 `json:"netPay"`
	NetPayWords     string  `json:"netPayWords"`

	ClientName    string `json:"clientName"`
	ClientAddress string `json:"clientAddress"`
}
