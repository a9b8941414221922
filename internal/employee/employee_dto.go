package employee

type UpsertEmployeeRequest struct {
	EmployeeID   string `json:"employeeId" binding:"required"`
	EmployeeName string `json:"employeeName" binding:"required"`
	MobileNumber string `json:"mobileNumber"`
	DOB          string `json:"dob"`
	DOJ          string `json:"doj"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`

	BankName      string `json:"bankName"`
	BankAccountNo string `json:"bankAccountNo"`
	IFSCCode      string `json:"ifscCode"`
	PANNo         string `json:"panNo"`
	PFNumber      string `json:"pfNumber"`
	UANNo         string `json:"uanNo"`
	ESICNo        string `json:"esicNo"`

	ClientID string `json:"clientId"`
}

type GetEmployeesFilterRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}

type EmployeeResponse struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	MobileNumber string `json:"mobileNumber"`
	DOB          string `json:"dob"`
	DOJ          string `json:"doj"`
	Designation  string `json:"designation"`
	Department   string `json:"department"`

	BankName      string `json:"bankName"`
	BankAccountNo string `json:"bankAccountNo"`
	IFSCCode      string `json:"ifscCode"`
	PANNo         string `json:"panNo"`
	PFNumber      string `json:"pfNumber"`
	UANNo         string `json:"uanNo"`
	ESICNo        string `json:"esicNo"`

	ClientID  string `json:"clientId,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
