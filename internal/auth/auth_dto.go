package auth

type LoginRequest struct {
	EmployeeID   string `json:"employeeId" binding:"required"`
	MobileNumber string `json:"mobileNumber" binding:"required"`
}

type AuthResponse struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Role         string `json:"role"`
}
