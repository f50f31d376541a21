package dashboard

// AdminDashboardResponse is the landing-page aggregate for admins.
type AdminDashboardResponse struct {
	TotalEmployees     int64               `json:"totalEmployees"`
	TotalDepartments   int64               `json:"totalDepartments"`
	TotalSalaryExpense float64             `json:"totalSalaryExpense"`
	LeaveCounts        LeaveCounts         `json:"leaveCounts"`
	RecentEmployees    []RecentEmployee    `json:"recentEmployees"`
	DepartmentStats    []DepartmentStat    `json:"departmentStats"`
	MonthlyHires       []MonthlyHireBucket `json:"monthlyHires"`
}

type LeaveCounts struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type RecentEmployee struct {
	ID             string `json:"id"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	DepartmentName string `json:"departmentName"`
	CreatedAt      string `json:"createdAt"`
}

type DepartmentStat struct {
	DepartmentID   string  `json:"department"`
	DepartmentName string  `json:"departmentName"`
	EmployeeCount  int64   `json:"employeeCount"`
	TotalSalary    float64 `json:"totalSalary"`
	AverageSalary  float64 `json:"averageSalary"`
}

type MonthlyHireBucket struct {
	Month string `json:"month"`
	Hires int64  `json:"hires"`
}

// EmployeeDashboardResponse is the self-service view for employee users.
type EmployeeDashboardResponse struct {
	Profile        ProfileSummary `json:"profile"`
	LeaveCounts    LeaveCounts    `json:"leaveCounts"`
	RecentLeaves   []RecentLeave  `json:"recentLeaves"`
	RecentSalaries []RecentSalary `json:"recentSalaries"`
	CurrentSalary  float64        `json:"currentSalary"`
}

type ProfileSummary struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	DepartmentName string `json:"departmentName"`
	DateJoined     string `json:"dateJoined"`
}

type RecentLeave struct {
	ID        string `json:"id"`
	LeaveType string `json:"leaveType"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Status    string `json:"status"`
}

type RecentSalary struct {
	Amount        float64 `json:"amount"`
	EffectiveFrom string  `json:"effectiveFrom"`
	Remarks       string  `json:"remarks,omitempty"`
}
