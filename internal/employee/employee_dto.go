package employee

type CreateEmployeeRequest struct {
	FullName     string  `json:"fullName" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"omitempty,min=6"`
	Age          int     `json:"age" binding:"required,gte=18,lte=65"`
	Gender       string  `json:"gender" binding:"required,oneof=Male Female Other"`
	Phone        string  `json:"phone"`
	Address      string  `json:"address"`
	DepartmentID string  `json:"department" binding:"required,uuid"`
	Salary       float64 `json:"salary" binding:"gte=0"`
}

type UpdateEmployeeRequest struct {
	FullName     *string  `json:"fullName"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Age          *int     `json:"age" binding:"omitempty,gte=18,lte=65"`
	Gender       *string  `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	Phone        *string  `json:"phone"`
	Address      *string  `json:"address"`
	DepartmentID *string  `json:"department" binding:"omitempty,uuid"`
	Salary       *float64 `json:"salary" binding:"omitempty,gte=0"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"fullName"`
	Email          string  `json:"email"`
	Age            int     `json:"age"`
	Gender         string  `json:"gender"`
	Phone          string  `json:"phone,omitempty"`
	Address        string  `json:"address,omitempty"`
	DepartmentID   string  `json:"department"`
	DepartmentName string  `json:"departmentName,omitempty"`
	Salary         float64 `json:"salary"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

func toResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID.String(),
		FullName:       e.FullName,
		Email:          e.Email,
		Age:            e.Age,
		Gender:         e.Gender,
		Phone:          e.Phone,
		Address:        e.Address,
		DepartmentID:   e.DepartmentID.String(),
		DepartmentName: e.DepartmentName,
		Salary:         e.Salary,
		CreatedAt:      e.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      e.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toResponses(employees []Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, toResponse(e))
	}
	return out
}
