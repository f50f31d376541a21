package leave

type ApplyLeaveRequest struct {
	LeaveType string `json:"leaveType" binding:"required,oneof='Sick Leave' 'Casual Leave' 'Annual Leave' 'Maternity Leave' 'Paternity Leave' 'Emergency Leave'"`
	FromDate  string `json:"fromDate" binding:"required"`
	ToDate    string `json:"toDate" binding:"required"`
	Cause     string `json:"cause" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Approved Rejected"`
}

type LeaveResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee"`
	EmployeeName string `json:"employeeName,omitempty"`
	LeaveType    string `json:"leaveType"`
	FromDate     string `json:"fromDate"`
	ToDate       string `json:"toDate"`
	Cause        string `json:"cause"`
	Status       string `json:"status"`
	ReviewedBy   string `json:"reviewedBy,omitempty"`
	ReviewedAt   string `json:"reviewedAt,omitempty"`
	AppliedAt    string `json:"appliedAt"`
}

func toResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:           l.ID.String(),
		EmployeeID:   l.EmployeeID.String(),
		EmployeeName: l.EmployeeName,
		LeaveType:    l.LeaveType,
		FromDate:     l.FromDate.Format("2006-01-02"),
		ToDate:       l.ToDate.Format("2006-01-02"),
		Cause:        l.Cause,
		Status:       l.Status,
		AppliedAt:    l.AppliedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if l.ReviewedBy != nil {
		resp.ReviewedBy = l.ReviewedBy.String()
	}
	if l.ReviewedAt != nil {
		resp.ReviewedAt = l.ReviewedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	return resp
}

func toResponses(leaves []LeaveRequest) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		out = append(out, toResponse(l))
	}
	return out
}
