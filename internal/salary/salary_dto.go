package salary

type RecordSalaryRequest struct {
	EmployeeID    string   `json:"-"`
	Amount        *float64 `json:"amount" binding:"required,gte=0"`
	EffectiveFrom string   `json:"effectiveFrom" binding:"omitempty"`
	Remarks       string   `json:"remarks"`
}

type SalaryResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee"`
	EmployeeName  string  `json:"employeeName,omitempty"`
	Amount        float64 `json:"amount"`
	EffectiveFrom string  `json:"effectiveFrom"`
	Remarks       string  `json:"remarks,omitempty"`
	RecordedBy    string  `json:"recordedBy,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// HistoryResponse pairs the ledger with the cached current salary so a
// client never has to derive one from the other.
type HistoryResponse struct {
	CurrentSalary float64          `json:"currentSalary"`
	History       []SalaryResponse `json:"history"`
}

func toResponse(r SalaryRecord) SalaryResponse {
	resp := SalaryResponse{
		ID:            r.ID.String(),
		EmployeeID:    r.EmployeeID.String(),
		EmployeeName:  r.EmployeeName,
		Amount:        r.Amount,
		EffectiveFrom: r.EffectiveFrom.Format("2006-01-02"),
		Remarks:       r.Remarks,
		CreatedAt:     r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if r.RecordedBy != nil {
		resp.RecordedBy = r.RecordedBy.String()
	}
	return resp
}

func toResponses(records []SalaryRecord) []SalaryResponse {
	out := make([]SalaryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r))
	}
	return out
}
