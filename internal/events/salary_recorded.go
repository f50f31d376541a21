package events

import "time"

const (
	SalaryRecordedTopic = "ems.salary.ledger.v1"
	SalaryRecordedType  = "salary.recorded"
)

type SalaryRecordedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	SalaryID      string    `json:"salary_id"`
	EmployeeID    string    `json:"employee_id"`
	Amount        float64   `json:"amount"`
	EffectiveFrom time.Time `json:"effective_from"`
	OccurredAt    time.Time `json:"occurred_at"`
}
