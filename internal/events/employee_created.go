package events

import "time"

const (
	EmployeeCreatedTopic = "ems.employee.lifecycle.v1"
	EmployeeCreatedType  = "employee.created"
)

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Salary     float64   `json:"salary"`
	OccurredAt time.Time `json:"occurred_at"`
}
