package authz

import "github.com/gin-gonic/gin"

// Actor is the resolved caller identity: the credential id, its role, and —
// for employee-role callers — the linked employee record id.
type Actor struct {
	UserID     string
	Role       string
	EmployeeID string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Owns reports whether the actor's own employee record matches the given
// employee reference.
func (a Actor) Owns(employeeID string) bool {
	return a.EmployeeID != "" && a.EmployeeID == employeeID
}

// ActorFromContext reads the identity placed in the gin context by the auth
// middleware.
func ActorFromContext(c *gin.Context) Actor {
	return Actor{
		UserID:     c.GetString("user_id"),
		Role:       c.GetString("role"),
		EmployeeID: c.GetString("employee_id"),
	}
}
