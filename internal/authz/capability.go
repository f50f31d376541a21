package authz

// Roles known to the system. Admin is a superset for directory, department
// and salary-review operations; employee is restricted to self-scoped reads
// and leave creation.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Capability names one guarded operation.
type Capability string

const (
	EmployeeList       Capability = "employee:list"
	EmployeeRead       Capability = "employee:read"
	EmployeeCreate     Capability = "employee:create"
	EmployeeUpdate     Capability = "employee:update"
	EmployeeDelete     Capability = "employee:delete"
	EmployeeListByDept Capability = "employee:list-by-department"

	DepartmentRead   Capability = "department:read"
	DepartmentCreate Capability = "department:create"
	DepartmentUpdate Capability = "department:update"
	DepartmentDelete Capability = "department:delete"

	LeaveListAll        Capability = "leave:list"
	LeaveListOwn        Capability = "leave:list-own"
	LeaveListByEmployee Capability = "leave:list-by-employee"
	LeaveApply          Capability = "leave:apply"
	LeaveReview         Capability = "leave:review"
	LeaveDelete         Capability = "leave:delete"

	SalaryListAll Capability = "salary:list"
	SalaryReadOwn Capability = "salary:read-own"
	SalaryHistory Capability = "salary:history"
	SalaryRecord  Capability = "salary:record"

	DashboardAdmin    Capability = "dashboard:admin"
	DashboardEmployee Capability = "dashboard:employee"

	ProfileRead    Capability = "profile:read"
	ProfileUpdate  Capability = "profile:update"
	PasswordChange Capability = "password:change"
)

// Rule declares who may exercise a capability. SelfScoped rules additionally
// require the service layer to match the caller's employee record against the
// resource's employee reference.
type Rule struct {
	Roles      []string
	SelfScoped bool
}

var (
	adminOnly    = []string{RoleAdmin}
	employeeOnly = []string{RoleEmployee}
	anyRole      = []string{RoleAdmin, RoleEmployee}
)

// table is the single declarative capability table consumed by the gate.
var table = map[Capability]Rule{
	EmployeeList:       {Roles: adminOnly},
	EmployeeRead:       {Roles: anyRole},
	EmployeeCreate:     {Roles: adminOnly},
	EmployeeUpdate:     {Roles: adminOnly},
	EmployeeDelete:     {Roles: adminOnly},
	EmployeeListByDept: {Roles: adminOnly},

	DepartmentRead:   {Roles: anyRole},
	DepartmentCreate: {Roles: adminOnly},
	DepartmentUpdate: {Roles: adminOnly},
	DepartmentDelete: {Roles: adminOnly},

	LeaveListAll:        {Roles: adminOnly},
	LeaveListOwn:        {Roles: employeeOnly, SelfScoped: true},
	LeaveListByEmployee: {Roles: adminOnly},
	LeaveApply:          {Roles: employeeOnly, SelfScoped: true},
	LeaveReview:         {Roles: adminOnly},
	LeaveDelete:         {Roles: anyRole, SelfScoped: true},

	SalaryListAll: {Roles: adminOnly},
	SalaryReadOwn: {Roles: employeeOnly, SelfScoped: true},
	SalaryHistory: {Roles: adminOnly},
	SalaryRecord:  {Roles: adminOnly},

	DashboardAdmin:    {Roles: adminOnly},
	DashboardEmployee: {Roles: employeeOnly, SelfScoped: true},

	ProfileRead:    {Roles: anyRole, SelfScoped: true},
	ProfileUpdate:  {Roles: anyRole, SelfScoped: true},
	PasswordChange: {Roles: anyRole, SelfScoped: true},
}

// Allowed reports whether role may exercise the capability. Unknown
// capabilities are denied.
func Allowed(capability Capability, role string) bool {
	rule, ok := table[capability]
	if !ok {
		return false
	}
	for _, r := range rule.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SelfScoped reports whether the capability requires an ownership match in
// the service layer.
func SelfScoped(capability Capability) bool {
	return table[capability].SelfScoped
}

// Capabilities lists every registered capability, for table-driven tests.
func Capabilities() []Capability {
	caps := make([]Capability, 0, len(table))
	for c := range table {
		caps = append(caps, c)
	}
	return caps
}
