package employee

import (
	"context"

	"gorm.io/gorm"
)

// Credential is what the directory needs to provision a login alongside a new
// employee record. The store owns hashing.
type Credential struct {
	Email      string
	Password   string
	Role       string
	EmployeeID string
}

// CredentialStore decouples the directory from the auth package: employee
// lifecycle operations provision, sync and revoke logins through it inside
// the same transaction as the directory write.
type CredentialStore interface {
	WithTx(tx *gorm.DB) CredentialStore
	Create(ctx context.Context, cred Credential) error
	UpdateEmail(ctx context.Context, employeeID, email string) error
	DeleteByEmployee(ctx context.Context, employeeID string) error
	EmailTaken(ctx context.Context, email string) (bool, error)
}
