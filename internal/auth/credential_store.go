package auth

import (
	"context"

	"go-ems/internal/employee"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// credentialStore adapts the auth repository to the directory's credential
// contract so employee lifecycle writes can ride the same transaction.
type credentialStore struct {
	repo Repository
}

func NewCredentialStore(repo Repository) employee.CredentialStore {
	return &credentialStore{repo: repo}
}

func (s *credentialStore) WithTx(tx *gorm.DB) employee.CredentialStore {
	return &credentialStore{repo: s.repo.WithTx(tx)}
}

func (s *credentialStore) Create(ctx context.Context, cred employee.Credential) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	employeeID, err := uuid.Parse(cred.EmployeeID)
	if err != nil {
		return err
	}

	return s.repo.Create(ctx, &User{
		ID:         uuid.New(),
		Email:      cred.Email,
		Password:   string(hashed),
		Role:       cred.Role,
		EmployeeID: &employeeID,
	})
}

func (s *credentialStore) UpdateEmail(ctx context.Context, employeeID, email string) error {
	return s.repo.UpdateEmailByEmployee(ctx, employeeID, email)
}

func (s *credentialStore) DeleteByEmployee(ctx context.Context, employeeID string) error {
	return s.repo.DeleteByEmployee(ctx, employeeID)
}

func (s *credentialStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.repo.EmailTaken(ctx, email)
}
