package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-ems/internal/employee"
	employeeerrors "go-ems/internal/employee/errors"
	"go-ems/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn           func(ctx context.Context, e *employee.Employee) error
	findAllFn          func(ctx context.Context) ([]employee.Employee, error)
	findByIDFn         func(ctx context.Context, id string) (*employee.Employee, error)
	findByDepartmentFn func(ctx context.Context, departmentID string) ([]employee.Employee, error)
	updateFn           func(ctx context.Context, e *employee.Employee) error
	deleteFn           func(ctx context.Context, id string) error
	emailTakenFn       func(ctx context.Context, email string, excludeID string) (bool, error)
	departmentExistsFn func(ctx context.Context, departmentID string) (bool, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *gorm.DB) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, e *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByDepartment(ctx context.Context, departmentID string) ([]employee.Employee, error) {
	if f.findByDepartmentFn != nil {
		return f.findByDepartmentFn(ctx, departmentID)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, e)
	}
	return nil
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeEmployeeRepository) EmailTaken(ctx context.Context, email string, excludeID string) (bool, error) {
	if f.emailTakenFn != nil {
		return f.emailTakenFn(ctx, email, excludeID)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) DepartmentExists(ctx context.Context, departmentID string) (bool, error) {
	if f.departmentExistsFn != nil {
		return f.departmentExistsFn(ctx, departmentID)
	}
	return true, nil
}

type fakeCredentialStore struct {
	createFn           func(ctx context.Context, cred employee.Credential) error
	updateEmailFn      func(ctx context.Context, employeeID, email string) error
	deleteByEmployeeFn func(ctx context.Context, employeeID string) error
	emailTakenFn       func(ctx context.Context, email string) (bool, error)
}

func (f *fakeCredentialStore) WithTx(tx *gorm.DB) employee.CredentialStore { return f }

func (f *fakeCredentialStore) Create(ctx context.Context, cred employee.Credential) error {
	if f.createFn != nil {
		return f.createFn(ctx, cred)
	}
	return nil
}

func (f *fakeCredentialStore) UpdateEmail(ctx context.Context, employeeID, email string) error {
	if f.updateEmailFn != nil {
		return f.updateEmailFn(ctx, employeeID, email)
	}
	return nil
}

func (f *fakeCredentialStore) DeleteByEmployee(ctx context.Context, employeeID string) error {
	if f.deleteByEmployeeFn != nil {
		return f.deleteByEmployeeFn(ctx, employeeID)
	}
	return nil
}

func (f *fakeCredentialStore) EmailTaken(ctx context.Context, email string) (bool, error) {
	if f.emailTakenFn != nil {
		return f.emailTakenFn(ctx, email)
	}
	return false, nil
}

type fakeOutboxRepository struct {
	createFn func(ctx context.Context, event kafka.OutboxEvent) error
}

func (f *fakeOutboxRepository) WithTx(tx *gorm.DB) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(ctx context.Context, event kafka.OutboxEvent) error {
	if f.createFn != nil {
		return f.createFn(ctx, event)
	}
	return nil
}

func (f *fakeOutboxRepository) ListPending(ctx context.Context, limit int) ([]kafka.OutboxEvent, error) {
	return nil, nil
}
func (f *fakeOutboxRepository) MarkSent(ctx context.Context, id string) error { return nil }
func (f *fakeOutboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	return nil
}

func newGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	gdb, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return gdb, mock, func() { sqlDB.Close() }
}

func validCreateRequest(departmentID string) employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		Age:          30,
		Gender:       "Female",
		DepartmentID: departmentID,
		Salary:       5200,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	departmentID := uuid.New().String()

	t.Run("provisions record, credential and event together", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectCommit()

		repo := &fakeEmployeeRepository{}
		var cred *employee.Credential
		creds := &fakeCredentialStore{
			createFn: func(ctx context.Context, c employee.Credential) error {
				cred = &c
				return nil
			},
		}
		var event *kafka.OutboxEvent
		outbox := &fakeOutboxRepository{
			createFn: func(ctx context.Context, e kafka.OutboxEvent) error {
				event = &e
				return nil
			},
		}

		svc := employee.NewService(db, repo, creds, outbox)
		resp, err := svc.Create(ctx, validCreateRequest(departmentID))

		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", resp.FullName)
		if assert.NotNil(t, cred) {
			assert.Equal(t, "ada@example.com", cred.Email)
			assert.Equal(t, "123456", cred.Password)
			assert.Equal(t, "employee", cred.Role)
			assert.Equal(t, resp.ID, cred.EmployeeID)
		}
		if assert.NotNil(t, event) {
			assert.Equal(t, "employee.created", event.EventType)
			assert.Equal(t, kafka.OutboxStatusPending, event.Status)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit password overrides the default", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectCommit()

		var cred *employee.Credential
		creds := &fakeCredentialStore{
			createFn: func(ctx context.Context, c employee.Credential) error {
				cred = &c
				return nil
			},
		}

		req := validCreateRequest(departmentID)
		req.Password = "s3cret99"
		svc := employee.NewService(db, &fakeEmployeeRepository{}, creds, &fakeOutboxRepository{})
		_, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		if assert.NotNil(t, cred) {
			assert.Equal(t, "s3cret99", cred.Password)
		}
	})

	t.Run("duplicate email in directory conflicts", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeEmployeeRepository{
			emailTakenFn: func(ctx context.Context, email, excludeID string) (bool, error) {
				return true, nil
			},
		}

		svc := employee.NewService(db, repo, &fakeCredentialStore{}, &fakeOutboxRepository{})
		_, err := svc.Create(ctx, validCreateRequest(departmentID))

		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email among credentials conflicts", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectRollback()

		creds := &fakeCredentialStore{
			emailTakenFn: func(ctx context.Context, email string) (bool, error) {
				return true, nil
			},
		}

		svc := employee.NewService(db, &fakeEmployeeRepository{}, creds, &fakeOutboxRepository{})
		_, err := svc.Create(ctx, validCreateRequest(departmentID))

		assert.ErrorIs(t, err, employeeerrors.ErrEmailTaken)
	})

	t.Run("credential failure rolls back the directory record", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := errors.New("credential insert failed")
		creds := &fakeCredentialStore{
			createFn: func(ctx context.Context, c employee.Credential) error {
				return boom
			},
		}

		svc := employee.NewService(db, &fakeEmployeeRepository{}, creds, &fakeOutboxRepository{})
		_, err := svc.Create(ctx, validCreateRequest(departmentID))

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown department is refused", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectRollback()

		repo := &fakeEmployeeRepository{
			departmentExistsFn: func(ctx context.Context, id string) (bool, error) {
				return false, nil
			},
		}

		svc := employee.NewService(db, repo, &fakeCredentialStore{}, &fakeOutboxRepository{})
		_, err := svc.Create(ctx, validCreateRequest(departmentID))

		assert.ErrorIs(t, err, employeeerrors.ErrDepartmentNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("removes record and credential together", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectCommit()

		credDeleted := false
		recordDeleted := false
		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &employee.Employee{ID: employeeID}, nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				recordDeleted = true
				return nil
			},
		}
		creds := &fakeCredentialStore{
			deleteByEmployeeFn: func(ctx context.Context, id string) error {
				credDeleted = true
				return nil
			},
		}

		svc := employee.NewService(db, repo, creds, &fakeOutboxRepository{})
		err := svc.Delete(ctx, employeeID.String())

		assert.NoError(t, err)
		assert.True(t, credDeleted)
		assert.True(t, recordDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing employee is not found", func(t *testing.T) {
		db, mock, closeDB := newGormMock(t)
		defer closeDB()
		mock.ExpectBegin()
		mock.ExpectRollback()

		svc := employee.NewService(db, &fakeEmployeeRepository{}, &fakeCredentialStore{}, &fakeOutboxRepository{})
		err := svc.Delete(ctx, employeeID.String())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id is rejected before any query", func(t *testing.T) {
		db, _, closeDB := newGormMock(t)
		defer closeDB()

		svc := employee.NewService(db, &fakeEmployeeRepository{}, &fakeCredentialStore{}, &fakeOutboxRepository{})
		err := svc.Delete(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
