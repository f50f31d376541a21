package leave_test

import (
	"context"
	"testing"
	"time"

	"go-ems/internal/authz"
	"go-ems/internal/leave"
	leaveerrors "go-ems/internal/leave/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveRepository struct {
	createFn               func(ctx context.Context, l *leave.LeaveRequest) error
	findAllFn              func(ctx context.Context) ([]leave.LeaveRequest, error)
	findByIDFn             func(ctx context.Context, id string) (*leave.LeaveRequest, error)
	findByEmployeeFn       func(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error)
	updateFn               func(ctx context.Context, l *leave.LeaveRequest) error
	deleteFn               func(ctx context.Context, id string) error
	hasOverlappingPeriodFn func(ctx context.Context, employeeID string, fromDate, toDate time.Time) (bool, error)
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.LeaveRequest) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.LeaveRequest, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByEmployee(ctx context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.LeaveRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveRepository) HasOverlappingPeriod(ctx context.Context, employeeID string, fromDate, toDate time.Time) (bool, error) {
	if f.hasOverlappingPeriodFn != nil {
		return f.hasOverlappingPeriodFn(ctx, employeeID, fromDate, toDate)
	}
	return false, nil
}

func employeeActor(employeeID string) authz.Actor {
	return authz.Actor{
		UserID:     uuid.New().String(),
		Role:       authz.RoleEmployee,
		EmployeeID: employeeID,
	}
}

func adminActor() authz.Actor {
	return authz.Actor{UserID: uuid.New().String(), Role: authz.RoleAdmin}
}

func TestLeaveService_Apply(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	validReq := leave.ApplyLeaveRequest{
		LeaveType: "Sick Leave",
		FromDate:  "2026-09-01",
		ToDate:    "2026-09-03",
		Cause:     "Flu",
	}

	t.Run("success", func(t *testing.T) {
		repo := &fakeLeaveRepository{}
		var created *leave.LeaveRequest
		repo.createFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			created = l
			return nil
		}

		resp, err := leave.NewService(repo).Apply(ctx, employeeActor(employeeID), validReq)
		assert.NoError(t, err)
		assert.NotNil(t, created)
		assert.Equal(t, leave.StatusPending, created.Status)
		assert.Equal(t, employeeID, resp.EmployeeID)
		assert.Equal(t, "Sick Leave", resp.LeaveType)
		assert.Equal(t, "2026-09-01", resp.FromDate)
	})

	t.Run("toDate equal to fromDate is rejected", func(t *testing.T) {
		req := validReq
		req.ToDate = req.FromDate

		_, err := leave.NewService(&fakeLeaveRepository{}).Apply(ctx, employeeActor(employeeID), req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("toDate before fromDate is rejected", func(t *testing.T) {
		req := validReq
		req.FromDate = "2026-09-10"
		req.ToDate = "2026-09-05"

		_, err := leave.NewService(&fakeLeaveRepository{}).Apply(ctx, employeeActor(employeeID), req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("malformed date is rejected", func(t *testing.T) {
		req := validReq
		req.FromDate = "01-09-2026"

		_, err := leave.NewService(&fakeLeaveRepository{}).Apply(ctx, employeeActor(employeeID), req)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateFormat)
	})

	t.Run("overlapping period conflicts", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			hasOverlappingPeriodFn: func(ctx context.Context, eid string, from, to time.Time) (bool, error) {
				return true, nil
			},
		}

		_, err := leave.NewService(repo).Apply(ctx, employeeActor(employeeID), validReq)
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("actor without employee record is rejected", func(t *testing.T) {
		_, err := leave.NewService(&fakeLeaveRepository{}).Apply(ctx, adminActor(), validReq)
		assert.ErrorIs(t, err, leaveerrors.ErrNoLinkedEmployee)
	})
}

func TestLeaveService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	employeeID := uuid.New()

	pending := func() *leave.LeaveRequest {
		return &leave.LeaveRequest{
			ID:         leaveID,
			EmployeeID: employeeID,
			LeaveType:  "Annual Leave",
			FromDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			ToDate:     time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
			Cause:      "Holiday",
			Status:     leave.StatusPending,
		}
	}

	t.Run("pending to approved stamps reviewer", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return pending(), nil
			},
		}
		var saved *leave.LeaveRequest
		repo.updateFn = func(ctx context.Context, l *leave.LeaveRequest) error {
			saved = l
			return nil
		}

		actor := adminActor()
		resp, err := leave.NewService(repo).UpdateStatus(ctx, actor, leaveID.String(), leave.UpdateStatusRequest{Status: leave.StatusApproved})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, actor.UserID, resp.ReviewedBy)
		assert.NotNil(t, saved.ReviewedAt)
	})

	t.Run("pending to rejected", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return pending(), nil
			},
		}

		resp, err := leave.NewService(repo).UpdateStatus(ctx, adminActor(), leaveID.String(), leave.UpdateStatusRequest{Status: leave.StatusRejected})
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusRejected, resp.Status)
	})

	t.Run("decided requests are terminal", func(t *testing.T) {
		for _, status := range []string{leave.StatusApproved, leave.StatusRejected} {
			decided := pending()
			decided.Status = status
			repo := &fakeLeaveRepository{
				findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
					return decided, nil
				},
			}

			_, err := leave.NewService(repo).UpdateStatus(ctx, adminActor(), leaveID.String(), leave.UpdateStatusRequest{Status: leave.StatusApproved})
			assert.ErrorIs(t, err, leaveerrors.ErrAlreadyReviewed, "from status %s", status)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := leave.NewService(&fakeLeaveRepository{}).UpdateStatus(ctx, adminActor(), "not-a-uuid", leave.UpdateStatusRequest{Status: leave.StatusApproved})
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	ctx := context.Background()
	leaveID := uuid.New()
	ownerID := uuid.New()

	record := func(status string) *leave.LeaveRequest {
		return &leave.LeaveRequest{
			ID:         leaveID,
			EmployeeID: ownerID,
			Status:     status,
		}
	}

	t.Run("owner withdraws pending request", func(t *testing.T) {
		deleted := false
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return record(leave.StatusPending), nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		err := leave.NewService(repo).Delete(ctx, employeeActor(ownerID.String()), leaveID.String())
		assert.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("owner cannot withdraw a reviewed request", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return record(leave.StatusApproved), nil
			},
		}

		err := leave.NewService(repo).Delete(ctx, employeeActor(ownerID.String()), leaveID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrDeleteReviewed)
	})

	t.Run("non-owner employee is refused", func(t *testing.T) {
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return record(leave.StatusPending), nil
			},
		}

		err := leave.NewService(repo).Delete(ctx, employeeActor(uuid.New().String()), leaveID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})

	t.Run("admin deletes a reviewed request", func(t *testing.T) {
		deleted := false
		repo := &fakeLeaveRepository{
			findByIDFn: func(ctx context.Context, id string) (*leave.LeaveRequest, error) {
				return record(leave.StatusRejected), nil
			},
			deleteFn: func(ctx context.Context, id string) error {
				deleted = true
				return nil
			},
		}

		err := leave.NewService(repo).Delete(ctx, adminActor(), leaveID.String())
		assert.NoError(t, err)
		assert.True(t, deleted)
	})
}
