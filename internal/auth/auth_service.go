package auth

import (
	"context"
	"errors"
	"os"
	"time"

	autherrors "go-ems/internal/auth/errors"
	"go-ems/internal/authz"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const defaultTokenTTL = 24 * time.Hour

// tokenTTL reads the token lifetime from JWT_EXPIRE (a Go duration such as
// "12h"), falling back to 24h when unset or unparsable.
func tokenTTL() time.Duration {
	v := os.Getenv("JWT_EXPIRE")
	if v == "" {
		return defaultTokenTTL
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return defaultTokenTTL
	}
	return d
}

type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	GetMe(ctx context.Context, userID string) (ProfileResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.logger.Warn("login password mismatch", zap.String("email", req.Email))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := generateToken(user)
	if err != nil {
		s.logger.Error("login token generation failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGeneration
	}

	s.logger.Info("login success",
		zap.String("user_id", user.ID.String()),
		zap.String("role", user.Role),
	)
	return LoginResponse{Token: token, User: toUserInfo(user)}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, autherrors.ErrUserNotFound
		}
		return ProfileResponse{}, err
	}
	return s.buildProfile(ctx, user)
}

func (s *service) ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.OldPassword)); err != nil {
		return autherrors.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.repo.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		s.logger.Error("change password persist failed", zap.Error(err))
		return err
	}

	s.logger.Info("password changed", zap.String("user_id", userID))
	return nil
}

// UpdateProfile lets a user edit the contact fields of their own employee
// record. Email, salary and department stay admin-only.
func (s *service) UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (ProfileResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, autherrors.ErrUserNotFound
		}
		return ProfileResponse{}, err
	}
	if user.EmployeeID == nil {
		return ProfileResponse{}, autherrors.ErrNoLinkedEmployee
	}

	fields := map[string]any{}
	if req.FullName != nil {
		fields["full_name"] = *req.FullName
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}

	if err := s.repo.UpdateEmployeeProfile(ctx, user.EmployeeID.String(), fields); err != nil {
		s.logger.Error("update profile persist failed", zap.Error(err))
		return ProfileResponse{}, err
	}

	s.logger.Info("profile updated",
		zap.String("user_id", userID),
		zap.String("employee_id", user.EmployeeID.String()),
	)
	return s.buildProfile(ctx, user)
}

func (s *service) buildProfile(ctx context.Context, user *User) (ProfileResponse, error) {
	resp := ProfileResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
	if user.EmployeeID == nil {
		return resp, nil
	}

	resp.EmployeeID = user.EmployeeID.String()
	p, err := s.repo.FindEmployeeProfile(ctx, user.EmployeeID.String())
	if err != nil {
		s.logger.Error("profile employee lookup failed",
			zap.String("employee_id", resp.EmployeeID), zap.Error(err))
		return ProfileResponse{}, err
	}

	resp.FullName = p.FullName
	resp.Age = p.Age
	resp.Gender = p.Gender
	resp.Phone = p.Phone
	resp.Address = p.Address
	resp.DepartmentID = p.DepartmentID
	resp.DepartmentName = p.DepartmentName
	salary := p.Salary
	resp.Salary = &salary
	return resp, nil
}

func toUserInfo(user *User) UserInfo {
	info := UserInfo{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}
	if user.EmployeeID != nil {
		info.EmployeeID = user.EmployeeID.String()
	}
	return info
}

func generateToken(user *User) (string, error) {
	employeeID := ""
	if user.EmployeeID != nil {
		employeeID = user.EmployeeID.String()
	}
	claims := jwt.MapClaims{
		"user_id":     user.ID.String(),
		"role":        user.Role,
		"employee_id": employeeID,
		"exp":         time.Now().Add(tokenTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// HashPassword is used by seeding to create credentials outside the employee
// lifecycle flow.
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(hashed), err
}

// NewAdminUser builds an unattached admin credential.
func NewAdminUser(email, hashedPassword string) *User {
	return &User{
		ID:       uuid.New(),
		Email:    email,
		Password: hashedPassword,
		Role:     authz.RoleAdmin,
	}
}
