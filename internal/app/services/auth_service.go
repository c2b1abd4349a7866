package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/insider-navs/backend/internal/app/models/dto"
	"github.com/insider-navs/backend/internal/app/repositories"
	"github.com/insider-navs/backend/internal/pkg/apperrors"
	"github.com/insider-navs/backend/internal/pkg/auth"
)

// The admin failure message is shared between the unknown-username and
// wrong-password paths so the two cases are indistinguishable to a caller.
const invalidAdminCredentialsMessage = "Invalid username or password"

// AuthService defines the two independent login flows
type AuthService interface {
	AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error)
	FacultyLogin(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.IUserRepository) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
	}
}

// AdminLogin verifies an admin username and password. Unknown usernames and
// wrong passwords produce the same response body.
func (s *authServiceImpl) AdminLogin(ctx context.Context, req *dto.AdminLoginRequest) (*dto.LoginResponse, error) {
	admin, err := s.userRepo.GetAdminByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminUserNotFound) {
			return &dto.LoginResponse{Success: false, Message: invalidAdminCredentialsMessage}, nil
		}
		return nil, fmt.Errorf("error during admin login: %w", err)
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return &dto.LoginResponse{Success: false, Message: invalidAdminCredentialsMessage}, nil
	}

	return &dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Username: &admin.Username,
	}, nil
}

// FacultyLogin resolves a faculty username to its faculty ID. The username is
// lowercased and trimmed before lookup so case and whitespace variants all
// resolve to the same account.
func (s *authServiceImpl) FacultyLogin(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.GetFacultyUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrFacultyUserNotFound) {
			return &dto.LoginResponse{Success: false, Message: "Invalid faculty username"}, nil
		}
		return nil, fmt.Errorf("error during faculty login: %w", err)
	}

	return &dto.LoginResponse{
		Success:   true,
		Message:   "Login successful",
		FacultyID: &user.FacultyID,
	}, nil
}
