package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...ServiceOption) portssvc.UserSvcFacade {
	return &userService{
		BaseService: newBaseService(options...),
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ensureEmailFree fails with ErrDuplicate when another user owns email.
func (s *userService) ensureEmailFree(ctx context.Context, email, exceptUserID string) error {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing.UserID != exceptUserID {
		return fmt.Errorf("email %s is already registered: %w", email, apperrors.ErrDuplicate)
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}
	if !req.Role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}
	if err := s.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         req.Role,
		IsActive:     true,
		AuditFields:  auditFields(s.Now(), creatorUserID),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created successfully", slog.String("new_user_id", user.UserID))
	s.RecordAudit(ctx, creatorUserID, domain.ActionCreateUser,
		fmt.Sprintf("Usuario %s (%s) creado con rol %s", user.Name, user.Email, user.Role))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}

	self := userID == requestingUserID
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
		}
		user.Name = name
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if err := s.ensureEmailFree(ctx, email, user.UserID); err != nil {
			return nil, err
		}
		user.Email = email
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, *req.Role)
		}
		if self && *req.Role != user.Role {
			return nil, fmt.Errorf("%w: you cannot change your own role", apperrors.ErrForbidden)
		}
		user.Role = *req.Role
	}
	if req.IsActive != nil {
		if self && !*req.IsActive {
			return nil, fmt.Errorf("%w: you cannot deactivate your own account", apperrors.ErrForbidden)
		}
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.LastUpdatedAt = s.Now()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.RecordAudit(ctx, requestingUserID, domain.ActionUpdateUser,
		fmt.Sprintf("Usuario %s (%s) actualizado", user.Name, user.Email))
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if userID == requestingUserID {
		return fmt.Errorf("%w: you cannot delete your own account", apperrors.ErrForbidden)
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user", slog.String("target_user_id", userID))
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.RecordAudit(ctx, requestingUserID, domain.ActionDeleteUser,
		fmt.Sprintf("Usuario %s (%s) eliminado", user.Name, user.Email))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		s.LogInfo(ctx, "Login attempt for inactive user", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) RecordLogin(ctx context.Context, user *domain.User, method string) error {
	now := s.Now()
	if err := s.userRepo.MarkUserLoggedIn(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to record login", slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLoginAt = &now
	s.RecordAudit(ctx, user.UserID, domain.ActionLogin, fmt.Sprintf("Inicio de sesión (%s)", method))
	return nil
}
