package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pharmacy_dashboard/internal/apperrors"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/pharmacy_dashboard/internal/core/ports/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/core/services"
	"github.com/SscSPs/pharmacy_dashboard/internal/dto"
	"github.com/SscSPs/pharmacy_dashboard/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockUserRepository
	mockAudit *MockAuditRecorder
	service   portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockAudit = new(MockAuditRecorder)
	suite.service = services.NewUserService(suite.mockRepo,
		services.WithAuditRecorder(suite.mockAudit),
		services.WithClock(fixedClock))
}

func (suite *UserServiceTestSuite) activeUser(password string, role domain.Role) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Name:         "Ana López",
		Email:        "ana@farmacias.mx",
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestCreateUser_NormalizesEmail() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateUserRequest{Name: "Luis", Email: " Luis@Farmacias.MX ", Password: "supersecreto", Role: domain.RoleEmployee}

	suite.mockRepo.On("FindUserByEmail", ctx, "luis@farmacias.mx").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "luis@farmacias.mx" && u.IsActive && u.PasswordHash != "supersecreto" &&
			utils.CheckPasswordHash("supersecreto", u.PasswordHash)
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, creatorID, domain.ActionCreateUser, mock.AnythingOfType("string")).Once()

	user, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	existing := suite.activeUser("irrelevant", domain.RoleEmployee)
	req := dto.CreateUserRequest{Name: "Otra", Email: existing.Email, Password: "supersecreto", Role: domain.RoleEmployee}

	suite.mockRepo.On("FindUserByEmail", ctx, existing.Email).Return(existing, nil).Once()

	_, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_CannotChangeOwnRole() {
	ctx := context.Background()
	admin := suite.activeUser("irrelevant", domain.RoleAdmin)
	role := domain.RoleEmployee

	suite.mockRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()

	_, err := suite.service.UpdateUser(ctx, admin.UserID, dto.UpdateUserRequest{Role: &role}, admin.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateUser_CannotDeactivateSelf() {
	ctx := context.Background()
	admin := suite.activeUser("irrelevant", domain.RoleAdmin)
	inactive := false

	suite.mockRepo.On("FindUserByID", ctx, admin.UserID).Return(admin, nil).Once()

	_, err := suite.service.UpdateUser(ctx, admin.UserID, dto.UpdateUserRequest{IsActive: &inactive}, admin.UserID)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateUser_AdminDeactivatesOther() {
	ctx := context.Background()
	adminID := uuid.NewString()
	target := suite.activeUser("irrelevant", domain.RoleEmployee)
	inactive := false

	suite.mockRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return !u.IsActive && u.LastUpdatedBy == adminID
	})).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, adminID, domain.ActionUpdateUser, mock.AnythingOfType("string")).Once()

	updated, err := suite.service.UpdateUser(ctx, target.UserID, dto.UpdateUserRequest{IsActive: &inactive}, adminID)

	suite.Require().NoError(err)
	suite.False(updated.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_Self() {
	ctx := context.Background()
	id := uuid.NewString()

	err := suite.service.DeleteUser(ctx, id, id)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()
	user := suite.activeUser("correcto123", domain.RoleEmployee)
	inactive := suite.activeUser("correcto123", domain.RoleEmployee)
	inactive.Email = "baja@farmacias.mx"
	inactive.IsActive = false

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil)
	suite.mockRepo.On("FindUserByEmail", ctx, inactive.Email).Return(inactive, nil)
	suite.mockRepo.On("FindUserByEmail", ctx, "nadie@farmacias.mx").Return(nil, apperrors.ErrNotFound)

	testCases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "valid credentials", email: " ANA@farmacias.mx", password: "correcto123"},
		{name: "wrong password", email: user.Email, password: "incorrecto", wantErr: apperrors.ErrUnauthorized},
		{name: "unknown email", email: "nadie@farmacias.mx", password: "correcto123", wantErr: apperrors.ErrUnauthorized},
		{name: "inactive user", email: inactive.Email, password: "correcto123", wantErr: apperrors.ErrUnauthorized},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			got, err := suite.service.AuthenticateUser(ctx, tc.email, tc.password)
			if tc.wantErr != nil {
				suite.ErrorIs(err, tc.wantErr)
				suite.Nil(got)
				return
			}
			suite.Require().NoError(err)
			suite.Equal(user.UserID, got.UserID)
		})
	}
}

func (suite *UserServiceTestSuite) TestRecordLogin() {
	ctx := context.Background()
	user := suite.activeUser("irrelevant", domain.RoleEmployee)

	suite.mockRepo.On("MarkUserLoggedIn", ctx, user.UserID, fixedClock()).Return(nil).Once()
	suite.mockAudit.On("Record", ctx, user.UserID, domain.ActionLogin, "Inicio de sesión (password)").Once()

	err := suite.service.RecordLogin(ctx, user, "password")

	suite.Require().NoError(err)
	suite.Require().NotNil(user.LastLoginAt)
	suite.Equal(fixedClock(), *user.LastLoginAt)
	suite.mockAudit.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
