package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_storage "talenthub/internal/mocks"
	"talenthub/internal/models"
	"talenthub/internal/services"
	"talenthub/internal/storage"
	"talenthub/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	jwtSecret   = "test-secret-key"
	jwtDuration = 15 * time.Minute
)

// Helper to create a pointer to a string
func ptr(s string) *string { return &s }

func newUserService(ctrl *gomock.Controller) (services.UserService, *mock_storage.MockUserRepository, *mock_storage.MockConnectionRepository, *mock_storage.MockJobApplicationRepository) {
	userRepo := mock_storage.NewMockUserRepository(ctrl)
	connRepo := mock_storage.NewMockConnectionRepository(ctrl)
	appRepo := mock_storage.NewMockJobApplicationRepository(ctrl)
	svc := services.NewUserService(userRepo, connRepo, appRepo, jwtSecret, jwtDuration)
	return svc, userRepo, connRepo, appRepo
}

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _, _ := newUserService(ctrl)

	repoErrDbConnectionLost := errors.New("database connection lost")

	tests := []struct {
		name          string
		req           *dto.RegisterRequest
		mockSetup     func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest)
		expectedUser  *models.User // Only compare relevant fields
		expectedError error
		errorContains string
	}{
		{
			name: "Success",
			req: &dto.RegisterRequest{
				Username: "jdoe",
				Email:    "test@example.com",
				Password: "password123",
				Name:     "Test User",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				mockReturnUser := &models.User{
					ID:           42,
					Username:     req.Username,
					Email:        req.Email,
					Name:         req.Name,
					PasswordHash: "hashedpassword",
					CreatedAt:    time.Now(),
					UpdatedAt:    time.Now(),
				}
				repo.EXPECT().Create(gomock.Any(), req, gomock.Any()).Return(mockReturnUser, nil).Times(1)
			},
			expectedUser: &models.User{
				ID:       42,
				Username: "jdoe",
				Email:    "test@example.com",
				Name:     "Test User",
			},
			expectedError: nil,
		},
		{
			name: "Conflict - Duplicate Username",
			req: &dto.RegisterRequest{
				Username: "jdoe",
				Email:    "other@example.com",
				Password: "password123",
				Name:     "Test User",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				repo.EXPECT().Create(gomock.Any(), req, gomock.Any()).Return(nil, storage.ErrDuplicateUsername).Times(1)
			},
			expectedUser:  nil,
			expectedError: services.ErrConflict,
		},
		{
			name: "Conflict - Duplicate Email",
			req: &dto.RegisterRequest{
				Username: "other",
				Email:    "test@example.com",
				Password: "password123",
				Name:     "Test User",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				repo.EXPECT().Create(gomock.Any(), req, gomock.Any()).Return(nil, storage.ErrDuplicateEmail).Times(1)
			},
			expectedUser:  nil,
			expectedError: services.ErrConflict,
		},
		{
			name: "Repository Error",
			req: &dto.RegisterRequest{
				Username: "erruser",
				Email:    "error@example.com",
				Password: "password123",
				Name:     "Error User",
			},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.RegisterRequest) {
				repo.EXPECT().Create(gomock.Any(), req, gomock.Any()).Return(nil, repoErrDbConnectionLost).Times(1)
			},
			expectedUser:  nil,
			expectedError: repoErrDbConnectionLost,
			errorContains: "internal error creating user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			tt.mockSetup(userRepo, tt.req)

			resp, err := svc.Register(ctx, tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, tt.expectedUser.ID, resp.User.ID)
				assert.Equal(t, tt.expectedUser.Username, resp.User.Username)
				assert.Equal(t, tt.expectedUser.Email, resp.User.Email)
			}
		})
	}
}

func TestUserService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _, _ := newUserService(ctrl)
	ctx := context.Background()

	correctPassword := "password123"
	correctHashedPassword, _ := bcrypt.GenerateFromPassword([]byte(correctPassword), bcrypt.DefaultCost)
	repoErrDbConnection := errors.New("db connection error")

	tests := []struct {
		name          string
		req           *dto.LoginRequest
		mockSetup     func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest)
		expectedError error
		errorContains string
	}{
		{
			name: "Success",
			req:  &dto.LoginRequest{Username: "jdoe", Password: correctPassword},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				mockReturnUser := &models.User{
					ID:           42,
					Username:     req.Username,
					Email:        "test@example.com",
					PasswordHash: string(correctHashedPassword),
					Name:         "Test User",
				}
				repo.EXPECT().GetByUsername(gomock.Any(), req.Username).Return(mockReturnUser, nil).Times(1)
			},
			expectedError: nil,
		},
		{
			name: "Unknown Username",
			req:  &dto.LoginRequest{Username: "nobody", Password: correctPassword},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByUsername(gomock.Any(), req.Username).Return(nil, storage.ErrNotFound).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "Wrong Password",
			req:  &dto.LoginRequest{Username: "jdoe", Password: "not-the-password"},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				mockReturnUser := &models.User{
					ID:           42,
					Username:     req.Username,
					PasswordHash: string(correctHashedPassword),
				}
				repo.EXPECT().GetByUsername(gomock.Any(), req.Username).Return(mockReturnUser, nil).Times(1)
			},
			expectedError: services.ErrInvalidCredentials,
		},
		{
			name: "Repository Error",
			req:  &dto.LoginRequest{Username: "jdoe", Password: correctPassword},
			mockSetup: func(repo *mock_storage.MockUserRepository, req *dto.LoginRequest) {
				repo.EXPECT().GetByUsername(gomock.Any(), req.Username).Return(nil, repoErrDbConnection).Times(1)
			},
			expectedError: repoErrDbConnection,
			errorContains: "internal error during login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(userRepo, tt.req)

			resp, err := svc.Login(ctx, tt.req)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				assert.NotEmpty(t, resp.Token)
				assert.Equal(t, tt.req.Username, resp.User.Username)
			}
		})
	}
}

func TestUserService_GetProfile_Visibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, connRepo, appRepo := newUserService(ctrl)
	ctx := context.Background()

	const profileUserID int64 = 7

	makeUser := func(profile models.ProfileVisibility, cv models.CvVisibility) *models.User {
		return &models.User{
			ID:           profileUserID,
			Username:     "target",
			Name:         "Target User",
			MobileNumber: ptr("+100000000"),
			DigitalCvURL: ptr("https://cv.example.com/target"),
			Privacy: models.PrivacySettings{
				ProfileVisibility: profile,
				CvVisibility:      cv,
			},
		}
	}

	tests := []struct {
		name          string
		viewer        models.Actor
		user          *models.User
		mockSetup     func()
		expectedError error
		expectCv      bool
		expectMobile  bool
	}{
		{
			name:   "Owner sees everything",
			viewer: models.Actor{ID: profileUserID},
			user:   makeUser(models.ProfileVisibilityConnections, models.CvVisibilityConnections),
			mockSetup: func() {
				// No visibility checks for the owner.
			},
			expectCv:     true,
			expectMobile: true,
		},
		{
			name:   "Admin sees everything",
			viewer: models.Actor{ID: 999, IsAdmin: true},
			user:   makeUser(models.ProfileVisibilityConnections, models.CvVisibilityConnections),
			mockSetup: func() {
			},
			expectCv:     true,
			expectMobile: true,
		},
		{
			name:   "Public profile, stranger loses CV and mobile",
			viewer: models.Actor{ID: 2},
			user:   makeUser(models.ProfileVisibilityAll, models.CvVisibilityConnections),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(2), profileUserID).Return(false, nil).Times(1)
			},
			expectCv:     false,
			expectMobile: false,
		},
		{
			name:   "Connections-only profile hidden from stranger",
			viewer: models.Actor{ID: 2},
			user:   makeUser(models.ProfileVisibilityConnections, models.CvVisibilityAll),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(2), profileUserID).Return(false, nil).Times(1)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:   "Connections-only profile visible to a connection",
			viewer: models.Actor{ID: 2},
			user:   makeUser(models.ProfileVisibilityConnections, models.CvVisibilityConnections),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(2), profileUserID).Return(true, nil).Times(1)
			},
			expectCv:     true,
			expectMobile: true,
		},
		{
			name:   "Recruiters-only profile visible to a recruiter",
			viewer: models.Actor{ID: 3, IsRecruiter: true},
			user:   makeUser(models.ProfileVisibilityRecruiters, models.CvVisibilityRecruiters),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(3), profileUserID).Return(false, nil).Times(1)
			},
			expectCv:     true,
			expectMobile: false,
		},
		{
			name:   "Recruiters-only profile hidden from non-recruiter stranger",
			viewer: models.Actor{ID: 2},
			user:   makeUser(models.ProfileVisibilityRecruiters, models.CvVisibilityAll),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(2), profileUserID).Return(false, nil).Times(1)
			},
			expectedError: services.ErrForbidden,
		},
		{
			name:   "Applied CV visible to the job poster",
			viewer: models.Actor{ID: 4, IsRecruiter: true},
			user:   makeUser(models.ProfileVisibilityAll, models.CvVisibilityApplied),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(4), profileUserID).Return(false, nil).Times(1)
				appRepo.EXPECT().HasApplicationToOwner(gomock.Any(), profileUserID, int64(4)).Return(true, nil).Times(1)
			},
			expectCv:     true,
			expectMobile: false,
		},
		{
			name:   "Applied CV hidden without an application",
			viewer: models.Actor{ID: 4, IsRecruiter: true},
			user:   makeUser(models.ProfileVisibilityAll, models.CvVisibilityApplied),
			mockSetup: func() {
				connRepo.EXPECT().AreConnected(gomock.Any(), int64(4), profileUserID).Return(false, nil).Times(1)
				appRepo.EXPECT().HasApplicationToOwner(gomock.Any(), profileUserID, int64(4)).Return(false, nil).Times(1)
			},
			expectCv:     false,
			expectMobile: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo.EXPECT().GetByID(gomock.Any(), profileUserID).Return(tt.user, nil).Times(1)
			tt.mockSetup()

			user, err := svc.GetProfile(ctx, tt.viewer, profileUserID)

			if tt.expectedError != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedError), "Expected error %v, got %v", tt.expectedError, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, user)
			if tt.expectCv {
				assert.NotNil(t, user.DigitalCvURL)
			} else {
				assert.Nil(t, user.DigitalCvURL)
			}
			if tt.expectMobile {
				assert.NotNil(t, user.MobileNumber)
			} else {
				assert.Nil(t, user.MobileNumber)
			}
		})
	}
}

func TestUserService_UpdateProfile_Ownership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _, _ := newUserService(ctrl)
	ctx := context.Background()

	req := &dto.UpdateProfileRequest{ID: 7, Name: ptr("New Name")}

	t.Run("Forbidden for another user", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, models.Actor{ID: 8}, req)
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrForbidden))
	})

	t.Run("Owner may update", func(t *testing.T) {
		userRepo.EXPECT().UpdateProfile(gomock.Any(), req).Return(&models.User{ID: 7, Name: "New Name"}, nil).Times(1)
		user, err := svc.UpdateProfile(ctx, models.Actor{ID: 7}, req)
		require.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
	})

	t.Run("Admin may update", func(t *testing.T) {
		userRepo.EXPECT().UpdateProfile(gomock.Any(), req).Return(&models.User{ID: 7, Name: "New Name"}, nil).Times(1)
		_, err := svc.UpdateProfile(ctx, models.Actor{ID: 99, IsAdmin: true}, req)
		require.NoError(t, err)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, userRepo, _, _ := newUserService(ctrl)
	ctx := context.Background()

	currentHash, _ := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.DefaultCost)
	actor := models.Actor{ID: 7}

	t.Run("Wrong current password", func(t *testing.T) {
		userRepo.EXPECT().GetByID(gomock.Any(), actor.ID).Return(&models.User{ID: 7, PasswordHash: string(currentHash)}, nil).Times(1)

		err := svc.ChangePassword(ctx, actor, &dto.ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "new-password-123",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
	})

	t.Run("Success", func(t *testing.T) {
		userRepo.EXPECT().GetByID(gomock.Any(), actor.ID).Return(&models.User{ID: 7, PasswordHash: string(currentHash)}, nil).Times(1)
		userRepo.EXPECT().UpdatePassword(gomock.Any(), actor.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-123")))
				return nil
			}).Times(1)

		err := svc.ChangePassword(ctx, actor, &dto.ChangePasswordRequest{
			CurrentPassword: "old-password",
			NewPassword:     "new-password-123",
		})
		require.NoError(t, err)
	})
}
