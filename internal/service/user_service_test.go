package service_test

import (
	"context"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/internal/repository/mocks"
	"github.com/hiyoko/dailystamp/internal/service"
	"github.com/hiyoko/dailystamp/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	os.Exit(m.Run())
}

func TestSignup(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)

	serv := service.NewUserService(usersRepo, profilesRepo)
	testCases := []struct {
		Desc         string
		Error        error
		Request      *service.SignupRequest
		MockPrepFunc func()
	}{
		{
			Desc:  "success",
			Error: nil,
			Request: &service.SignupRequest{
				Name:     "taro",
				Email:    "taro@example.com",
				Password: "password123",
			},
			MockPrepFunc: func() {
				usersRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, user *entity.User) error {
						user.ID = uuid.New()
						return nil
					})
				profilesRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(&entity.Profile{CharacterName: entity.DefaultCharacterName, CurrentStage: entity.StageEgg}, nil)
			},
		},
		{
			Desc:  "error duplicate email",
			Error: errorvalues.ErrUserExists,
			Request: &service.SignupRequest{
				Name:     "taro",
				Email:    "taro@example.com",
				Password: "password123",
			},
			MockPrepFunc: func() {
				usersRepo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(errorvalues.ErrUserExists)
			},
		},
		{
			Desc:  "error invalid email",
			Error: errorvalues.ErrValidation,
			Request: &service.SignupRequest{
				Name:     "taro",
				Email:    "not-an-email",
				Password: "password123",
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error short password",
			Error: errorvalues.ErrValidation,
			Request: &service.SignupRequest{
				Name:     "taro",
				Email:    "taro@example.com",
				Password: "short",
			},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "error empty name",
			Error: errorvalues.ErrValidation,
			Request: &service.SignupRequest{
				Name:     "",
				Email:    "taro@example.com",
				Password: "password123",
			},
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.Signup(ctx, tc.Request)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				require.NotNil(t, user)
				assert.NotEqual(t, uuid.Nil, user.ID)
				assert.NotEqual(t, tc.Request.Password, user.PasswordHash)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)

	serv := service.NewUserService(usersRepo, profilesRepo)
	hash, err := service.Hash("password123")
	require.NoError(t, err)
	uid := uuid.New()
	stored := &entity.User{
		ID:           uid,
		Name:         "taro",
		Email:        "taro@example.com",
		PasswordHash: hash,
	}
	testCases := []struct {
		Desc         string
		Error        error
		Email        string
		Password     string
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Error:    nil,
			Email:    "taro@example.com",
			Password: "password123",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByEmail(gomock.Any(), "taro@example.com").Return(stored, nil)
			},
		},
		{
			Desc:     "error wrong password",
			Error:    errorvalues.ErrWrongCredentials,
			Email:    "taro@example.com",
			Password: "password124",
			MockPrepFunc: func() {
				usersRepo.EXPECT().FindByEmail(gomock.Any(), "taro@example.com").Return(stored, nil)
			},
		},
		{
			Desc:     "error unknown email",
			Error:    errorvalues.ErrWrongCredentials,
			Email:    "nobody@example.com",
			Password: "password123",
			MockPrepFunc: func() {
				usersRepo.EXPECT().
					FindByEmail(gomock.Any(), "nobody@example.com").
					Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := serv.Login(ctx, tc.Email, tc.Password)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, uid, user.ID)
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	usersRepo := mocks.NewMockUsersRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)

	serv := service.NewUserService(usersRepo, profilesRepo)
	uid := uuid.New()

	usersRepo.EXPECT().FindByID(gomock.Any(), uid).Return(&entity.User{ID: uid}, nil)
	user, err := serv.GetByID(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, uid, user.ID)

	missing := uuid.New()
	usersRepo.EXPECT().FindByID(gomock.Any(), missing).Return(nil, errorvalues.ErrUserNotFound)
	_, err = serv.GetByID(context.Background(), missing)
	assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
}
