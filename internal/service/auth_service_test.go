package service

import (
	"errors"
	"testing"

	"github.com/lshigami/Pangolin/config"
	"github.com/lshigami/Pangolin/internal/dto"
	"github.com/lshigami/Pangolin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func authConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret"}
}

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, authConfig())

	userRepo.On("FindByEmail", "new@example.com").Return(nil, gorm.ErrRecordNotFound)

	var created *model.User
	userRepo.On("Create", mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(0).(*model.User)
		created.ID = 3
	}).Return(nil)

	resp, err := svc.Register(dto.RegisterDTO{Email: "new@example.com", Password: "hunter2hunter2"})

	assert.NoError(t, err)
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, model.RoleUser, resp.Role)

	if assert.NotNil(t, created) {
		assert.NotEqual(t, "hunter2hunter2", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, authConfig())

	userRepo.On("FindByEmail", "taken@example.com").Return(&model.User{ID: 1, Email: "taken@example.com"}, nil)

	_, err := svc.Register(dto.RegisterDTO{Email: "taken@example.com", Password: "hunter2hunter2"})

	assert.ErrorIs(t, err, ErrEmailTaken)
	userRepo.AssertNotCalled(t, "Create")
}

func TestLogin_IssuesToken(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, authConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	assert.NoError(t, err)

	userRepo.On("FindByEmail", "u@example.com").Return(&model.User{
		ID:           1,
		Email:        "u@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleUser,
	}, nil)

	token, err := svc.Login(dto.LoginDTO{Email: "u@example.com", Password: "hunter2hunter2"})

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, authConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	userRepo.On("FindByEmail", "u@example.com").Return(&model.User{
		ID:           1,
		Email:        "u@example.com",
		PasswordHash: string(hash),
	}, nil)

	_, err := svc.Login(dto.LoginDTO{Email: "u@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, authConfig())

	userRepo.On("FindByEmail", "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Login(dto.LoginDTO{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_LookupFailureIsNotInvalidCredentials(t *testing.T) {
	userRepo := new(MockUserRepository)
	svc := NewAuthService(userRepo, authConfig())

	userRepo.On("FindByEmail", "u@example.com").Return(nil, errors.New("connection refused"))

	_, err := svc.Login(dto.LoginDTO{Email: "u@example.com", Password: "whatever"})

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
