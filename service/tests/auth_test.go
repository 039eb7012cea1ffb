package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jobdeck/jobdeck/models"
	"github.com/jobdeck/jobdeck/service"
	"github.com/jobdeck/jobdeck/store"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := service.HashPassword("pw123456")
	assert.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)

	assert.True(t, service.CheckPassword("pw123456", hash))
	assert.False(t, service.CheckPassword("wrong", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, service.CheckPassword("pw123456", "not-a-bcrypt-hash"))
	assert.False(t, service.CheckPassword("pw123456", ""))
}

func TestRegisterThenLogin_TokenResolvesToUser(t *testing.T) {
	svc, mockStore := setupService(t)
	ctx := context.Background()

	email := "a@x.com"
	password := "pw123456"

	hash, err := service.HashPassword(password)
	assert.NoError(t, err)
	storedUser := models.User{
		Id:           "user-1",
		Email:        email,
		Name:         "A",
		PasswordHash: hash,
	}

	// 1. Register
	mockStore.On("GetUserByEmail", ctx, email).Return(models.User{}, store.ErrItemNotFound).Once()
	mockStore.On("CreateUser", ctx, mock.AnythingOfType("models.User")).Return(storedUser, nil)

	user, err := svc.Register(ctx, email, password, "A")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", user.Id)

	// 2. Login
	mockStore.On("GetUserByEmail", ctx, email).Return(storedUser, nil)

	gotUser, token, err := svc.Login(ctx, email, password)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "A", gotUser.Name)

	// 3. The token's embedded id resolves back to the user
	gotId, err := svc.AuthenticateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", gotId)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, mockStore := setupService(t)
	ctx := context.Background()

	mockStore.On("GetUserByEmail", ctx, "a@x.com").Return(models.User{Id: "user-1"}, nil)

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
	mockStore.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestRegister_LostCreationRace(t *testing.T) {
	svc, mockStore := setupService(t)
	ctx := context.Background()

	mockStore.On("GetUserByEmail", ctx, "a@x.com").Return(models.User{}, store.ErrItemNotFound)
	mockStore.On("CreateUser", ctx, mock.AnythingOfType("models.User")).Return(models.User{}, store.ErrItemExists)

	_, err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	svc, mockStore := setupService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "pw123456", "A")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Register(ctx, "a@x.com", "pw", "A")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Register(ctx, "a@x.com", "pw123456", "")
	assert.ErrorIs(t, err, service.ErrValidation)

	mockStore.AssertNotCalled(t, "GetUserByEmail", mock.Anything, mock.Anything)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, mockStore := setupService(t)
	ctx := context.Background()

	mockStore.On("GetUserByEmail", ctx, "nobody@x.com").Return(models.User{}, store.ErrItemNotFound)

	_, token, err := svc.Login(ctx, "nobody@x.com", "pw123456")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
	assert.Empty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockStore := setupService(t)
	ctx := context.Background()

	hash, err := service.HashPassword("correct-pw")
	assert.NoError(t, err)
	mockStore.On("GetUserByEmail", ctx, "a@x.com").Return(models.User{Id: "user-1", PasswordHash: hash}, nil)

	_, token, err := svc.Login(ctx, "a@x.com", "wrong-pw")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestCreateAndVerifyJWT(t *testing.T) {
	svc, _ := setupService(t)

	token, err := svc.CreateJWT("user-123")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	gotId, err := svc.VerifyJWT(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-123", gotId)
}

func TestVerifyJWT_Invalid(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.VerifyJWT("invalid.token.string")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestVerifyJWT_WrongKey(t *testing.T) {
	svc, _ := setupService(t)

	claims := jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	assert.NoError(t, err)

	_, err = svc.VerifyJWT(signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestVerifyJWT_Expired(t *testing.T) {
	svc, _ := setupService(t)

	// Issued 25 hours ago with the 24-hour lifetime already elapsed
	claims := jwt.MapClaims{
		"id":  "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
		"iat": time.Now().Add(-25 * time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)

	_, err = svc.VerifyJWT(signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestVerifyJWT_MissingIdClaim(t *testing.T) {
	svc, _ := setupService(t)

	claims := jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	assert.NoError(t, err)

	_, err = svc.VerifyJWT(signed)
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestAuthenticateToken_Empty(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.AuthenticateToken("")
	assert.ErrorIs(t, err, service.ErrInvalidToken)
}
