package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobdeck/jobdeck/models"
	"github.com/jobdeck/jobdeck/store"
)

const tokenLifetime = 24 * time.Hour

// HashPassword produces a salted bcrypt hash of the plaintext password.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// hash. A malformed stored hash counts as a mismatch.
func CheckPassword(plaintext string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

func (s *Service) Register(ctx context.Context, email string, password string, name string) (models.User, error) {
	if err := ValidateRegistration(email, password, name); err != nil {
		return models.User{}, err
	}

	_, err := s.Store.GetUserByEmail(ctx, email)
	if err == nil {
		return models.User{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrItemNotFound) {
		return models.User{}, fmt.Errorf("email lookup failed: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := s.Store.CreateUser(ctx, models.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	})
	if err != nil {
		// Lost a race against a concurrent registration for the same email
		if errors.Is(err, store.ErrItemExists) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("create user failed: %w", err)
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email string, password string) (models.User, string, error) {
	user, err := s.Store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			return models.User{}, "", ErrUserNotFound
		}
		return models.User{}, "", fmt.Errorf("email lookup failed: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := s.CreateJWT(user.Id)
	if err != nil {
		return models.User{}, "", fmt.Errorf("token generation failed: %w", err)
	}

	return user, token, nil
}

func (s *Service) CreateJWT(id string) (string, error) {
	claims := jwt.MapClaims{
		"id":  id,
		"exp": time.Now().Add(tokenLifetime).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}

// VerifyJWT checks the token signature and expiry and returns the embedded
// user id. All failure modes map to ErrInvalidToken.
func (s *Service) VerifyJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return s.JWTSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok {
		return "", ErrInvalidToken
	}

	return id, nil
}

// AuthenticateToken resolves a bearer token to the requesting user id.
// Tokens are stateless, so no store lookup is involved.
func (s *Service) AuthenticateToken(token string) (string, error) {
	if len(token) == 0 {
		return "", ErrInvalidToken
	}

	return s.VerifyJWT(token)
}
