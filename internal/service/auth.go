package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/octobees/futsal-booking/api/internal/auth"
	"github.com/octobees/futsal-booking/api/internal/repository"
)

var (
	// ErrInvalidCredentials is returned for unknown emails and wrong passwords alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailAlreadyExists is returned when registering a taken email.
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// AuthService coordinates credential validation and token issuance.
type AuthService struct {
	users repository.UsersRepository
	jwt   *auth.JWTManager
}

// NewAuthService constructs a new AuthService.
func NewAuthService(users repository.UsersRepository, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{users: users, jwt: jwtManager}
}

// Register creates an account and returns a JWT for it.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user, err := s.users.Create(ctx, email, string(hash), "owner")
	if err != nil {
		if errors.Is(err, repository.ErrEmailDuplicate) {
			return "", ErrEmailAlreadyExists
		}
		return "", err
	}

	return s.jwt.GenerateToken(user.ID.String(), user.Email, user.Role)
}

// Login validates credentials and returns a JWT.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", errors.New("email and password must not be empty")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.jwt.GenerateToken(user.ID.String(), user.Email, user.Role)
}
