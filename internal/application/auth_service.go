package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/storelab/ecommerce-api/internal/domain/entity"
	repo "github.com/storelab/ecommerce-api/internal/domain/repository"
	"github.com/storelab/ecommerce-api/pkg/helpers"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
// Login never distinguishes the two, so a caller cannot probe which emails
// are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService orchestrates registration (hash + persist) and login
// (lookup + verify + issue). It owns no state of its own: the user
// repository is the single source of truth and nothing is cached across
// requests.
type AuthService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, JWT: jwt, Logger: logger}
}

// Register hashes the password and persists the new user. The store assigns
// id and timestamps. The returned record carries the digest, not the
// plaintext.
func (s *AuthService) Register(ctx context.Context, fullName, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{FullName: fullName, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("user create failed")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and bad password fail identically with ErrInvalidCredentials; any other
// store error is passed through for the handler to surface as a 500.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.Generate(u.ID, u.FullName, u.CreatedAt)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token generation failed")
		}
		return "", err
	}
	return token, nil
}
