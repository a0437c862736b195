package auth

import (
	"errors"
	"fmt"

	"github.com/ahsanfayaz52/noteservice/internal/models"
	"github.com/ahsanfayaz52/noteservice/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrValidation is returned when a required field is empty.
	ErrValidation = errors.New("missing required field")
	// ErrInvalidCredentials is returned on login failure. It never reveals
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service handles registration and credential verification.
type Service struct {
	store *store.Store
	log   *logrus.Logger
}

func NewService(st *store.Store, log *logrus.Logger) *Service {
	return &Service{store: st, log: log}
}

// Register creates a new user with a hashed password.
func (s *Service) Register(username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, ErrValidation
	}

	hashedPass, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.store.CreateUser(username, string(hashedPass))
	if err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Username)
	return user, nil
}

// Login verifies the credentials and returns the matching user.
func (s *Service) Login(username, password string) (*models.User, error) {
	user, err := s.store.FindUserByUsername(username)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	s.log.Infof("User logged in: %s", user.Username)
	return user, nil
}
