package auth

import (
	"errors"
	"strings"

	"github.com/pollbooth-dev/pollbooth/internal/models"
	"github.com/pollbooth-dev/pollbooth/internal/store"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Service implements registration and credential checks on top of the
// store. Session establishment is the caller's concern.
type Service struct {
	store *store.Store
}

func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Register creates a user with a bcrypt-hashed password. Fails with
// ErrUsernameTaken when the username is already registered.
func (svc *Service) Register(username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)

	_, err := svc.store.FindUserByUsername(username)

	if err == nil {
		return nil, ErrUsernameTaken
	}

	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)

	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: hash,
	}

	if err := svc.store.CreateUser(&user); err != nil {
		// A concurrent registration can slip past the lookup above; the
		// uniqueness index still catches it.
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate checks a username/password pair. An unknown username and a
// wrong password both return ErrInvalidCredentials.
func (svc *Service) Authenticate(username, password string) (*models.User, error) {
	user, err := svc.store.FindUserByUsername(strings.TrimSpace(username))

	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
