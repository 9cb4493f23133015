package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Sreejan-22/Memes4u/internal/auth"
	"github.com/Sreejan-22/Memes4u/internal/models"
	"github.com/Sreejan-22/Memes4u/internal/repository"
)

var (
	// ErrUsernameTaken is returned by Signup when the username is in use.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned by Login for an unknown username or
	// a wrong password. The two cases are indistinguishable on purpose.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrExistenceCheck wraps a store failure during the signup username
	// check, which callers report differently from an insert failure.
	ErrExistenceCheck = errors.New("username existence check failed")
)

// Store is the persistence surface the service depends on. Lookups return
// repository.ErrNotFound when no record matches.
type Store interface {
	CreateUser(user *models.User) error
	FindUserByUsername(username string) (*models.User, error)
	UserExists(username string) (bool, error)
	CreateMeme(meme *models.Meme) error
	ListMemes() ([]models.Meme, error)
	ListMemesByUsername(username string) ([]models.Meme, error)
	FindMemeByID(id string) (*models.Meme, error)
	DeleteMemeByID(id string) error
}

// Notifier sends out-of-band signup notifications.
type Notifier interface {
	Enabled() bool
	SendSignupNotification(name, username string) error
}

// Service handles business logic
type Service struct {
	store    Store
	tokens   *auth.TokenIssuer
	notifier Notifier
	log      *logrus.Logger
}

// NewService initializes a new service. notifier may be nil.
func NewService(store Store, tokens *auth.TokenIssuer, notifier Notifier, log *logrus.Logger) *Service {
	return &Service{store: store, tokens: tokens, notifier: notifier, log: log}
}

// Signup creates a new user with a hashed password. The username check and
// the insert are not atomic; concurrent signups for the same username can
// race, and sequential ones cannot.
func (s *Service) Signup(name, username, password string) (*models.User, error) {
	taken, err := s.store.UserExists(username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExistenceCheck, err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Username)

	if s.notifier != nil && s.notifier.Enabled() {
		// Best effort; a mail failure must not affect the signup.
		go func() {
			if err := s.notifier.SendSignupNotification(name, username); err != nil {
				s.log.Errorf("Signup notification failed: %v", err)
			}
		}()
	}

	return user, nil
}

// Login authenticates a user and returns a session token.
func (s *Service) Login(username, password string) (string, error) {
	user, err := s.store.FindUserByUsername(username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	ok, err := auth.VerifyPassword(user.PasswordHash, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", err
	}

	s.log.Infof("User logged in: %s", user.Username)
	return token, nil
}

// CreateMeme stores a new meme attributed to username. The poster's display
// name is snapshotted onto the meme; if no such user exists the meme is
// still created with an empty name, mirroring long-standing behavior.
func (s *Service) CreateMeme(username, caption, url string) (*models.Meme, error) {
	var name string
	user, err := s.store.FindUserByUsername(username)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// keep name empty
	case err != nil:
		return nil, err
	default:
		name = user.Name
	}

	meme := &models.Meme{
		Name:     name,
		Username: username,
		Caption:  caption,
		URL:      url,
	}
	if err := s.store.CreateMeme(meme); err != nil {
		return nil, err
	}

	s.log.Infof("Meme created by %s: %s", username, meme.ID)
	return meme, nil
}

// ListMemes returns all memes, newest first.
func (s *Service) ListMemes() ([]models.Meme, error) {
	return s.store.ListMemes()
}

// MemesByUser returns the memes posted by username, newest first. The user
// lookup runs first; an absent user is not an error and simply yields
// whatever memes carry that username.
func (s *Service) MemesByUser(username string) ([]models.Meme, error) {
	_, err := s.store.FindUserByUsername(username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return s.store.ListMemesByUsername(username)
}

// GetMeme returns the meme with the given id, or repository.ErrNotFound.
func (s *Service) GetMeme(id string) (*models.Meme, error) {
	return s.store.FindMemeByID(id)
}

// DeleteMeme deletes the meme with the given id, whether or not it exists.
func (s *Service) DeleteMeme(id string) error {
	if err := s.store.DeleteMemeByID(id); err != nil {
		return err
	}
	s.log.Infof("Meme deleted: %s", id)
	return nil
}

// VerifyToken resolves a session token back to the identity it asserts.
// Kept for clients that hold issued tokens; no route requires it yet.
func (s *Service) VerifyToken(token string) (userID, username string, err error) {
	return s.tokens.Verify(token)
}
