package service

import (
	"errors"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sreejan-22/Memes4u/internal/auth"
	"github.com/Sreejan-22/Memes4u/internal/models"
	"github.com/Sreejan-22/Memes4u/internal/repository"
)

var errStore = errors.New("store unavailable")

// fakeStore is an in-memory Store with switchable failure points.
type fakeStore struct {
	mu    sync.Mutex
	users []models.User
	memes []models.Meme
	clock time.Time

	failExists bool
	failFind   bool
	failInsert bool
	failList   bool
	failDelete bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) CreateUser(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return errStore
	}
	user.ID = uuid.NewString()
	user.CreatedAt = f.tick()
	user.UpdatedAt = user.CreatedAt
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeStore) FindUserByUsername(username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errStore
	}
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) UserExists(username string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failExists {
		return false, errStore
	}
	for i := range f.users {
		if f.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) CreateMeme(meme *models.Meme) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return errStore
	}
	meme.ID = uuid.NewString()
	meme.CreatedAt = f.tick()
	meme.UpdatedAt = meme.CreatedAt
	f.memes = append(f.memes, *meme)
	return nil
}

func (f *fakeStore) ListMemes() ([]models.Meme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errStore
	}
	return sortedNewestFirst(f.memes), nil
}

func (f *fakeStore) ListMemesByUsername(username string) ([]models.Meme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failList {
		return nil, errStore
	}
	var matched []models.Meme
	for _, m := range f.memes {
		if m.Username == username {
			matched = append(matched, m)
		}
	}
	return sortedNewestFirst(matched), nil
}

func (f *fakeStore) FindMemeByID(id string) (*models.Meme, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return nil, errStore
	}
	for i := range f.memes {
		if f.memes[i].ID == id {
			m := f.memes[i]
			return &m, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeStore) DeleteMemeByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDelete {
		return errStore
	}
	for i := range f.memes {
		if f.memes[i].ID == id {
			f.memes = append(f.memes[:i], f.memes[i+1:]...)
			return nil
		}
	}
	return nil
}

func sortedNewestFirst(memes []models.Meme) []models.Meme {
	out := make([]models.Meme, len(memes))
	copy(out, memes)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func newTestService(store Store) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(store, auth.NewTokenIssuer("test-secret"), nil, logger)
}

func TestSignupStoresHashedPassword(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)

	user, err := svc.Signup("Ann", "ann1", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)

	assert.NotEqual(t, "secret1", user.PasswordHash)
	ok, err := auth.VerifyPassword(user.PasswordHash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSignupDuplicateUsername(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())

	_, err := svc.Signup("Ann", "ann1", "secret1")
	require.NoError(t, err)

	_, err = svc.Signup("Other Ann", "ann1", "secret2")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestSignupExistenceCheckFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.failExists = true
	svc := newTestService(store)

	_, err := svc.Signup("Ann", "ann1", "secret1")
	assert.ErrorIs(t, err, ErrExistenceCheck)
}

func TestLoginUnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())
	_, err := svc.Signup("Ann", "ann1", "secret1")
	require.NoError(t, err)

	_, errUnknown := svc.Login("nobody", "secret1")
	_, errWrong := svc.Login("ann1", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
}

func TestLoginReturnsVerifiableToken(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store)
	user, err := svc.Signup("Ann", "ann1", "secret1")
	require.NoError(t, err)

	token, err := svc.Login("ann1", "secret1")
	require.NoError(t, err)

	userID, username, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "ann1", username)
}

func TestLoginCorruptHashFailsClosed(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.users = append(store.users, models.User{
		ID:           uuid.NewString(),
		Name:         "Ann",
		Username:     "ann1",
		PasswordHash: "corrupt",
	})
	svc := newTestService(store)

	_, err := svc.Login("ann1", "secret1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateMemeSnapshotsName(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())
	_, err := svc.Signup("Ann", "ann1", "secret1")
	require.NoError(t, err)

	meme, err := svc.CreateMeme("ann1", "lol", "http://x/i.png")
	require.NoError(t, err)
	assert.Equal(t, "Ann", meme.Name)
}

func TestCreateMemeUnknownUserGetsEmptyName(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())

	meme, err := svc.CreateMeme("ghost", "lol", "http://x/i.png")
	require.NoError(t, err)
	assert.Empty(t, meme.Name)
	assert.Equal(t, "ghost", meme.Username)
}

func TestMemesByUserPropagatesLookupError(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.failFind = true
	svc := newTestService(store)

	_, err := svc.MemesByUser("ann1")
	assert.ErrorIs(t, err, errStore)
}

func TestMemesByUserAbsentUserYieldsEmptyList(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())

	memes, err := svc.MemesByUser("nobody")
	require.NoError(t, err)
	assert.Empty(t, memes)
}

func TestDeleteMemeAbsentIDSucceeds(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore())
	assert.NoError(t, svc.DeleteMeme(uuid.NewString()))
}
