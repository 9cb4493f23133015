package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sreejan-22/Memes4u/internal/models"
)

// ErrNotFound is returned when a lookup matches no record.
var ErrNotFound = errors.New("record not found")

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the users and memes tables if they do not exist.
// There is deliberately no UNIQUE constraint on users.username: uniqueness
// is enforced by an existence check before insert.
func (r *Repository) EnsureSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			username TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS memes (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL DEFAULT '',
			username TEXT NOT NULL,
			caption TEXT NOT NULL,
			url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
	for _, stmt := range stmts {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// CreateUser inserts a new user and fills in its generated id and timestamps.
func (r *Repository) CreateUser(user *models.User) error {
	user.ID = uuid.NewString()
	query := `
		INSERT INTO users (id, name, username, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, user.ID, user.Name, user.Username, user.PasswordHash).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username
func (r *Repository) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, username, password_hash, created_at, updated_at
		FROM users
		WHERE username = $1`
	err := r.db.QueryRow(query, username).
		Scan(&user.ID, &user.Name, &user.Username, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// UserExists reports whether any user has the given username.
func (r *Repository) UserExists(username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`
	if err := r.db.QueryRow(query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// CreateMeme inserts a new meme and fills in its generated id and timestamps.
func (r *Repository) CreateMeme(meme *models.Meme) error {
	meme.ID = uuid.NewString()
	query := `
		INSERT INTO memes (id, name, username, caption, url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at`
	err := r.db.QueryRow(query, meme.ID, meme.Name, meme.Username, meme.Caption, meme.URL).
		Scan(&meme.CreatedAt, &meme.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create meme: %w", err)
	}
	return nil
}

// ListMemes returns all memes, newest first.
func (r *Repository) ListMemes() ([]models.Meme, error) {
	query := `
		SELECT id, name, username, caption, url, created_at, updated_at
		FROM memes
		ORDER BY created_at DESC`
	return r.scanMemes(r.db.Query(query))
}

// ListMemesByUsername returns the memes posted by username, newest first.
func (r *Repository) ListMemesByUsername(username string) ([]models.Meme, error) {
	query := `
		SELECT id, name, username, caption, url, created_at, updated_at
		FROM memes
		WHERE username = $1
		ORDER BY created_at DESC`
	return r.scanMemes(r.db.Query(query, username))
}

func (r *Repository) scanMemes(rows *sql.Rows, err error) ([]models.Meme, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to list memes: %w", err)
	}
	defer rows.Close()

	var memes []models.Meme
	for rows.Next() {
		var m models.Meme
		if err := rows.Scan(&m.ID, &m.Name, &m.Username, &m.Caption, &m.URL, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan meme: %w", err)
		}
		memes = append(memes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list memes: %w", err)
	}
	return memes, nil
}

// FindMemeByID retrieves a meme by id. A malformed id surfaces as a query
// error, not ErrNotFound.
func (r *Repository) FindMemeByID(id string) (*models.Meme, error) {
	meme := &models.Meme{}
	query := `
		SELECT id, name, username, caption, url, created_at, updated_at
		FROM memes
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&meme.ID, &meme.Name, &meme.Username, &meme.Caption, &meme.URL, &meme.CreatedAt, &meme.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find meme: %w", err)
	}
	return meme, nil
}

// DeleteMemeByID deletes a meme by id. Deleting an id that matches nothing
// is not an error.
func (r *Repository) DeleteMemeByID(id string) error {
	if _, err := r.db.Exec(`DELETE FROM memes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete meme: %w", err)
	}
	return nil
}
