// Package store persists users and notes. It is the only package that talks
// to the database; callers match failures with errors.Is against the
// sentinel errors below.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/ahsanfayaz52/noteservice/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// CreateUser inserts a new user with an already-hashed password.
func (s *Store) CreateUser(username, passwordDigest string) (*models.User, error) {
	res, err := s.db.Exec("INSERT INTO users (username, password) VALUES (?, ?)", username, passwordDigest)
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new user id: %w", err)
	}
	return s.FindUserByID(int(id))
}

func (s *Store) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	row := s.db.QueryRow("SELECT id, username, password, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func (s *Store) FindUserByID(id int) (*models.User, error) {
	user := &models.User{}
	row := s.db.QueryRow("SELECT id, username, password, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateNote inserts a note owned by ownerID.
func (s *Store) CreateNote(title, content string, ownerID int) (*models.Note, error) {
	res, err := s.db.Exec("INSERT INTO notes (user_id, title, content) VALUES (?, ?, ?)", ownerID, title, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read new note id: %w", err)
	}
	return s.FindNoteByID(int(id))
}

func (s *Store) FindNoteByID(id int) (*models.Note, error) {
	note := &models.Note{}
	row := s.db.QueryRow(`
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE id = ?`, id)
	err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return note, nil
}

// ListNotesByOwner returns all notes owned by ownerID in insertion order.
func (s *Store) ListNotesByOwner(ownerID int) ([]models.Note, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, title, content, created_at, updated_at
		FROM notes WHERE user_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

// UpdateNote replaces title and content of the note with the given id.
func (s *Store) UpdateNote(id int, title, content string) (*models.Note, error) {
	res, err := s.db.Exec(`
		UPDATE notes SET title = ?, content = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, title, content, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return s.FindNoteByID(id)
}

func (s *Store) DeleteNote(id int) error {
	res, err := s.db.Exec("DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// isDuplicate reports whether err is a unique-constraint violation from
// either supported driver.
func isDuplicate(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
