// Package notes implements note CRUD scoped to the acting user. Every
// operation takes the owner id explicitly; a note is only visible to, and
// mutable by, its owner.
package notes

import (
	"errors"

	"github.com/ahsanfayaz52/noteservice/internal/models"
	"github.com/ahsanfayaz52/noteservice/internal/store"
	"github.com/sirupsen/logrus"
)

// MaxTitleLen bounds note titles.
const MaxTitleLen = 100

var (
	// ErrNotFound is returned when the referenced note does not exist.
	ErrNotFound = errors.New("note not found")
	// ErrForbidden is returned when the note belongs to another user.
	ErrForbidden = errors.New("note belongs to another user")
	// ErrValidation is returned on a missing or over-long field.
	ErrValidation = errors.New("invalid note fields")
)

type Service struct {
	store *store.Store
	log   *logrus.Logger
}

func NewService(st *store.Store, log *logrus.Logger) *Service {
	return &Service{store: st, log: log}
}

func validate(title, content string) error {
	if title == "" || content == "" {
		return ErrValidation
	}
	if len(title) > MaxTitleLen {
		return ErrValidation
	}
	return nil
}

// Create persists a new note owned by ownerID.
func (s *Service) Create(ownerID int, title, content string) (*models.Note, error) {
	if err := validate(title, content); err != nil {
		return nil, err
	}

	note, err := s.store.CreateNote(title, content, ownerID)
	if err != nil {
		return nil, err
	}

	s.log.Infof("Note %d created by user %d", note.ID, ownerID)
	return note, nil
}

// ListMine returns all notes owned by ownerID in insertion order.
func (s *Service) ListMine(ownerID int) ([]models.Note, error) {
	return s.store.ListNotesByOwner(ownerID)
}

// Get fetches a single note, enforcing ownership. The note is looked up by
// id alone so a missing note and someone else's note surface as distinct
// failures.
func (s *Service) Get(ownerID, noteID int) (*models.Note, error) {
	note, err := s.store.FindNoteByID(noteID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if note.UserID != ownerID {
		return nil, ErrForbidden
	}
	return note, nil
}

// Update replaces the title and content of an owned note.
func (s *Service) Update(ownerID, noteID int, title, content string) (*models.Note, error) {
	if _, err := s.Get(ownerID, noteID); err != nil {
		return nil, err
	}
	if err := validate(title, content); err != nil {
		return nil, err
	}

	note, err := s.store.UpdateNote(noteID, title, content)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	s.log.Infof("Note %d updated by user %d", noteID, ownerID)
	return note, nil
}

// Delete removes an owned note. Deletion is immediate and irreversible.
func (s *Service) Delete(ownerID, noteID int) error {
	if _, err := s.Get(ownerID, noteID); err != nil {
		return err
	}

	if err := s.store.DeleteNote(noteID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.log.Infof("Note %d deleted by user %d", noteID, ownerID)
	return nil
}
