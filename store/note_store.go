package store

import (
	"time"

	"github.com/josephgoksu/organizer/models"
)

// NoteStore keeps the note collection.
type NoteStore struct {
	*FileStore[*models.Note]
	now func() time.Time
}

// NewNoteStore opens the note collection described by opts.
func NewNoteStore(opts Options) (*NoteStore, error) {
	fs, err := NewFileStore[*models.Note](models.NoteCSV{}, opts)
	if err != nil {
		return nil, err
	}
	s := &NoteStore{FileStore: fs, now: time.Now}
	// Notes loaded or imported without a timestamp get the current time.
	fs.fill = func(n *models.Note) {
		if n.Timestamp == "" {
			n.Touch(s.now())
		}
	}
	return s, nil
}

// WithClock replaces the clock used for timestamps.
func (s *NoteStore) WithClock(now func() time.Time) *NoteStore {
	s.now = now
	return s
}

// Add creates a note stamped with the current time.
func (s *NoteStore) Add(title, content string) (*models.Note, error) {
	n := &models.Note{Title: title, Content: content}
	n.Touch(s.now())
	return s.Create(n)
}

// Details returns one note. Unknown IDs return ErrNotFound.
func (s *NoteStore) Details(id int) (*models.Note, error) {
	return s.Find(id)
}

// Edit replaces the title and/or content. A nil or empty value keeps the
// current field. The timestamp is refreshed on every edit.
func (s *NoteStore) Edit(id int, title, content *string) (*models.Note, error) {
	return s.Update(id, func(n *models.Note) error {
		if title != nil && *title != "" {
			n.Title = *title
		}
		if content != nil && *content != "" {
			n.Content = *content
		}
		n.Touch(s.now())
		return nil
	})
}
