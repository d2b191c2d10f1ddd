package store

import (
	"io"
	"iter"

	"github.com/josephgoksu/organizer/models"
)

// RecordStore defines the interface for record persistence.
// It outlines the contract shared by the task, finance, contact and note
// collections: whole-collection load and save, CRUD by integer ID, and
// CSV export/import.
type RecordStore[R models.Record] interface {
	// Load reads the full collection from the backing file.
	// A missing file is an empty collection, not an error.
	Load() ([]R, error)

	// Save replaces the backing file with the given records.
	Save(records []R) error

	// Create assigns the next ID to r, appends it and saves the collection.
	Create(r R) (R, error)

	// List yields the records of a fresh load. Ranging again reloads.
	List() iter.Seq2[R, error]

	// Find returns the record with the given ID or ErrNotFound.
	Find(id int) (R, error)

	// Update applies fn to the record with the given ID and saves.
	// It returns ErrNotFound without writing anything when the ID is unknown.
	Update(id int, fn func(R) error) (R, error)

	// Delete removes the record with the given ID. Unknown IDs are a no-op.
	Delete(id int) error

	// DeleteAll empties the collection.
	// This is a destructive operation.
	DeleteAll() error

	// ExportCSVTo writes a header row and one row per record.
	ExportCSVTo(w io.Writer) (int, error)

	// ImportCSVFrom replaces the whole collection with the rows read from r.
	// Malformed rows abort the import with ErrMalformedImport.
	ImportCSVFrom(r io.Reader) (int, error)

	// Backup copies the backing file to destinationPath.
	Backup(destinationPath string) error

	// Restore replaces the backing file with the contents of sourcePath.
	Restore(sourcePath string) error
}

var (
	_ RecordStore[*models.Task]            = (*FileStore[*models.Task])(nil)
	_ RecordStore[*models.FinancialRecord] = (*FileStore[*models.FinancialRecord])(nil)
	_ RecordStore[*models.Contact]         = (*FileStore[*models.Contact])(nil)
	_ RecordStore[*models.Note]            = (*FileStore[*models.Note])(nil)
)
