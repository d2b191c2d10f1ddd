package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"path/filepath"
	"reflect"

	"github.com/josephgoksu/organizer/models"
	"github.com/spf13/afero"
)

const (
	tempSuffix        = ".tmp"
	restoreTempSuffix = ".tmp_restore"
)

// Options configures a FileStore.
type Options struct {
	// Fs is the filesystem backing the store. Defaults to the OS filesystem.
	Fs afero.Fs
	// Path is the JSON data file. Required.
	Path string
	// CSVPath is the file used by ExportCSV and ImportCSV.
	CSVPath string
	// IDs assigns IDs to new records. Defaults to LengthPlusOne.
	IDs IDAllocator
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// FileStore implements RecordStore on top of a single JSON file.
//
// Every operation reads the whole file and every mutation rewrites it. There
// is no locking: two processes sharing the same file race and the last
// writer wins.
type FileStore[R models.Record] struct {
	fs      afero.Fs
	path    string
	csvPath string
	ids     IDAllocator
	codec   models.CSVCodec[R]
	log     *slog.Logger
	// fill completes records read from disk or CSV. May be nil.
	fill func(R)
}

// NewFileStore creates a store for one record kind. The data file is not
// touched until the first operation, but its directory is created.
func NewFileStore[R models.Record](codec models.CSVCodec[R], opts Options) (*FileStore[R], error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("data file path is required")
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.IDs == nil {
		opts.IDs = LengthPlusOne{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	dir := filepath.Dir(opts.Path)
	if dir != "." && dir != "" {
		if err := opts.Fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return &FileStore[R]{
		fs:      opts.Fs,
		path:    opts.Path,
		csvPath: opts.CSVPath,
		ids:     opts.IDs,
		codec:   codec,
		log:     opts.Logger.With("file", opts.Path),
	}, nil
}

// Path returns the JSON data file path.
func (s *FileStore[R]) Path() string { return s.path }

// CSVPath returns the CSV file path used by ExportCSV and ImportCSV.
func (s *FileStore[R]) CSVPath() string { return s.csvPath }

// Load reads all records from the data file.
// A missing or empty file yields an empty slice. Anything that is not a JSON
// array of records yields ErrCorrupt.
func (s *FileStore[R]) Load() ([]R, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []R{}, nil
		}
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}
	records, err := s.decode(data)
	if err != nil {
		return nil, err
	}
	s.complete(records)
	return records, nil
}

func (s *FileStore[R]) decode(data []byte) ([]R, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []R{}, nil
	}

	var records []R
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, s.path, err)
	}
	if records == nil {
		// literal "null"
		return nil, fmt.Errorf("%w: %s: expected a JSON array", ErrCorrupt, s.path)
	}
	for i, r := range records {
		if isNilRecord(r) {
			return nil, fmt.Errorf("%w: %s: entry %d is null", ErrCorrupt, s.path, i)
		}
	}
	return records, nil
}

// Save serializes the full collection and replaces the data file.
// The new content is written to a temporary file first and renamed over the
// old one.
func (s *FileStore[R]) Save(records []R) error {
	if records == nil {
		records = []R{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}

	tempFilePath := s.path + tempSuffix
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}
	if err := s.fs.Rename(tempFilePath, s.path); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, s.path, err)
	}

	s.log.Debug("saved records", "count", len(records))
	return nil
}

// Create assigns the next ID to r, validates it and appends it to the collection.
func (s *FileStore[R]) Create(r R) (R, error) {
	var zero R
	records, err := s.Load()
	if err != nil {
		return zero, fmt.Errorf("failed to load records before create: %w", err)
	}

	r.SetRecordID(s.ids.Next(recordIDs(records)))

	if err := models.ValidateStruct(r); err != nil {
		return zero, fmt.Errorf("validation failed for new record: %w", err)
	}

	records = append(records, r)
	if err := s.Save(records); err != nil {
		return zero, fmt.Errorf("failed to save new record: %w", err)
	}

	s.log.Debug("created record", "id", r.RecordID())
	return r, nil
}

// List returns a lazy sequence over a fresh load of the collection.
// A load failure is yielded once with a zero record.
func (s *FileStore[R]) List() iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		records, err := s.Load()
		if err != nil {
			var zero R
			yield(zero, err)
			return
		}
		for _, r := range records {
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Find returns the first record with the given ID.
func (s *FileStore[R]) Find(id int) (R, error) {
	var zero R
	records, err := s.Load()
	if err != nil {
		return zero, err
	}
	if i := indexOf(records, id); i >= 0 {
		return records[i], nil
	}
	return zero, fmt.Errorf("record with ID %d: %w", id, ErrNotFound)
}

// Update applies fn to the first record with the given ID, validates the
// fields fn changed and saves. Untouched fields are not revalidated, so
// records written by older versions can still be updated. Nothing is written
// when the ID is unknown or fn fails.
func (s *FileStore[R]) Update(id int, fn func(R) error) (R, error) {
	var zero R
	records, err := s.Load()
	if err != nil {
		return zero, fmt.Errorf("failed to load records before update: %w", err)
	}

	i := indexOf(records, id)
	if i < 0 {
		s.log.Debug("update skipped, record not found", "id", id)
		return zero, fmt.Errorf("record with ID %d: %w", id, ErrNotFound)
	}

	r := records[i]
	before := snapshot(r)
	if err := fn(r); err != nil {
		return zero, err
	}
	if err := models.ValidateFields(r, changedFields(before, r)...); err != nil {
		return zero, fmt.Errorf("validation failed for updated record: %w", err)
	}

	if err := s.Save(records); err != nil {
		return zero, fmt.Errorf("failed to save updated record: %w", err)
	}
	return r, nil
}

// Delete removes every record with the given ID. Deleting an unknown ID is
// not an error; the collection is rewritten unchanged.
func (s *FileStore[R]) Delete(id int) error {
	records, err := s.Load()
	if err != nil {
		return fmt.Errorf("failed to load records before delete: %w", err)
	}

	kept := make([]R, 0, len(records))
	for _, r := range records {
		if r.RecordID() != id {
			kept = append(kept, r)
		}
	}

	if err := s.Save(kept); err != nil {
		return fmt.Errorf("failed to save after deleting record: %w", err)
	}
	s.log.Debug("deleted record", "id", id, "removed", len(records)-len(kept))
	return nil
}

// DeleteAll replaces the collection with an empty one.
func (s *FileStore[R]) DeleteAll() error {
	if err := s.Save(nil); err != nil {
		return fmt.Errorf("failed to clear data file: %w", err)
	}
	return nil
}

// Replace saves records as the whole collection. Records are stored as
// given; only Create and Update enforce field rules.
func (s *FileStore[R]) Replace(records []R) error {
	for i, r := range records {
		if isNilRecord(r) {
			return fmt.Errorf("record %d is nil", i)
		}
	}
	s.complete(records)
	return s.Save(records)
}

// Backup copies the current data file to destinationPath.
func (s *FileStore[R]) Backup(destinationPath string) error {
	input, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return fmt.Errorf("failed to read source file %s for backup: %w", s.path, err)
	}
	if err := afero.WriteFile(s.fs, destinationPath, input, 0o644); err != nil {
		return fmt.Errorf("failed to write backup file to %s: %w", destinationPath, err)
	}
	return nil
}

// Restore replaces the data file with sourcePath. The source must decode as
// a valid collection; otherwise the current file is left untouched.
func (s *FileStore[R]) Restore(sourcePath string) error {
	sourceData, err := afero.ReadFile(s.fs, sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read source backup file %s: %w", sourcePath, err)
	}
	if _, err := s.decode(sourceData); err != nil {
		return fmt.Errorf("refusing to restore from %s: %w", sourcePath, err)
	}

	tempFilePath := s.path + restoreTempSuffix
	defer func() { _ = s.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(s.fs, tempFilePath, sourceData, 0o644); err != nil {
		return fmt.Errorf("failed to write restored data to temporary file %s: %w", tempFilePath, err)
	}
	if err := s.fs.Rename(tempFilePath, s.path); err != nil {
		return fmt.Errorf("failed to replace file %s with restored data from %s: %w", s.path, sourcePath, err)
	}
	return nil
}

func (s *FileStore[R]) complete(records []R) {
	if s.fill == nil {
		return
	}
	for _, r := range records {
		s.fill(r)
	}
}

// snapshot copies the struct behind r so later changes can be detected.
func snapshot[R models.Record](r R) reflect.Value {
	v := reflect.Indirect(reflect.ValueOf(r))
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}
	c := reflect.New(v.Type()).Elem()
	c.Set(v)
	return c
}

// changedFields names the exported top-level fields of r that differ from before.
func changedFields[R models.Record](before reflect.Value, r R) []string {
	after := reflect.Indirect(reflect.ValueOf(r))
	if !before.IsValid() || after.Kind() != reflect.Struct {
		return nil
	}
	var names []string
	t := after.Type()
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if !reflect.DeepEqual(before.Field(i).Interface(), after.Field(i).Interface()) {
			names = append(names, f.Name)
		}
	}
	return names
}

func recordIDs[R models.Record](records []R) []int {
	ids := make([]int, len(records))
	for i, r := range records {
		ids[i] = r.RecordID()
	}
	return ids
}

func indexOf[R models.Record](records []R, id int) int {
	for i, r := range records {
		if r.RecordID() == id {
			return i
		}
	}
	return -1
}

func isNilRecord[R models.Record](r R) bool {
	v := reflect.ValueOf(r)
	if !v.IsValid() {
		return true
	}
	return v.Kind() == reflect.Pointer && v.IsNil()
}
