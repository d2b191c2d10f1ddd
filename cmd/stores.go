package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/organizer/internal/logger"
	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/afero"
)

// appFs is the filesystem every store is opened on.
var appFs afero.Fs = afero.NewOsFs()

// financeReporter backs "finance report". Nil until a report backend exists.
var financeReporter store.Reporter

// dataPath resolves a configured file name against the data directory.
func dataPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(GetConfig().Data.Dir, name)
}

func storeOptions(kind, file, csvFile string) (store.Options, error) {
	ids, err := store.ParseIDStrategy(GetConfig().Store.IDStrategy)
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{
		Fs:      appFs,
		Path:    dataPath(file),
		CSVPath: dataPath(csvFile),
		IDs:     ids,
		Logger:  logger.WithKind(slog.Default(), kind),
	}, nil
}

// GetTaskStore opens the task collection named in the configuration.
func GetTaskStore() (*store.TaskStore, error) {
	data := GetConfig().Data
	opts, err := storeOptions("tasks", data.TasksFile, data.TasksCSV)
	if err != nil {
		return nil, err
	}
	s, err := store.NewTaskStore(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize task store at %s: %w", opts.Path, err)
	}
	return s, nil
}

// GetFinanceStore opens the finance collection named in the configuration.
func GetFinanceStore() (*store.FinanceStore, error) {
	data := GetConfig().Data
	opts, err := storeOptions("finance", data.FinanceFile, data.FinanceCSV)
	if err != nil {
		return nil, err
	}
	s, err := store.NewFinanceStore(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize finance store at %s: %w", opts.Path, err)
	}
	if financeReporter != nil {
		s.WithReporter(financeReporter)
	}
	return s, nil
}

// GetContactStore opens the contact collection named in the configuration.
func GetContactStore() (*store.ContactStore, error) {
	data := GetConfig().Data
	opts, err := storeOptions("contacts", data.ContactsFile, data.ContactsCSV)
	if err != nil {
		return nil, err
	}
	s, err := store.NewContactStore(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize contact store at %s: %w", opts.Path, err)
	}
	return s, nil
}

// GetNoteStore opens the note collection named in the configuration.
func GetNoteStore() (*store.NoteStore, error) {
	data := GetConfig().Data
	opts, err := storeOptions("notes", data.NotesFile, data.NotesCSV)
	if err != nil {
		return nil, err
	}
	s, err := store.NewNoteStore(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize note store at %s: %w", opts.Path, err)
	}
	return s, nil
}

// transferable is the part of a store the backup, restore, export and
// import commands need.
type transferable interface {
	Path() string
	CSVPath() string
	Backup(dest string) error
	Restore(src string) error
	ExportXLSX(path string) (int, error)
}

// kindNames lists the collections accepted by backup and restore.
var kindNames = []string{"tasks", "finance", "contacts", "notes"}

// openKind opens a store by collection name.
func openKind(kind string) (transferable, error) {
	switch strings.ToLower(kind) {
	case "tasks":
		return GetTaskStore()
	case "finance":
		return GetFinanceStore()
	case "contacts":
		return GetContactStore()
	case "notes":
		return GetNoteStore()
	default:
		return nil, fmt.Errorf("unknown collection %q (expected one of %s)", kind, strings.Join(kindNames, ", "))
	}
}
