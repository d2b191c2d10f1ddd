package store

import (
	"strings"
	"testing"

	"github.com/josephgoksu/organizer/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskStore_CSVRoundTrip(t *testing.T) {
	fs, s := setupTaskStore(t)
	_, err := s.Add("Alpha", "first, with comma", "High", "01-01-2026")
	require.NoError(t, err)
	_, err = s.Add("Beta", "multi\nline", "", "")
	require.NoError(t, err)
	_, err = s.MarkDone(2)
	require.NoError(t, err)

	before, err := s.Load()
	require.NoError(t, err)

	n, err := s.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	exists, err := afero.Exists(fs, s.CSVPath())
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, s.DeleteAll())

	n, err = s.ImportCSV()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	after, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTaskStore_ImportBooleanDecoding(t *testing.T) {
	_, s := setupTaskStore(t)
	csvText := "ID,Title,Description,Done,Priority,Due Date\n" +
		"1,a,,True,Medium,\n" +
		"2,b,,true,Medium,\n" +
		"3,c,,TRUE,Medium,\n" +
		"4,d,,False,Medium,\n" +
		"5,e,,yes,Medium,\n" +
		"6,f,,1,Medium,\n" +
		"7,g,,,Medium,\n"

	n, err := s.ImportCSVFrom(strings.NewReader(csvText))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	want := map[int]bool{1: true, 2: true, 3: true, 4: false, 5: false, 6: false, 7: false}
	for task, err := range s.List() {
		require.NoError(t, err)
		assert.Equal(t, want[task.ID], task.Done, "task %d", task.ID)
	}
}

func TestTaskStore_ImportReplacesCollection(t *testing.T) {
	_, s := setupTaskStore(t)
	for _, title := range []string{"old1", "old2", "old3"} {
		_, err := s.Add(title, "", "", "")
		require.NoError(t, err)
	}

	csvText := "ID,Title,Description,Done,Priority,Due Date\n10,new,,False,Low,\n"
	_, err := s.ImportCSVFrom(strings.NewReader(csvText))
	require.NoError(t, err)

	tasks, err := s.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, 10, tasks[0].ID)
	assert.Equal(t, "new", tasks[0].Title)
}

func TestTaskStore_ImportHandlesBOMAndColumnOrder(t *testing.T) {
	_, s := setupTaskStore(t)
	csvText := "\ufeffDue Date,Priority,Done,Description,Title,ID\n05-05-2026,High,true,desc,Title,4\n"

	_, err := s.ImportCSVFrom(strings.NewReader(csvText))
	require.NoError(t, err)

	task, err := s.Find(4)
	require.NoError(t, err)
	assert.Equal(t, &models.Task{ID: 4, Title: "Title", Description: "desc", Done: true, Priority: models.PriorityHigh, DueDate: "05-05-2026"}, task)
}

func TestTaskStore_ImportEmptyInputClearsCollection(t *testing.T) {
	_, s := setupTaskStore(t)
	_, err := s.Add("A", "", "", "")
	require.NoError(t, err)

	n, err := s.ImportCSVFrom(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, n)

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestImport_MalformedDataAbortsAndKeepsFile(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"non-numeric id", "ID,Amount,Category,Date,Description\nx,1.00,Food,,\n"},
		{"non-numeric amount", "ID,Amount,Category,Date,Description\n1,abc,Food,,\n"},
		{"missing column", "ID,Amount,Category,Date\n1,2.00,Food,\n"},
		{"ragged row", "ID,Amount,Category,Date,Description\n1,2.00,Food\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs, opts := testOptions(t, "finance")
			s, err := NewFinanceStore(opts)
			require.NoError(t, err)
			_, err = s.Add(decimal.NewFromInt(5), "Salary", "", "")
			require.NoError(t, err)
			before, err := afero.ReadFile(fs, opts.Path)
			require.NoError(t, err)

			_, err = s.ImportCSVFrom(strings.NewReader(tt.csv))
			assert.ErrorIs(t, err, ErrMalformedImport)

			after, err := afero.ReadFile(fs, opts.Path)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestImportCSV_MissingFileFails(t *testing.T) {
	_, s := setupTaskStore(t)
	_, err := s.ImportCSV()
	assert.Error(t, err)
}

func TestFinanceStore_CSVRoundTrip(t *testing.T) {
	_, opts := testOptions(t, "finance")
	s, err := NewFinanceStore(opts)
	require.NoError(t, err)

	_, err = s.Add(decimal.RequireFromString("1200.50"), "Salary", "01-10-2026", "October")
	require.NoError(t, err)
	_, err = s.Add(decimal.RequireFromString("-35"), "Transport", "02-10-2026", "")
	require.NoError(t, err)

	before, err := s.Load()
	require.NoError(t, err)

	_, err = s.ExportCSV()
	require.NoError(t, err)
	require.NoError(t, s.DeleteAll())
	_, err = s.ImportCSV()
	require.NoError(t, err)

	after, err := s.Load()
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.True(t, before[i].Amount.Equal(after[i].Amount), "amount %s != %s", before[i].Amount, after[i].Amount)
		assert.Equal(t, before[i].Category, after[i].Category)
		assert.Equal(t, before[i].Date, after[i].Date)
		assert.Equal(t, before[i].Description, after[i].Description)
	}
}

func TestContactAndNoteStores_CSVRoundTrip(t *testing.T) {
	_, copts := testOptions(t, "contacts")
	contacts, err := NewContactStore(copts)
	require.NoError(t, err)
	_, err = contacts.Add("Ann Lee", "+1 555 0100", "ann@example.com")
	require.NoError(t, err)
	_, err = contacts.Add("Bob", "", "")
	require.NoError(t, err)

	cBefore, err := contacts.Load()
	require.NoError(t, err)
	_, err = contacts.ExportCSV()
	require.NoError(t, err)
	_, err = contacts.ImportCSV()
	require.NoError(t, err)
	cAfter, err := contacts.Load()
	require.NoError(t, err)
	assert.Equal(t, cBefore, cAfter)

	_, nopts := testOptions(t, "notes")
	notes, err := NewNoteStore(nopts)
	require.NoError(t, err)
	_, err = notes.Add("Idea", "Ship it, then \"iterate\"")
	require.NoError(t, err)

	nBefore, err := notes.Load()
	require.NoError(t, err)
	_, err = notes.ExportCSV()
	require.NoError(t, err)
	_, err = notes.ImportCSV()
	require.NoError(t, err)
	nAfter, err := notes.Load()
	require.NoError(t, err)
	assert.Equal(t, nBefore, nAfter)
}

func TestTaskStore_CSVRoundTripKeepsLegacyRecords(t *testing.T) {
	fs, s := setupTaskStore(t)
	require.NoError(t, afero.WriteFile(fs, s.Path(), []byte(legacyTasksJSON), 0o644))

	before, err := s.Load()
	require.NoError(t, err)

	_, err = s.ExportCSV()
	require.NoError(t, err)
	n, err := s.ImportCSV()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	after, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestContactStore_CSVRoundTripKeepsFreeFormEmail(t *testing.T) {
	fs, opts := testOptions(t, "contacts")
	require.NoError(t, afero.WriteFile(fs, opts.Path, []byte(`[{"id": 1, "name": "Bob", "phone": "", "email": "bob at home"}]`), 0o644))
	s, err := NewContactStore(opts)
	require.NoError(t, err)

	_, err = s.ExportCSV()
	require.NoError(t, err)
	_, err = s.ImportCSV()
	require.NoError(t, err)

	c, err := s.Find(1)
	require.NoError(t, err)
	assert.Equal(t, "bob at home", c.Email)
}

func TestExportCSV_LoadFailureKeepsExistingFile(t *testing.T) {
	fs, s := setupTaskStore(t)
	previous := "ID,Title,Description,Done,Priority,Due Date\n1,Old,,False,Low,\n"
	require.NoError(t, afero.WriteFile(fs, s.CSVPath(), []byte(previous), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/data/other.csv", []byte(previous), 0o644))
	require.NoError(t, afero.WriteFile(fs, s.Path(), []byte("{not json"), 0o644))

	_, err := s.ExportCSV()
	assert.ErrorIs(t, err, ErrCorrupt)
	_, err = s.ExportCSVFile("/data/other.csv")
	assert.ErrorIs(t, err, ErrCorrupt)

	for _, path := range []string{s.CSVPath(), "/data/other.csv"} {
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.Equal(t, previous, string(data), path)
	}
}
