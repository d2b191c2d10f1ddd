package store

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/josephgoksu/organizer/models"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestContactStore_Search(t *testing.T) {
	_, opts := testOptions(t, "contacts")
	s, err := NewContactStore(opts)
	require.NoError(t, err)

	for _, name := range []string{"Ann Lee", "Anna K", "Bob"} {
		_, err := s.Add(name, "", "")
		require.NoError(t, err)
	}

	found, err := s.Search("ann")
	require.NoError(t, err)
	var names []string
	for _, c := range found {
		names = append(names, c.Name)
	}
	assert.ElementsMatch(t, []string{"Ann Lee", "Anna K"}, names)

	found, err = s.Search("zed")
	require.NoError(t, err)
	assert.NotNil(t, found)
	assert.Empty(t, found)
}

func TestContactStore_SearchByPhone(t *testing.T) {
	_, opts := testOptions(t, "contacts")
	s, err := NewContactStore(opts)
	require.NoError(t, err)

	_, err = s.Add("Carol", "+44 20 7946 0018", "")
	require.NoError(t, err)
	_, err = s.Add("Dave", "555-1234", "")
	require.NoError(t, err)

	found, err := s.Search("7946")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Carol", found[0].Name)
}

func TestContactStore_Edit(t *testing.T) {
	_, opts := testOptions(t, "contacts")
	s, err := NewContactStore(opts)
	require.NoError(t, err)
	_, err = s.Add("Eve", "1", "eve@example.com")
	require.NoError(t, err)

	phone := "2"
	c, err := s.Edit(1, ContactEdit{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "Eve", c.Name)
	assert.Equal(t, "2", c.Phone)
	assert.Equal(t, "eve@example.com", c.Email)

	_, err = s.Edit(5, ContactEdit{Phone: &phone})
	assert.ErrorIs(t, err, ErrNotFound)

	bad := "nope"
	_, err = s.Edit(1, ContactEdit{Email: &bad})
	assert.Error(t, err)
}

func fixedClock(ts ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		t := ts[i]
		if i < len(ts)-1 {
			i++
		}
		return t
	}
}

func TestNoteStore_AddStampsTimestamp(t *testing.T) {
	_, opts := testOptions(t, "notes")
	s, err := NewNoteStore(opts)
	require.NoError(t, err)
	s.WithClock(fixedClock(time.Date(2026, 10, 19, 8, 30, 0, 0, time.Local)))

	n, err := s.Add("Groceries", "eggs")
	require.NoError(t, err)
	assert.Equal(t, "19-10-2026 08:30:00", n.Timestamp)
}

func TestNoteStore_EditContentOnly(t *testing.T) {
	_, opts := testOptions(t, "notes")
	s, err := NewNoteStore(opts)
	require.NoError(t, err)
	s.WithClock(fixedClock(
		time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local),
		time.Date(2026, 1, 2, 10, 0, 0, 0, time.Local),
	))

	created, err := s.Add("Plan", "draft")
	require.NoError(t, err)

	content := "updated"
	edited, err := s.Edit(created.ID, nil, &content)
	require.NoError(t, err)
	assert.Equal(t, "Plan", edited.Title)
	assert.Equal(t, "updated", edited.Content)
	assert.Equal(t, "02-01-2026 10:00:00", edited.Timestamp)

	got, err := s.Details(created.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, got)
}

func TestNoteStore_EditEmptyValuesKeepFields(t *testing.T) {
	_, opts := testOptions(t, "notes")
	s, err := NewNoteStore(opts)
	require.NoError(t, err)
	s.WithClock(fixedClock(
		time.Date(2026, 1, 1, 9, 0, 0, 0, time.Local),
		time.Date(2026, 1, 1, 9, 5, 0, 0, time.Local),
	))

	_, err = s.Add("Title", "Body")
	require.NoError(t, err)

	empty := ""
	edited, err := s.Edit(1, &empty, &empty)
	require.NoError(t, err)
	assert.Equal(t, "Title", edited.Title)
	assert.Equal(t, "Body", edited.Content)
	assert.Equal(t, "01-01-2026 09:05:00", edited.Timestamp)
}

func TestNoteStore_UnknownID(t *testing.T) {
	_, opts := testOptions(t, "notes")
	s, err := NewNoteStore(opts)
	require.NoError(t, err)

	_, err = s.Details(3)
	assert.ErrorIs(t, err, ErrNotFound)

	title := "x"
	_, err = s.Edit(3, &title, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

type stubReporter struct {
	from, to string
	seen     int
}

func (r *stubReporter) Report(records []*models.FinancialRecord, from, to string) (*FinanceReport, error) {
	r.from, r.to, r.seen = from, to, len(records)
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	return &FinanceReport{From: from, To: to, Records: records, Total: total}, nil
}

func TestFinanceStore_ReportUnavailableByDefault(t *testing.T) {
	_, opts := testOptions(t, "finance")
	s, err := NewFinanceStore(opts)
	require.NoError(t, err)

	_, err = s.Report("01-01-2026", "31-01-2026")
	assert.ErrorIs(t, err, ErrReportUnavailable)
}

func TestFinanceStore_ReportDelegatesToReporter(t *testing.T) {
	_, opts := testOptions(t, "finance")
	s, err := NewFinanceStore(opts)
	require.NoError(t, err)

	_, err = s.Add(decimal.NewFromInt(100), "Salary", "01-01-2026", "")
	require.NoError(t, err)
	_, err = s.Add(decimal.RequireFromString("-40.5"), "Food", "02-01-2026", "")
	require.NoError(t, err)

	rep := &stubReporter{}
	report, err := s.WithReporter(rep).Report("01-01-2026", "31-01-2026")
	require.NoError(t, err)
	assert.Equal(t, 2, rep.seen)
	assert.Equal(t, "01-01-2026", rep.from)
	assert.True(t, report.Total.Equal(decimal.RequireFromString("59.5")))
}

func TestFileStore_ExportXLSX(t *testing.T) {
	fs, opts := testOptions(t, "finance")
	s, err := NewFinanceStore(opts)
	require.NoError(t, err)
	_, err = s.Add(decimal.RequireFromString("12.34"), "Books", "03-03-2026", "novel")
	require.NoError(t, err)

	n, err := s.ExportXLSX("/data/finance.xlsx")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := afero.ReadFile(fs, "/data/finance.xlsx")
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = wb.Close() }()

	assert.Equal(t, "finance", wb.GetSheetName(0))
	rows, err := wb.GetRows("finance")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Amount", "Category", "Date", "Description"}, rows[0])
	assert.Equal(t, []string{"1", "12.34", "Books", "03-03-2026", "novel"}, rows[1])
}

func TestParseIDStrategy(t *testing.T) {
	a, err := ParseIDStrategy("")
	require.NoError(t, err)
	assert.IsType(t, LengthPlusOne{}, a)

	a, err = ParseIDStrategy("MAX")
	require.NoError(t, err)
	assert.IsType(t, MaxPlusOne{}, a)

	_, err = ParseIDStrategy("uuid")
	assert.Error(t, err)

	assert.Equal(t, 1, MaxPlusOne{}.Next(nil))
	assert.Equal(t, 8, MaxPlusOne{}.Next([]int{3, 7, 1}))
	assert.Equal(t, 4, LengthPlusOne{}.Next([]int{3, 7, 1}))
}

func TestNoteStore_ImportStampsMissingTimestamp(t *testing.T) {
	_, opts := testOptions(t, "notes")
	s, err := NewNoteStore(opts)
	require.NoError(t, err)
	s.WithClock(fixedClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)))

	_, err = s.ImportCSVFrom(strings.NewReader("ID,Title,Content,Timestamp\n1,t,c,\n2,u,d,01-01-2020 10:00:00\n"))
	require.NoError(t, err)

	n, err := s.Details(1)
	require.NoError(t, err)
	assert.Equal(t, "19-10-2026 09:00:00", n.Timestamp)

	n, err = s.Details(2)
	require.NoError(t, err)
	assert.Equal(t, "01-01-2020 10:00:00", n.Timestamp)
}

func TestNoteStore_LoadStampsMissingTimestamp(t *testing.T) {
	fs, opts := testOptions(t, "notes")
	require.NoError(t, afero.WriteFile(fs, opts.Path, []byte(`[{"id": 1, "title": "old", "content": "x"}]`), 0o644))
	s, err := NewNoteStore(opts)
	require.NoError(t, err)
	s.WithClock(fixedClock(time.Date(2026, 10, 19, 9, 0, 0, 0, time.Local)))

	notes, err := s.Load()
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "19-10-2026 09:00:00", notes[0].Timestamp)
}
