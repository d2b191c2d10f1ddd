package store

import (
	"github.com/josephgoksu/organizer/models"
	"github.com/shopspring/decimal"
)

// FinanceReport is the result of a Reporter run.
type FinanceReport struct {
	From    string                    `json:"from"`
	To      string                    `json:"to"`
	Records []*models.FinancialRecord `json:"records"`
	Total   decimal.Decimal           `json:"total"`
}

// Reporter builds a report over the finance collection for a date range.
// No implementation ships with the store; callers plug one in with
// FinanceStore.WithReporter.
type Reporter interface {
	Report(records []*models.FinancialRecord, from, to string) (*FinanceReport, error)
}

// FinanceStore keeps the financial record collection.
type FinanceStore struct {
	*FileStore[*models.FinancialRecord]
	reporter Reporter
}

// NewFinanceStore opens the finance collection described by opts.
func NewFinanceStore(opts Options) (*FinanceStore, error) {
	fs, err := NewFileStore[*models.FinancialRecord](models.FinanceCSV{}, opts)
	if err != nil {
		return nil, err
	}
	return &FinanceStore{FileStore: fs}, nil
}

// WithReporter sets the Reporter used by Report.
func (s *FinanceStore) WithReporter(r Reporter) *FinanceStore {
	s.reporter = r
	return s
}

// Add records a money movement.
func (s *FinanceStore) Add(amount decimal.Decimal, category, date, description string) (*models.FinancialRecord, error) {
	return s.Create(&models.FinancialRecord{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
	})
}

// Report runs the configured Reporter over the full collection.
// Without one it returns ErrReportUnavailable.
func (s *FinanceStore) Report(from, to string) (*FinanceReport, error) {
	if s.reporter == nil {
		return nil, ErrReportUnavailable
	}
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	return s.reporter.Report(records, from, to)
}
