package store

import "errors"

var (
	// ErrNotFound is returned when no record has the requested ID.
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt is returned when a backing file exists but does not hold a JSON array of records.
	ErrCorrupt = errors.New("corrupt data file")
	// ErrMalformedImport is returned when a CSV row cannot be turned into a record.
	ErrMalformedImport = errors.New("malformed import data")
	// ErrReportUnavailable is returned by FinanceStore.Report when no Reporter is configured.
	ErrReportUnavailable = errors.New("finance report is not available")
)
