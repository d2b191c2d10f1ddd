package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are written as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// FinancialRecord is a signed money movement. Negative amounts are outgoing.
type FinancialRecord struct {
	ID          int             `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" validate:"required"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
}

func (f FinancialRecord) RecordID() int { return f.ID }

func (f *FinancialRecord) SetRecordID(id int) { f.ID = id }

// ParseAmount parses a user-supplied amount. Both "12.50" and "12,50" are accepted.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return amount, nil
}

// FinanceCSV is the CSV codec for financial records.
type FinanceCSV struct{}

var financeHeader = []string{"ID", "Amount", "Category", "Date", "Description"}

func (FinanceCSV) Header() []string { return financeHeader }

func (FinanceCSV) Row(f *FinancialRecord) []string {
	return []string{
		strconv.Itoa(f.ID),
		f.Amount.String(),
		f.Category,
		f.Date,
		f.Description,
	}
}

func (FinanceCSV) FromRow(row map[string]string) (*FinancialRecord, error) {
	id, err := parseID(row)
	if err != nil {
		return nil, err
	}
	cols, err := columns(row, "Amount", "Category", "Date", "Description")
	if err != nil {
		return nil, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(cols[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", cols[0], err)
	}
	return &FinancialRecord{
		ID:          id,
		Amount:      amount,
		Category:    cols[1],
		Date:        cols[2],
		Description: cols[3],
	}, nil
}
