package models

import (
	"strconv"
	"strings"
)

// Contact is an address book entry. Phone and email are optional.
type Contact struct {
	ID    int    `json:"id"`
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (c Contact) RecordID() int { return c.ID }

func (c *Contact) SetRecordID(id int) { c.ID = id }

// Matches reports whether term is a case-insensitive substring of the name
// or a plain substring of the phone number.
func (c Contact) Matches(term string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(term)) ||
		strings.Contains(c.Phone, term)
}

// ContactCSV is the CSV codec for contacts.
type ContactCSV struct{}

var contactHeader = []string{"ID", "Name", "Phone", "Email"}

func (ContactCSV) Header() []string { return contactHeader }

func (ContactCSV) Row(c *Contact) []string {
	return []string{strconv.Itoa(c.ID), c.Name, c.Phone, c.Email}
}

func (ContactCSV) FromRow(row map[string]string) (*Contact, error) {
	id, err := parseID(row)
	if err != nil {
		return nil, err
	}
	cols, err := columns(row, "Name", "Phone", "Email")
	if err != nil {
		return nil, err
	}
	return &Contact{ID: id, Name: cols[0], Phone: cols[1], Email: cols[2]}, nil
}
