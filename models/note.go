package models

import (
	"strconv"
	"time"
)

// TimestampLayout is the note timestamp format (DD-MM-YYYY HH:MM:SS).
const TimestampLayout = "02-01-2006 15:04:05"

// Note is a free-form text entry. Timestamp is refreshed on every edit.
type Note struct {
	ID        int    `json:"id"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

func (n Note) RecordID() int { return n.ID }

func (n *Note) SetRecordID(id int) { n.ID = id }

// Touch sets the timestamp to now.
func (n *Note) Touch(now time.Time) {
	n.Timestamp = now.Format(TimestampLayout)
}

// NoteCSV is the CSV codec for notes.
type NoteCSV struct{}

var noteHeader = []string{"ID", "Title", "Content", "Timestamp"}

func (NoteCSV) Header() []string { return noteHeader }

func (NoteCSV) Row(n *Note) []string {
	return []string{strconv.Itoa(n.ID), n.Title, n.Content, n.Timestamp}
}

func (NoteCSV) FromRow(row map[string]string) (*Note, error) {
	id, err := parseID(row)
	if err != nil {
		return nil, err
	}
	cols, err := columns(row, "Title", "Content", "Timestamp")
	if err != nil {
		return nil, err
	}
	return &Note{ID: id, Title: cols[0], Content: cols[1], Timestamp: cols[2]}, nil
}
