package models

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// Task is a to-do item. Done starts false.
type Task struct {
	ID          int          `json:"id"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Done        bool         `json:"done"`
	Priority    TaskPriority `json:"priority" validate:"required,oneof=High Medium Low"`
	DueDate     string       `json:"due_date"`
}

func (t Task) RecordID() int { return t.ID }

func (t *Task) SetRecordID(id int) { t.ID = id }

// NewTask builds a pending task with a normalized priority.
func NewTask(title, description, priority, dueDate string) *Task {
	return &Task{
		Title:       title,
		Description: description,
		Priority:    NormalizePriority(priority),
		DueDate:     dueDate,
	}
}

// NormalizePriority title-cases user input ("high" -> "High").
// Empty input falls back to Medium.
func NormalizePriority(p string) TaskPriority {
	p = strings.TrimSpace(p)
	if p == "" {
		return PriorityMedium
	}
	return TaskPriority(cases.Title(language.English).String(p))
}

// TaskCSV is the CSV codec for tasks.
type TaskCSV struct{}

var taskHeader = []string{"ID", "Title", "Description", "Done", "Priority", "Due Date"}

func (TaskCSV) Header() []string { return taskHeader }

func (TaskCSV) Row(t *Task) []string {
	return []string{
		strconv.Itoa(t.ID),
		t.Title,
		t.Description,
		FormatBool(t.Done),
		string(t.Priority),
		t.DueDate,
	}
}

func (TaskCSV) FromRow(row map[string]string) (*Task, error) {
	id, err := parseID(row)
	if err != nil {
		return nil, err
	}
	cols, err := columns(row, "Title", "Description", "Done", "Priority", "Due Date")
	if err != nil {
		return nil, err
	}
	return &Task{
		ID:          id,
		Title:       cols[0],
		Description: cols[1],
		Done:        ParseBool(cols[2]),
		Priority:    TaskPriority(cols[3]),
		DueDate:     cols[4],
	}, nil
}
