package store

import "github.com/josephgoksu/organizer/models"

// TaskStore keeps the task collection.
type TaskStore struct {
	*FileStore[*models.Task]
}

// NewTaskStore opens the task collection described by opts.
func NewTaskStore(opts Options) (*TaskStore, error) {
	fs, err := NewFileStore[*models.Task](models.TaskCSV{}, opts)
	if err != nil {
		return nil, err
	}
	return &TaskStore{FileStore: fs}, nil
}

// Add creates a pending task. An empty priority means Medium.
func (s *TaskStore) Add(title, description, priority, dueDate string) (*models.Task, error) {
	return s.Create(models.NewTask(title, description, priority, dueDate))
}

// MarkDone sets done=true on the task. Unknown IDs return ErrNotFound.
func (s *TaskStore) MarkDone(id int) (*models.Task, error) {
	return s.Update(id, func(t *models.Task) error {
		t.Done = true
		return nil
	})
}

// TaskEdit lists the fields to change. Nil fields are left as they are.
type TaskEdit struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
}

// Edit applies the non-nil fields of e to the task.
func (s *TaskStore) Edit(id int, e TaskEdit) (*models.Task, error) {
	return s.Update(id, func(t *models.Task) error {
		if e.Title != nil {
			t.Title = *e.Title
		}
		if e.Description != nil {
			t.Description = *e.Description
		}
		if e.Priority != nil {
			t.Priority = models.NormalizePriority(*e.Priority)
		}
		if e.DueDate != nil {
			t.DueDate = *e.DueDate
		}
		return nil
	})
}
