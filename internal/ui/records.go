package ui

import (
	"strconv"

	"github.com/josephgoksu/organizer/models"
)

const maxCellWidth = 40

// TaskTable lays out tasks in storage order.
func TaskTable(tasks []*models.Task) *Table {
	t := &Table{Headers: []string{"ID", "Done", "Priority", "Due", "Title", "Description"}, MaxWidth: maxCellWidth}
	for _, task := range tasks {
		done := " "
		if task.Done {
			done = "✓"
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(task.ID), done, string(task.Priority), task.DueDate, task.Title, task.Description,
		})
	}
	return t
}

// FinanceTable lays out financial records in storage order.
func FinanceTable(records []*models.FinancialRecord) *Table {
	t := &Table{Headers: []string{"ID", "Date", "Amount", "Category", "Description"}, MaxWidth: maxCellWidth}
	for _, r := range records {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.ID), r.Date, r.Amount.StringFixed(2), r.Category, r.Description,
		})
	}
	return t
}

// ContactTable lays out contacts in storage order.
func ContactTable(contacts []*models.Contact) *Table {
	t := &Table{Headers: []string{"ID", "Name", "Phone", "Email"}, MaxWidth: maxCellWidth}
	for _, c := range contacts {
		t.Rows = append(t.Rows, []string{strconv.Itoa(c.ID), c.Name, c.Phone, c.Email})
	}
	return t
}

// NoteTable lays out notes in storage order. Content is clipped; use
// NoteDetails for the full text.
func NoteTable(notes []*models.Note) *Table {
	t := &Table{Headers: []string{"ID", "Updated", "Title", "Content"}, MaxWidth: maxCellWidth}
	for _, n := range notes {
		t.Rows = append(t.Rows, []string{strconv.Itoa(n.ID), n.Timestamp, n.Title, n.Content})
	}
	return t
}

// TaskDetails renders one task as a panel.
func TaskDetails(task *models.Task) string {
	status := StyleWarning.Render("open")
	if task.Done {
		status = StyleSuccess.Render("done")
	}
	body := KeyValues(
		[2]string{"ID", strconv.Itoa(task.ID)},
		[2]string{"Status", status},
		[2]string{"Priority", PriorityStyle(string(task.Priority)).Render(string(task.Priority))},
		[2]string{"Due", task.DueDate},
		[2]string{"Description", task.Description},
	)
	return NewPanel(task.Title, body).Render()
}

// FinanceDetails renders one financial record as a panel.
func FinanceDetails(r *models.FinancialRecord) string {
	body := KeyValues(
		[2]string{"ID", strconv.Itoa(r.ID)},
		[2]string{"Amount", AmountStyle(r.Amount.IsNegative()).Render(r.Amount.StringFixed(2))},
		[2]string{"Date", r.Date},
		[2]string{"Description", r.Description},
	)
	return NewPanel(r.Category, body).Render()
}

// ContactDetails renders one contact as a panel.
func ContactDetails(c *models.Contact) string {
	body := KeyValues(
		[2]string{"ID", strconv.Itoa(c.ID)},
		[2]string{"Phone", c.Phone},
		[2]string{"Email", c.Email},
	)
	return NewPanel(c.Name, body).Render()
}

// NoteDetails renders the full note, content included.
func NoteDetails(n *models.Note) string {
	header := KeyValues(
		[2]string{"ID", strconv.Itoa(n.ID)},
		[2]string{"Updated", n.Timestamp},
	)
	return NewPanel(n.Title, header+"\n\n"+n.Content).WithBorderColor(ColorCyan).Render()
}
