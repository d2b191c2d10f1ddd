package store

import "github.com/josephgoksu/organizer/models"

// ContactStore keeps the contact collection.
type ContactStore struct {
	*FileStore[*models.Contact]
}

// NewContactStore opens the contact collection described by opts.
func NewContactStore(opts Options) (*ContactStore, error) {
	fs, err := NewFileStore[*models.Contact](models.ContactCSV{}, opts)
	if err != nil {
		return nil, err
	}
	return &ContactStore{FileStore: fs}, nil
}

// Add creates a contact. Phone and email may be empty.
func (s *ContactStore) Add(name, phone, email string) (*models.Contact, error) {
	return s.Create(&models.Contact{Name: name, Phone: phone, Email: email})
}

// Search returns every contact whose name contains term (ignoring case) or
// whose phone contains term. The result is empty, not nil, when nothing matches.
func (s *ContactStore) Search(term string) ([]*models.Contact, error) {
	found := []*models.Contact{}
	for c, err := range s.List() {
		if err != nil {
			return nil, err
		}
		if c.Matches(term) {
			found = append(found, c)
		}
	}
	return found, nil
}

// ContactEdit lists the fields to change. Nil fields are left as they are.
type ContactEdit struct {
	Name  *string
	Phone *string
	Email *string
}

// Edit applies the non-nil fields of e to the contact.
func (s *ContactStore) Edit(id int, e ContactEdit) (*models.Contact, error) {
	return s.Update(id, func(c *models.Contact) error {
		if e.Name != nil {
			c.Name = *e.Name
		}
		if e.Phone != nil {
			c.Phone = *e.Phone
		}
		if e.Email != nil {
			c.Email = *e.Email
		}
		return nil
	})
}
