/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool        `mapstructure:"verbose" yaml:"verbose,omitempty"`
	JSON    bool        `mapstructure:"json" yaml:"json,omitempty"`
	Config  string      `mapstructure:"config" yaml:"-"`
	Data    DataConfig  `mapstructure:"data" yaml:"data" validate:"required"`
	Store   StoreConfig `mapstructure:"store" yaml:"store"`
}

// DataConfig holds the location of every record file.
// File names are relative to Dir unless absolute.
type DataConfig struct {
	Dir          string `mapstructure:"dir" yaml:"dir" validate:"required"`
	TasksFile    string `mapstructure:"tasksFile" yaml:"tasksFile" validate:"required"`
	TasksCSV     string `mapstructure:"tasksCsv" yaml:"tasksCsv" validate:"required"`
	FinanceFile  string `mapstructure:"financeFile" yaml:"financeFile" validate:"required"`
	FinanceCSV   string `mapstructure:"financeCsv" yaml:"financeCsv" validate:"required"`
	ContactsFile string `mapstructure:"contactsFile" yaml:"contactsFile" validate:"required"`
	ContactsCSV  string `mapstructure:"contactsCsv" yaml:"contactsCsv" validate:"required"`
	NotesFile    string `mapstructure:"notesFile" yaml:"notesFile" validate:"required"`
	NotesCSV     string `mapstructure:"notesCsv" yaml:"notesCsv" validate:"required"`
}

// StoreConfig holds record store behaviour.
type StoreConfig struct {
	// IDStrategy selects how new record IDs are assigned: "length" (count+1)
	// or "max" (highest existing ID + 1).
	IDStrategy string `mapstructure:"idStrategy" yaml:"idStrategy" validate:"omitempty,oneof=length max"`
}
