package cmd

import (
	"fmt"

	"github.com/josephgoksu/organizer/internal/ui"
	"github.com/josephgoksu/organizer/models"
	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/cobra"
)

// notesCmd represents the notes command
var notesCmd = &cobra.Command{
	Use:     "notes",
	Aliases: []string{"note", "n"},
	Short:   "Write and read notes",
	Long: `Keep titled notes. Every note carries the time it was last written.

Examples:
  organizer notes add "Groceries" "eggs, milk"
  organizer notes show 1
  organizer notes edit 1 --content "eggs, milk, bread"`,
}

func noteFileStore() (*store.FileStore[*models.Note], error) {
	s, err := GetNoteStore()
	if err != nil {
		return nil, err
	}
	return s.FileStore, nil
}

var notesAddCmd = &cobra.Command{
	Use:   "add <title> [content]",
	Short: "Add a note",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		content := ""
		if len(args) > 1 {
			content = args[1]
		}

		s, err := GetNoteStore()
		if err != nil {
			return err
		}
		n, err := s.Add(args[0], content)
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), n, "Added note %d: %s", n.ID, ui.Truncate(n.Title, 60))
	},
}

var notesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your notes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetNoteStore()
		if err != nil {
			return err
		}
		notes, err := s.Load()
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), "notes", notes, ui.NoteTable)
	},
}

var notesShowCmd = &cobra.Command{
	Use:     "show <id>",
	Aliases: []string{"view"},
	Short:   "Show a note in full",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		s, err := GetNoteStore()
		if err != nil {
			return err
		}
		n, err := s.Details(id)
		if reportNotFound(cmd, err, "note", id) {
			return nil
		}
		if err != nil {
			return err
		}
		return printRecord(cmd.OutOrStdout(), n, ui.NoteDetails)
	},
}

var notesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a note's title or content",
	Long:  `Change the title and/or content of a note. Empty values keep the current text. The note's timestamp is refreshed.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		title := optionalString(cmd, "title")
		content := optionalString(cmd, "content")
		if title == nil && content == nil {
			return fmt.Errorf("nothing to change: pass --title and/or --content")
		}

		s, err := GetNoteStore()
		if err != nil {
			return err
		}
		n, err := s.Edit(id, title, content)
		if reportNotFound(cmd, err, "note", id) {
			return nil
		}
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), n, "Updated note %d at %s.", n.ID, n.Timestamp)
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)

	notesEditCmd.Flags().String("title", "", "new title (empty keeps the current one)")
	notesEditCmd.Flags().String("content", "", "new content (empty keeps the current one)")

	notesCmd.AddCommand(
		notesAddCmd,
		notesListCmd,
		notesShowCmd,
		notesEditCmd,
		newDeleteCmd("notes", noteFileStore),
		newExportCmd("notes", noteFileStore),
		newImportCmd("notes", noteFileStore),
	)
}
