package cmd

import (
	"fmt"

	"github.com/josephgoksu/organizer/internal/ui"
	"github.com/josephgoksu/organizer/models"
	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/cobra"
)

// contactsCmd represents the contacts command
var contactsCmd = &cobra.Command{
	Use:     "contacts",
	Aliases: []string{"contact", "c"},
	Short:   "Manage your contacts",
	Long: `Keep names, phone numbers and email addresses.

Examples:
  organizer contacts add "Ann Lee" --phone "+1 555 0100" --email ann@example.com
  organizer contacts search ann`,
}

func contactFileStore() (*store.FileStore[*models.Contact], error) {
	s, err := GetContactStore()
	if err != nil {
		return nil, err
	}
	return s.FileStore, nil
}

var contactsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a contact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")

		s, err := GetContactStore()
		if err != nil {
			return err
		}
		c, err := s.Add(args[0], phone, email)
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), c, "Added contact %d: %s", c.ID, c.Name)
	},
}

var contactsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your contacts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetContactStore()
		if err != nil {
			return err
		}
		contacts, err := s.Load()
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), "contacts", contacts, ui.ContactTable)
	},
}

var contactsSearchCmd = &cobra.Command{
	Use:     "search <term>",
	Aliases: []string{"find"},
	Short:   "Find contacts by name or phone",
	Long:    `Find contacts whose name contains the term (ignoring case) or whose phone number contains it.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetContactStore()
		if err != nil {
			return err
		}
		found, err := s.Search(args[0])
		if err != nil {
			return err
		}
		if !isJSON() && len(found) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No contacts match %q.\n", args[0])
			return nil
		}
		return printRecords(cmd.OutOrStdout(), "contacts", found, ui.ContactTable)
	},
}

var contactsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a contact's fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		edit := store.ContactEdit{
			Name:  optionalString(cmd, "name"),
			Phone: optionalString(cmd, "phone"),
			Email: optionalString(cmd, "email"),
		}
		if edit == (store.ContactEdit{}) {
			return fmt.Errorf("nothing to change: pass at least one of --name, --phone or --email")
		}

		s, err := GetContactStore()
		if err != nil {
			return err
		}
		c, err := s.Edit(id, edit)
		if reportNotFound(cmd, err, "contact", id) {
			return nil
		}
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), c, "Updated contact %d.", c.ID)
	},
}

func init() {
	rootCmd.AddCommand(contactsCmd)

	contactsAddCmd.Flags().String("phone", "", "phone number")
	contactsAddCmd.Flags().String("email", "", "email address")

	contactsEditCmd.Flags().String("name", "", "new name")
	contactsEditCmd.Flags().String("phone", "", "new phone number")
	contactsEditCmd.Flags().String("email", "", "new email address")

	contactsCmd.AddCommand(
		contactsAddCmd,
		contactsListCmd,
		newShowCmd("contacts", contactFileStore, ui.ContactDetails),
		contactsSearchCmd,
		contactsEditCmd,
		newDeleteCmd("contacts", contactFileStore),
		newExportCmd("contacts", contactFileStore),
		newImportCmd("contacts", contactFileStore),
	)
}
