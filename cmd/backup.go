package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:       "backup <collection> <destination>",
	Short:     "Copy a collection's data file",
	Long:      `Copy the JSON data file of a collection (tasks, finance, contacts or notes) to destination.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: kindNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openKind(args[0])
		if err != nil {
			return err
		}
		if err := s.Backup(args[1]); err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), map[string]any{"collection": strings.ToLower(args[0]), "backup": args[1]}, "Backed up %s to %s.", s.Path(), args[1])
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <collection> <source>",
	Short: "Replace a collection's data file with a backup",
	Long: `Replace the JSON data file of a collection with source. The backup must
be a readable collection; otherwise the current file is left alone.`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: kindNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openKind(args[0])
		if err != nil {
			return err
		}
		if !fileExists(args[1]) {
			return fmt.Errorf("backup file %s does not exist", args[1])
		}
		if err := s.Restore(args[1]); err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), map[string]any{"collection": strings.ToLower(args[0]), "restored": args[1]}, "Restored %s from %s.", s.Path(), args[1])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]string{"version": GetVersion()})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "organizer %s\n", GetVersion())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd, restoreCmd, versionCmd)
}
