package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/organizer/internal/ui"
	"github.com/josephgoksu/organizer/models"
	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// printRecords writes a collection as JSON or as a table.
func printRecords[R models.Record](w io.Writer, kind string, records []R, table func([]R) *ui.Table) error {
	if isJSON() {
		return printJSON(w, records)
	}
	if len(records) == 0 {
		fmt.Fprintf(w, "No %s found.\n", kind)
		return nil
	}
	fmt.Fprint(w, table(records).Render())
	fmt.Fprintf(w, "%s\n", ui.StyleSubtle.Render(fmt.Sprintf("%d %s", len(records), kind)))
	return nil
}

// printRecord writes one record as JSON or through its detail renderer.
func printRecord[R models.Record](w io.Writer, r R, details func(R) string) error {
	if isJSON() {
		return printJSON(w, r)
	}
	fmt.Fprintln(w, details(r))
	return nil
}

// printDone confirms a mutation. JSON mode prints the record instead.
func printDone(w io.Writer, record any, format string, args ...any) error {
	if isJSON() {
		return printJSON(w, record)
	}
	fmt.Fprintf(w, "%s %s\n", ui.Icon("✓", ui.StyleSuccess), fmt.Sprintf(format, args...))
	return nil
}

// newShowCmd builds "<kind> show <id>".
func newShowCmd[R models.Record](kind string, open func() (*store.FileStore[R], error), details func(R) string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: fmt.Sprintf("Show one of your %s", kind),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			r, err := s.Find(id)
			if reportNotFound(cmd, err, singular(kind), id) {
				return nil
			}
			if err != nil {
				return err
			}
			return printRecord(cmd.OutOrStdout(), r, details)
		},
	}
}

// newDeleteCmd builds "<kind> delete <id>". Unknown IDs are not an error.
func newDeleteCmd[R models.Record](kind string, open func() (*store.FileStore[R], error)) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   fmt.Sprintf("Delete one of your %s", kind),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			s, err := open()
			if err != nil {
				return err
			}
			if err := s.Delete(id); err != nil {
				return err
			}
			return printDone(cmd.OutOrStdout(), map[string]any{"deleted": id}, "Deleted %s %d.", singular(kind), id)
		},
	}
}

// newExportCmd builds "<kind> export".
func newExportCmd[R models.Record](kind string, open func() (*store.FileStore[R], error)) *cobra.Command {
	var format, output string
	c := &cobra.Command{
		Use:   "export",
		Short: fmt.Sprintf("Export your %s to CSV or XLSX", kind),
		Long: fmt.Sprintf(`Export every %s to a CSV file (the configured CSV path by default) or
to an Excel workbook.`, singular(kind)),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}

			var n int
			path := output
			switch strings.ToLower(format) {
			case "csv":
				if path == "" {
					path = s.CSVPath()
				}
				n, err = s.ExportCSVFile(path)
			case "xlsx":
				if path == "" {
					path = strings.TrimSuffix(s.Path(), filepath.Ext(s.Path())) + ".xlsx"
				}
				n, err = s.ExportXLSX(path)
			default:
				return fmt.Errorf("unknown export format %q (expected csv or xlsx)", format)
			}
			if err != nil {
				return err
			}
			return printDone(cmd.OutOrStdout(), map[string]any{"exported": n, "path": path}, "Exported %d %s to %s.", n, kind, path)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "csv", "export format: csv or xlsx")
	c.Flags().StringVarP(&output, "output", "o", "", "destination file")
	return c
}

// newImportCmd builds "<kind> import". Import replaces the whole collection.
func newImportCmd[R models.Record](kind string, open func() (*store.FileStore[R], error)) *cobra.Command {
	var input string
	c := &cobra.Command{
		Use:   "import",
		Short: fmt.Sprintf("Replace your %s with the contents of a CSV file", kind),
		Long: fmt.Sprintf(`Replace every %s with the rows of a CSV file (the configured CSV path
by default). Rows are matched to columns by header name. If any row is
malformed nothing is changed.`, singular(kind)),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			path := input
			if path == "" {
				path = s.CSVPath()
			}
			f, err := appFs.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open CSV file %s: %w", path, err)
			}
			defer func() { _ = f.Close() }()

			n, err := s.ImportCSVFrom(f)
			if err != nil {
				return err
			}
			return printDone(cmd.OutOrStdout(), map[string]any{"imported": n, "path": path}, "Imported %d %s from %s.", n, kind, path)
		},
	}
	c.Flags().StringVarP(&input, "input", "i", "", "CSV file to read")
	return c
}

// singular turns a collection name into the word for one record.
func singular(kind string) string {
	switch kind {
	case "finance":
		return "financial record"
	default:
		return strings.TrimSuffix(kind, "s")
	}
}

// fileExists reports whether path exists on the application filesystem.
func fileExists(path string) bool {
	ok, err := afero.Exists(appFs, path)
	return err == nil && ok
}
