package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/josephgoksu/organizer/internal/ui"
	"github.com/josephgoksu/organizer/models"
	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/cobra"
)

// financeCmd represents the finance command
var financeCmd = &cobra.Command{
	Use:     "finance",
	Aliases: []string{"money", "f"},
	Short:   "Track income and expenses",
	Long: `Record money movements. Positive amounts are income, negative amounts
are expenses.

Examples:
  organizer finance add 1200.50 Salary --date 01-10-2026
  organizer finance add -- -35,90 Groceries
  organizer finance list`,
}

// now is the clock used for default dates.
var now = time.Now

func financeFileStore() (*store.FileStore[*models.FinancialRecord], error) {
	s, err := GetFinanceStore()
	if err != nil {
		return nil, err
	}
	return s.FileStore, nil
}

var financeAddCmd = &cobra.Command{
	Use:   "add <amount> <category>",
	Short: "Record a money movement",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := models.ParseAmount(args[0])
		if err != nil {
			return err
		}
		date, _ := cmd.Flags().GetString("date")
		if date == "" {
			date = now().Format(models.DateLayout)
		}
		description, _ := cmd.Flags().GetString("description")

		s, err := GetFinanceStore()
		if err != nil {
			return err
		}
		rec, err := s.Add(amount, args[1], date, description)
		if err != nil {
			return err
		}
		return printDone(cmd.OutOrStdout(), rec, "Recorded %s in %s (ID %d).", rec.Amount.StringFixed(2), rec.Category, rec.ID)
	},
}

var financeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your financial records",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := GetFinanceStore()
		if err != nil {
			return err
		}
		records, err := s.Load()
		if err != nil {
			return err
		}
		return printRecords(cmd.OutOrStdout(), "financial records", records, ui.FinanceTable)
	},
}

var financeReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize money movements over a date range",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")

		s, err := GetFinanceStore()
		if err != nil {
			return err
		}
		report, err := s.Report(from, to)
		if errors.Is(err, store.ErrReportUnavailable) {
			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]any{"error": "report_unavailable"})
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Financial reports are not available yet.")
			return nil
		}
		if err != nil {
			return err
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), report)
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.FinanceTable(report.Records).Render())
		fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", report.Total.StringFixed(2))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(financeCmd)

	financeAddCmd.Flags().String("date", "", "date of the movement (DD-MM-YYYY, default today)")
	financeAddCmd.Flags().StringP("description", "d", "", "free-text description")

	financeReportCmd.Flags().String("from", "", "first day of the range (DD-MM-YYYY)")
	financeReportCmd.Flags().String("to", "", "last day of the range (DD-MM-YYYY)")

	financeCmd.AddCommand(
		financeAddCmd,
		financeListCmd,
		newShowCmd("finance", financeFileStore, ui.FinanceDetails),
		newDeleteCmd("finance", financeFileStore),
		financeReportCmd,
		newExportCmd("finance", financeFileStore),
		newImportCmd("finance", financeFileStore),
	)
}
