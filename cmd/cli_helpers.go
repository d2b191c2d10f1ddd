package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// parseID reads a record ID argument.
func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid ID %q: expected a positive number", arg)
	}
	return id, nil
}

// reportNotFound prints the not-found message for kind and id. It returns
// true when err was a not-found error, which commands treat as handled.
func reportNotFound(cmd *cobra.Command, err error, kind string, id int) bool {
	if !errors.Is(err, store.ErrNotFound) {
		return false
	}
	if isJSON() {
		_ = printJSON(cmd.OutOrStdout(), map[string]any{"error": "not_found", "kind": kind, "id": id})
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "No %s with ID %d.\n", kind, id)
	return true
}

// optionalString returns a pointer to the flag value when the flag was set.
func optionalString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}
