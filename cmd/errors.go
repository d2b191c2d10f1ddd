package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/organizer/store"
	"github.com/spf13/viper"
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// userMessage maps an error returned by a command to the line shown
// without --verbose.
func userMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrCorrupt):
		return "Error: A data file is damaged. Restore it from a backup or fix it by hand."
	case errors.Is(err, store.ErrMalformedImport):
		return "Error: The CSV file could not be imported. Nothing was changed."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
