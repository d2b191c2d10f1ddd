package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const testDataDir = "/data"

// setupCLI gives the test an in-memory filesystem and a fixed clock.
func setupCLI(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	prevFs, prevNow := appFs, now
	appFs = fs
	now = func() time.Time { return time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		appFs, now = prevFs, prevNow
		viper.Reset()
		resetFlags(rootCmd)
	})
	return fs
}

// run executes the CLI with args against the test data directory and
// returns everything written to stdout and stderr.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	viper.Reset()
	resetFlags(rootCmd)

	b := bytes.NewBufferString("")
	rootCmd.SetOut(b)
	rootCmd.SetErr(b)
	rootCmd.SetArgs(append([]string{"--data-dir", testDataDir}, args...))

	err := rootCmd.Execute()
	return b.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
