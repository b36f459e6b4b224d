package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// getOutputFormat returns the effective output format from the root command's persistent flags.
func getOutputFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("output")
	return v
}

func validateOutputFormat(output string) error {
	if output != "" && output != "table" && output != "json" {
		return fmt.Errorf("unsupported output format %q: use 'table' or 'json'", output)
	}
	return nil
}

// changedString returns a pointer to v when the flag was set on the
// command line, nil otherwise. Update endpoints treat nil as "leave
// unchanged", so only explicitly set flags reach the wire.
func changedString(cmd *cobra.Command, name string, v string) *string {
	if cmd.Flags().Changed(name) {
		return &v
	}
	return nil
}

func changedInt(cmd *cobra.Command, name string, v int) *int {
	if cmd.Flags().Changed(name) {
		return &v
	}
	return nil
}

func changedBool(cmd *cobra.Command, name string, v bool) *bool {
	if cmd.Flags().Changed(name) {
		return &v
	}
	return nil
}

func changedFloat(cmd *cobra.Command, name string, v float64) *float64 {
	if cmd.Flags().Changed(name) {
		return &v
	}
	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func itoa(v int) string { return strconv.Itoa(v) }
