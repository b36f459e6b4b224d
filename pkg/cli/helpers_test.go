package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, validateOutputFormat(""))
	assert.NoError(t, validateOutputFormat("table"))
	assert.NoError(t, validateOutputFormat("json"))

	err := validateOutputFormat("xml")
	require.Error(t, err)
	assert.Equal(t, `unsupported output format "xml": use 'table' or 'json'`, err.Error())
}

func TestChangedHelpers(t *testing.T) {
	var (
		name  string
		count int
		on    bool
		score float64
	)
	cmd := &cobra.Command{Use: "x", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringVar(&name, "name", "", "")
	cmd.Flags().IntVar(&count, "count", 0, "")
	cmd.Flags().BoolVar(&on, "on", false, "")
	cmd.Flags().Float64Var(&score, "score", 0, "")

	cmd.SetArgs([]string{"--name", "Budi", "--count", "0"})
	require.NoError(t, cmd.Execute())

	got := changedString(cmd, "name", name)
	require.NotNil(t, got)
	assert.Equal(t, "Budi", *got)

	// An explicit zero still counts as changed.
	gotCount := changedInt(cmd, "count", count)
	require.NotNil(t, gotCount)
	assert.Equal(t, 0, *gotCount)

	assert.Nil(t, changedBool(cmd, "on", on))
	assert.Nil(t, changedFloat(cmd, "score", score))
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
