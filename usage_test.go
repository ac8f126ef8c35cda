package parg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUsageLayout tests the full usage rendering byte for byte
func TestUsageLayout(t *testing.T) {
	threshold := WithValue("threshold", KindUint8, true)
	threshold.SetDescription("upper bound for the filter")
	thread := WithDefaultValue("thread", KindUint8, uint8(42), false)
	thread.SetDescription("number of worker threads")
	verbose := WithoutValue("verbose", false)
	verbose.SetDescription("enable verbose output")

	cli := New(threshold, thread, verbose)
	cli.SetInfo("my_command", "The description")

	want := "The description\n" +
		"Usage:\n" +
		"my_command --thread <value> --threshold <value> --verbose\n" +
		"\n" +
		"Arguments:\n" +
		"--thread <value>    number of worker threads (default: 42)\n" +
		"--threshold <value>    upper bound for the filter (default: )\n" +
		"--verbose    enable verbose output (default: )\n" +
		"--help    print this usage text and exit (default: )\n"

	if diff := cmp.Diff(want, cli.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

// TestUsageWithoutInfo tests rendering when no app info was set
func TestUsageWithoutInfo(t *testing.T) {
	cli := New(WithoutValue("verbose", false))

	want := "Usage:\n" +
		" --verbose\n" +
		"\n" +
		"Arguments:\n" +
		"--verbose     (default: )\n" +
		"--help    print this usage text and exit (default: )\n"

	if diff := cmp.Diff(want, cli.Usage()); diff != "" {
		t.Errorf("usage mismatch (-want +got):\n%s", diff)
	}
}

// TestUsageIsPure tests that rendering does not disturb parse state
func TestUsageIsPure(t *testing.T) {
	cli := New(WithValue("threshold", KindUint8, false))
	require.NoError(t, cli.ParseTokens([]string{"--threshold", "9"}))

	_ = cli.Usage()

	v, err := Get[uint8](cli, "threshold")
	require.NoError(t, err)
	assert.Equal(t, uint8(9), v)
}
