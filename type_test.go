package parg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTypedAccessors tests the kind-specific wrappers around Get
func TestTypedAccessors(t *testing.T) {
	cli := New(
		WithValue("threshold", KindUint8, false),
		WithValue("offset", KindInt, false),
		WithValue("ratio", KindFloat64, false),
		WithValue("separator", KindRune, false),
		WithValue("config", KindString, false),
		WithValue("enabled", KindBool, false),
	)

	require.NoError(t, cli.ParseTokens([]string{
		"--threshold", "200",
		"--offset", "-3",
		"--ratio", "0.5",
		"--separator", ";",
		"--config", "app.toml",
		"--enabled", "false",
	}))

	threshold, err := cli.Uint8("threshold")
	require.NoError(t, err)
	assert.Equal(t, uint8(200), threshold)

	offset, err := cli.Int("offset")
	require.NoError(t, err)
	assert.Equal(t, -3, offset)

	ratio, err := cli.Float64("ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)

	sep, err := cli.Rune("separator")
	require.NoError(t, err)
	assert.Equal(t, ';', sep)

	config, err := cli.String("config")
	require.NoError(t, err)
	assert.Equal(t, "app.toml", config)

	enabled, err := cli.Bool("enabled")
	require.NoError(t, err)
	assert.False(t, enabled)
}

// TestTypedAccessorsStrict tests that the wrappers reject mismatched kinds
func TestTypedAccessorsStrict(t *testing.T) {
	cli := New(WithValue("threshold", KindUint8, false))
	require.NoError(t, cli.ParseTokens([]string{"--threshold", "1"}))

	_, err := cli.Uint16("threshold")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = cli.String("threshold")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = cli.Uint8("missing")
	assert.ErrorIs(t, err, ErrUnknownArgument)
}
