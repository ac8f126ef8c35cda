package parg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArgConstruction tests the three declaration forms
func TestArgConstruction(t *testing.T) {
	t.Run("WithValue", func(t *testing.T) {
		a := WithValue("threshold", KindUint8, true)
		assert.Equal(t, "threshold", a.Name())
		assert.True(t, a.hasValue)
		assert.True(t, a.required)
		assert.False(t, a.HasDefault())
	})

	t.Run("WithDefaultValue", func(t *testing.T) {
		a := WithDefaultValue("thread", KindUint8, uint8(42), false)
		assert.True(t, a.HasDefault())
		assert.False(t, a.required)
	})

	t.Run("WithoutValue", func(t *testing.T) {
		a := WithoutValue("verbose", false)
		assert.False(t, a.hasValue)
		assert.False(t, a.HasDefault())
	})

	t.Run("LeadingMarkerStripped", func(t *testing.T) {
		a := WithValue("--config", KindString, true)
		assert.Equal(t, "config", a.Name())
	})
}

// TestAcceptDefault tests default acceptance and its defensive checks
func TestAcceptDefault(t *testing.T) {
	t.Run("MatchingKind", func(t *testing.T) {
		a := WithDefaultValue("thread", KindUint8, uint8(42), false)
		require.NoError(t, a.acceptDefault())
		assert.Equal(t, uint8(42), a.value)
	})

	t.Run("MismatchedKind", func(t *testing.T) {
		a := WithDefaultValue("thread", KindUint8, 42, false) // int, not uint8
		err := a.acceptDefault()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDefaultMismatch)
	})

	t.Run("NoDefault", func(t *testing.T) {
		a := WithValue("thread", KindUint8, false)
		assert.Error(t, a.acceptDefault())
	})

	t.Run("PresenceFlag", func(t *testing.T) {
		a := WithoutValue("verbose", false)
		err := a.acceptDefault()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotValueTaking)
	})
}

// TestArgFormatting tests FormatValue and the debug rendering
func TestArgFormatting(t *testing.T) {
	t.Run("UnsetValue", func(t *testing.T) {
		a := WithValue("threshold", KindUint8, true)
		assert.Equal(t, "", a.FormatValue())
		assert.Equal(t, "--threshold=", a.String())
	})

	t.Run("SetValue", func(t *testing.T) {
		a := WithValue("threshold", KindUint8, true)
		a.value = uint8(200)
		assert.Equal(t, "200", a.FormatValue())
		assert.Equal(t, "--threshold=200", a.String())
	})

	t.Run("PresenceFlag", func(t *testing.T) {
		a := WithoutValue("verbose", false)
		a.value = true
		assert.Equal(t, "", a.FormatValue())
		assert.Equal(t, "--verbose", a.String())
	})

	t.Run("RuneValue", func(t *testing.T) {
		a := WithValue("sep", KindRune, false)
		a.value = ','
		assert.Equal(t, ",", a.FormatValue())
	})
}

// TestArgReset tests that reset clears only the run-scoped state
func TestArgReset(t *testing.T) {
	a := WithDefaultValue("thread", KindUint8, uint8(42), true)
	a.value = uint8(7)
	a.seen = true

	a.reset()

	assert.Nil(t, a.value)
	assert.False(t, a.seen)
	assert.True(t, a.required)
	assert.True(t, a.HasDefault())
}
