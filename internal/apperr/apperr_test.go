package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, Code(""), CodeOf(nil))
	assert.Equal(t, CodeInternal, CodeOf(errors.New("plain")))
	assert.Equal(t, CodeMissingMapping, CodeOf(ErrMissingMapping("x", "xyz")))

	wrapped := fmt.Errorf("translate: %w", ErrUnrecognizedSymbol("X", "kXt"))
	assert.Equal(t, CodeUnrecognizedSymbol, CodeOf(wrapped))
	assert.True(t, Is(wrapped, CodeUnrecognizedSymbol))
	assert.False(t, Is(wrapped, CodeMissingMapping))
}

func TestWithDetailDoesNotAlias(t *testing.T) {
	base := ErrNoInput("/data")
	a := base.WithDetail("extra", "a")
	b := base.WithDetail("extra", "b")

	assert.Equal(t, "a", a.Detail("extra"))
	assert.Equal(t, "b", b.Detail("extra"))
	assert.Equal(t, "", base.Detail("extra"))
}

func TestErrorString(t *testing.T) {
	err := ErrInventoryViolation([]string{"ʘ", "ǂ"})
	assert.Contains(t, err.Error(), "[INVENTORY_VIOLATION]")
	assert.Contains(t, err.Error(), "ʘ ǂ")
}

func TestInFile(t *testing.T) {
	assert.NoError(t, InFile(nil, "a.TextGrid"))

	err := InFile(ErrInsufficientVowels(1), "cat.TextGrid")
	require.Error(t, err)
	assert.Equal(t, CodeInsufficientData, CodeOf(err))

	var ae Error
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, "cat.TextGrid", ae.Detail("file"))
	assert.Contains(t, err.Error(), "not enough vowels")

	plain := InFile(errors.New("boom"), "x.TextGrid")
	assert.Equal(t, CodeInternal, CodeOf(plain))
}

func TestExternalToolOutput(t *testing.T) {
	err := ErrExternalTool("ffmpeg", errors.New("exit status 1"), "  bad filter\n")
	assert.Equal(t, "bad filter", err.Detail("output"))
	assert.ErrorContains(t, err, "exit status 1")

	quiet := ErrExternalTool("ffmpeg", errors.New("exit status 1"), "   ")
	assert.Equal(t, "", quiet.Detail("output"))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCode(nil))
	assert.Equal(t, ExitNothingToDo, ExitCode(ErrNoInput("/data")))
	assert.Equal(t, ExitNothingToDo, ExitCode(fmt.Errorf("prepare: %w", ErrNoInput("/data"))))
	assert.Equal(t, ExitNothingToDo, ExitCode(ErrNoRecords().WithDetail("file", "combined.json")))
	assert.Equal(t, ExitInvalid, ExitCode(ErrInventoryViolation([]string{"ʧ"})))
	assert.Equal(t, ExitInvalid, ExitCode(ErrInsufficientVowels(0)))
	assert.Equal(t, ExitInvalid, ExitCode(errors.New("boom")))
}
