// Package apperr defines the error taxonomy shared by the preparation,
// extraction and vowel-analysis pipelines.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code classifies a failure.
type Code string

const (
	CodeInternal           Code = "INTERNAL"
	CodeInvalidInput       Code = "INVALID_INPUT"
	CodeUnrecognizedSymbol Code = "UNRECOGNIZED_SYMBOL"
	CodeMissingMapping     Code = "MISSING_MAPPING"
	CodeInventoryViolation Code = "INVENTORY_VIOLATION"
	CodeInsufficientData   Code = "INSUFFICIENT_DATA"
	CodeExternalTool       Code = "EXTERNAL_TOOL"
)

func (c Code) String() string { return string(c) }

// Error is the application error type.
type Error struct {
	Raw     error
	Code    Code
	Message string
	Details map[string]string
}

// Error implements error interface
func (e Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%q", k, e.Details[k])
		}
	}
	if e.Raw != nil {
		fmt.Fprintf(&b, ": %v", e.Raw)
	}
	return b.String()
}

func (e Error) Unwrap() error { return e.Raw }

// WithDetail adds a detail to the error
func (e Error) WithDetail(key, value string) Error {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

// Detail returns the detail stored under key, or "".
func (e Error) Detail(key string) string {
	return e.Details[key]
}

// CodeOf returns the code of the first Error in err's chain, or
// CodeInternal when there is none. A nil error has no code.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ae Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var ae Error
	return errors.As(err, &ae) && ae.Code == code
}

func ErrInternal(err error) Error {
	return Error{
		Raw:     err,
		Code:    CodeInternal,
		Message: "internal error",
	}
}

func ErrInvalidInput(message string, err error) Error {
	return Error{
		Raw:     err,
		Code:    CodeInvalidInput,
		Message: message,
	}
}

// Transcription errors

func ErrUnrecognizedSymbol(char, input string) Error {
	return Error{
		Code:    CodeUnrecognizedSymbol,
		Message: fmt.Sprintf("couldn't handle non-IPA symbol %q in %q", char, input),
	}.WithDetail("symbol", char).WithDetail("input", input)
}

func ErrMissingMapping(symbol, input string) Error {
	return Error{
		Code:    CodeMissingMapping,
		Message: fmt.Sprintf("no mapping for symbol %q in %q", symbol, input),
	}.WithDetail("symbol", symbol).WithDetail("input", input)
}

func ErrRuleCycle(symbol string) Error {
	return Error{
		Code:    CodeInternal,
		Message: fmt.Sprintf("normalization rules for %q do not terminate", symbol),
	}.WithDetail("symbol", symbol)
}

// Dictionary errors

func ErrInventoryViolation(phones []string) Error {
	return Error{
		Code:    CodeInventoryViolation,
		Message: fmt.Sprintf("these phones are going to cause problems: %s", strings.Join(phones, " ")),
	}.WithDetail("phones", strings.Join(phones, " "))
}

// Data errors

func ErrInsufficientVowels(found int) Error {
	return Error{
		Code:    CodeInsufficientData,
		Message: fmt.Sprintf("not enough vowels in intervals: found %d, need 2", found),
	}
}

// ErrNothingToDo is wrapped by errors for runs that found no input.
var ErrNothingToDo = errors.New("nothing to do")

func ErrNoInput(dir string) Error {
	return Error{
		Raw:     ErrNothingToDo,
		Code:    CodeInsufficientData,
		Message: "no annotation files found",
	}.WithDetail("dir", dir)
}

// ErrNoRecords reports a combined-intervals file without annotation files.
func ErrNoRecords() Error {
	return Error{
		Raw:     ErrNothingToDo,
		Code:    CodeInsufficientData,
		Message: "combined intervals hold no annotation files",
	}
}

func ErrMissingAudio(path string) Error {
	return Error{
		Code:    CodeInsufficientData,
		Message: "could not find audio file",
	}.WithDetail("path", path)
}

func ErrZeroDuration() Error {
	return Error{
		Code:    CodeInsufficientData,
		Message: "both vowel durations are zero",
	}
}

// External tool errors

func ErrExternalTool(tool string, err error, output string) Error {
	e := Error{
		Raw:     err,
		Code:    CodeExternalTool,
		Message: fmt.Sprintf("%s failed", tool),
	}.WithDetail("tool", tool)
	if output = strings.TrimSpace(output); output != "" {
		e = e.WithDetail("output", output)
	}
	return e
}

// InFile attaches the file an error was found in. Errors without a code are
// wrapped as internal errors first.
func InFile(err error, path string) error {
	if err == nil {
		return nil
	}
	var ae Error
	if !errors.As(err, &ae) {
		return ErrInternal(err).WithDetail("file", path)
	}
	return Error{
		Raw:     err,
		Code:    ae.Code,
		Message: fmt.Sprintf("problem processing %s", path),
	}.WithDetail("file", path)
}

// Process exit codes of the command-line tools.
const (
	ExitOK          = 0
	ExitInvalid     = 1
	ExitNothingToDo = 2
	ExitUsage       = 3
)

// ExitCode maps the outcome of a run to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNothingToDo):
		return ExitNothingToDo
	default:
		return ExitInvalid
	}
}
