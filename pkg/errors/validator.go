package errors

import (
	"fmt"
	"strings"
)

// ErrFormatValidation wraps a format validation error
type ErrFormatValidation struct {
	Err error
}

func (e ErrFormatValidation) Error() string {
	return fmt.Sprintf("format validation failed: %v", e.Err)
}

func (e ErrFormatValidation) Unwrap() error {
	return e.Err
}

func NewFormatValidationError(err error) error {
	return ErrFormatValidation{Err: err}
}

type InvalidFormatError struct {
	Requested    string
	ValidFormats []string
}

func (e *InvalidFormatError) Error() string {
	var validFormatted string
	for _, f := range e.ValidFormats {
		validFormatted += fmt.Sprintf("  - %s\n", f)
	}
	return fmt.Sprintf("invalid output format: %q\nValid options:\n%s", e.Requested, validFormatted)
}

// ErrUnsupportedConfigFormat is returned for settings files whose extension
// maps to no parser.
type ErrUnsupportedConfigFormat struct {
	Path       string
	Extensions []string
}

func (e ErrUnsupportedConfigFormat) Error() string {
	return fmt.Sprintf("unsupported settings file %q: expected one of %s", e.Path, strings.Join(e.Extensions, ", "))
}

// InvalidColumnsError lists the requested table columns that do not exist.
type InvalidColumnsError struct {
	InvalidColumns []string
	ValidColumns   []string
}

func (e *InvalidColumnsError) Error() string {
	var validFormatted string
	for _, c := range e.ValidColumns {
		validFormatted += fmt.Sprintf("  - %s\n", c)
	}
	return fmt.Sprintf("invalid columns: %s\nValid options:\n%s", strings.Join(e.InvalidColumns, ", "), validFormatted)
}
