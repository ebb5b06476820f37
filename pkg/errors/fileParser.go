package errors

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

type ErrParse struct {
	Err error
}

func (e ErrParse) Error() string {
	return fmt.Sprintf("parse error: %v", e.Err)
}

func (e ErrParse) Unwrap() error {
	return e.Err
}

func NewParseError(err error) error {
	return ErrParse{Err: err}
}

// ErrHCLParseFailure wraps an hcl.Diagnostics from parsing HCL.
type ErrHCLParseFailure struct {
	Diagnostics hcl.Diagnostics
}

func (e ErrHCLParseFailure) Error() string {
	return fmt.Sprintf("failed to parse HCL: %s", e.Diagnostics.Error())
}

func (e ErrHCLParseFailure) Unwrap() error {
	return e.Diagnostics.Errs()[0]
}

// ErrHCLDecodeFailure wraps an hcl.Diagnostics from decoding HCL bodies.
type ErrHCLDecodeFailure struct {
	Diagnostics hcl.Diagnostics
}

func (e ErrHCLDecodeFailure) Error() string {
	return fmt.Sprintf("failed to decode HCL: %s", e.Diagnostics.Error())
}

func (e ErrHCLDecodeFailure) Unwrap() error {
	return e.Diagnostics.Errs()[0]
}
