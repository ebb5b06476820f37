package errors

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrWrongConfigType indicates the passed-in ProviderConfig wasn't *aws.Config.
type ErrWrongConfigType struct {
	Got interface{}
}

func (e ErrWrongConfigType) Error() string {
	return fmt.Sprintf("unexpected provider config type %T, want *aws.Config", e.Got)
}

func NewWrongConfigType(got interface{}) error {
	return ErrWrongConfigType{Got: got}
}

// ErrAWSConfigLoad wraps failures loading AWS SDK config.
type ErrAWSConfigLoad struct {
	Err error
}

func (e ErrAWSConfigLoad) Error() string {
	return fmt.Sprintf("unable to load AWS SDK config: %v", e.Err)
}

func (e ErrAWSConfigLoad) Unwrap() error {
	return e.Err
}

func NewAWSConfigLoad(err error) error {
	return ErrAWSConfigLoad{Err: err}
}

// ErrProvider is returned when a call to the cloud API fails. Code and Message
// carry the provider's own error code and text unchanged; Code is empty when
// the request never produced an API response (network failure, timeout).
type ErrProvider struct {
	Operation string
	Code      string
	Message   string
	Err       error
}

func (e ErrProvider) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider error: %s failed: %s: %s", e.Operation, e.Code, e.Message)
	}
	return fmt.Sprintf("provider error: %s failed: %s", e.Operation, e.Message)
}

func (e ErrProvider) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err, lifting the API error code and message out of
// the SDK error chain when there is one.
func NewProviderError(operation string, err error) error {
	pe := ErrProvider{
		Operation: operation,
		Message:   err.Error(),
		Err:       err,
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		pe.Code = apiErr.ErrorCode()
		pe.Message = apiErr.ErrorMessage()
	}

	return pe
}
