package errors

import (
	"fmt"
	"strings"
	"time"
)

// ErrMissingCredentials is returned when the access key and/or the secret key
// is empty. Missing holds the names of the empty fields.
type ErrMissingCredentials struct {
	Missing []string
}

func (e ErrMissingCredentials) Error() string {
	return fmt.Sprintf("missing AWS credentials: %s", strings.Join(e.Missing, ", "))
}

func NewErrMissingCredentials(missing []string) error {
	return ErrMissingCredentials{Missing: missing}
}

// ErrMissingRegion is returned when no target region is configured.
type ErrMissingRegion struct{}

func (e ErrMissingRegion) Error() string {
	return "missing AWS region"
}

func NewErrMissingRegion() error {
	return ErrMissingRegion{}
}

// ErrInvalidTimeout indicates a negative HTTP timeout.
type ErrInvalidTimeout struct {
	Timeout time.Duration
}

func (e ErrInvalidTimeout) Error() string {
	return fmt.Sprintf("invalid HTTP timeout %s: must not be negative", e.Timeout)
}

func NewErrInvalidTimeout(timeout time.Duration) error {
	return ErrInvalidTimeout{Timeout: timeout}
}

// ErrDurationParse wraps failures parsing a duration setting.
type ErrDurationParse struct {
	Field    string
	RawValue string
	Err      error
}

func (e ErrDurationParse) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Field, e.RawValue, e.Err)
}

func (e ErrDurationParse) Unwrap() error {
	return e.Err
}

func NewErrDurationParse(field, raw string, err error) error {
	return ErrDurationParse{Field: field, RawValue: raw, Err: err}
}

// ErrUnsupportedProvider is returned when the provider string is unknown.
type ErrUnsupportedProvider struct {
	ProviderType string
}

func (e ErrUnsupportedProvider) Error() string {
	return fmt.Sprintf("unsupported provider: %s", e.ProviderType)
}

func NewUnsupportedProvider(pt string) error {
	return ErrUnsupportedProvider{ProviderType: pt}
}

// ErrDebugParse wraps failures parsing the DEBUG env var.
type ErrDebugParse struct {
	RawValue string
	Err      error
}

func (e ErrDebugParse) Error() string {
	return fmt.Sprintf("failed to parse DEBUG=%q: %v", e.RawValue, e.Err)
}

func (e ErrDebugParse) Unwrap() error {
	return e.Err
}

func NewErrDebugParse(raw string, err error) error {
	return ErrDebugParse{RawValue: raw, Err: err}
}

// ErrPortParse wraps failures parsing HTTP_PORT.
type ErrPortParse struct {
	RawValue string
	Err      error
}

func (e ErrPortParse) Error() string {
	return fmt.Sprintf("invalid HTTP_PORT=%q: %v", e.RawValue, e.Err)
}

func (e ErrPortParse) Unwrap() error {
	return e.Err
}

func NewErrPortParse(raw string, err error) error {
	return ErrPortParse{RawValue: raw, Err: err}
}

// ErrPortOutOfRange indicates HTTP_PORT is outside 1-65535.
type ErrPortOutOfRange struct {
	Port int
}

func (e ErrPortOutOfRange) Error() string {
	return fmt.Sprintf("HTTP_PORT out of bounds: %d (must be 1-65535)", e.Port)
}

func NewErrPortOutOfRange(port int) error {
	return ErrPortOutOfRange{Port: port}
}

// ErrCloudConfigNotInit indicates LoadCloudConfig wasn't called or failed.
type ErrCloudConfigNotInit struct{}

func (e ErrCloudConfigNotInit) Error() string {
	return "cloud configuration not initialized"
}

func NewErrCloudConfigNotInit() error {
	return ErrCloudConfigNotInit{}
}

// ErrLoadSettings wraps failures reading or parsing the settings file.
type ErrLoadSettings struct {
	Path string
	Err  error
}

func (e ErrLoadSettings) Error() string {
	return fmt.Sprintf("failed to load settings file %s: %v", e.Path, e.Err)
}

func (e ErrLoadSettings) Unwrap() error {
	return e.Err
}

func NewErrLoadSettings(path string, err error) error {
	return ErrLoadSettings{Path: path, Err: err}
}
