package errors

import (
	"errors"
)

// Kind classifies a failure for callers that need to react to the class of
// error rather than to a concrete type.
type Kind string

const (
	// KindMissingCredentials is a local precondition failure. No request was sent.
	KindMissingCredentials Kind = "MissingCredentials"
	// KindProviderError is a failure reported by, or on the way to, the cloud API.
	KindProviderError Kind = "ProviderError"
	// KindInvalidConfig covers every other local configuration problem.
	KindInvalidConfig Kind = "InvalidConfig"
	KindUnknown       Kind = "Unknown"
)

// KindOf returns the Kind of err, looking through wrapped errors. A nil error
// has an empty Kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var (
		missing     ErrMissingCredentials
		provider    ErrProvider
		region      ErrMissingRegion
		wrongType   ErrWrongConfigType
		unsupported ErrUnsupportedProvider
		notInit     ErrCloudConfigNotInit
		duration    ErrDurationParse
		timeout     ErrInvalidTimeout
		format      ErrFormatValidation
		settings    ErrLoadSettings
		fileFormat  ErrUnsupportedConfigFormat
		columns     *InvalidColumnsError
		sdkConfig   ErrAWSConfigLoad
	)

	switch {
	case errors.As(err, &missing):
		return KindMissingCredentials
	case errors.As(err, &provider):
		return KindProviderError
	case errors.As(err, &region),
		errors.As(err, &wrongType),
		errors.As(err, &unsupported),
		errors.As(err, &notInit),
		errors.As(err, &duration),
		errors.As(err, &timeout),
		errors.As(err, &format),
		errors.As(err, &settings),
		errors.As(err, &fileFormat),
		errors.As(err, &columns),
		errors.As(err, &sdkConfig):
		return KindInvalidConfig
	default:
		return KindUnknown
	}
}
