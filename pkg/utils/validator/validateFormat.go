package validator

import (
	"sort"
	"strings"

	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/output"
)

// ValidateFormat maps a user supplied output format to an output.Format.
// An empty string selects text.
func (v *ValidatorOptions) ValidateFormat(format string) (output.Format, error) {
	if format == "" {
		return output.Text, nil
	}

	f, ok := v.outputFormats[strings.ToLower(format)]
	if !ok {
		return "", errors.NewFormatValidationError(&errors.InvalidFormatError{
			Requested:    format,
			ValidFormats: v.AllFormats(),
		})
	}
	return f, nil
}

// AllFormats returns the supported output formats sorted by name.
func (v *ValidatorOptions) AllFormats() []string {
	formats := make([]string, 0, len(v.outputFormats))
	for k := range v.outputFormats {
		formats = append(formats, k)
	}
	sort.Strings(formats)
	return formats
}
