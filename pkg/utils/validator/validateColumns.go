package validator

import (
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/output"
)

// ValidateColumns checks the requested table columns. No columns selects
// every column in display order.
func (v *ValidatorOptions) ValidateColumns(requested []string) ([]string, error) {
	if len(requested) == 0 {
		return output.Columns, nil
	}

	var invalid []string
	for _, c := range requested {
		if !v.validColumns[c] {
			invalid = append(invalid, c)
		}
	}

	if len(invalid) > 0 {
		return nil, &errors.InvalidColumnsError{
			InvalidColumns: invalid,
			ValidColumns:   output.Columns,
		}
	}

	return requested, nil
}
