package validator

import (
	"github.com/oldmonad/ec2Inventory/pkg/output"
	"github.com/oldmonad/ec2Inventory/pkg/parser"
)

func NewValidator() Validator {
	validColumns := make(map[string]bool, len(output.Columns))
	for _, c := range output.Columns {
		validColumns[c] = true
	}

	return &ValidatorOptions{
		validColumns: validColumns,
		outputFormats: map[string]output.Format{
			"text":  output.Text,
			"table": output.Table,
			"json":  output.JSON,
		},
		settingsFormats: map[string]parser.ParserType{
			".hcl":  parser.HCL,
			".json": parser.JSON,
		},
	}
}

type ValidatorOptions struct {
	validColumns    map[string]bool
	outputFormats   map[string]output.Format
	settingsFormats map[string]parser.ParserType
}

type Validator interface {
	ValidateFormat(format string) (output.Format, error)
	ValidateColumns(requested []string) ([]string, error)
	ValidateSettingsFile(path string) (parser.ParserType, error)
}
