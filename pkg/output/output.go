package output

import (
	"io"
	"sort"

	"github.com/oldmonad/ec2Inventory/pkg/cloud"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
)

type Format string

const (
	Text  Format = "text"
	Table Format = "table"
	JSON  Format = "json"
)

// Render writes report to w in the given format. columns only applies to
// Table; nil selects every column.
func Render(w io.Writer, report *cloud.Report, format Format, columns []string) error {
	var err error
	switch format {
	case Text, "":
		err = RenderText(w, report)
	case Table:
		err = RenderTable(w, report, columns)
	case JSON:
		err = RenderJSON(w, report)
	default:
		return errors.NewFormatValidationError(&errors.InvalidFormatError{
			Requested:    string(format),
			ValidFormats: []string{string(JSON), string(Table), string(Text)},
		})
	}

	if err != nil {
		return errors.NewErrRender(string(format), err)
	}
	return nil
}

// sortedTagKeys gives tag output a stable order.
func sortedTagKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
