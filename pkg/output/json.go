package output

import (
	"encoding/json"
	"io"

	"github.com/oldmonad/ec2Inventory/pkg/cloud"
)

func RenderJSON(w io.Writer, report *cloud.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
