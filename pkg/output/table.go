package output

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/oldmonad/ec2Inventory/pkg/cloud"
	"github.com/olekukonko/tablewriter"
)

// Columns lists every table column in display order.
var Columns = []string{"reservation_id", "instance_id", "instance_type", "state", "tags"}

// ColorEnabled reports whether w should receive ANSI colour. Only a terminal
// does; files and HTTP bodies get plain text.
var ColorEnabled = func(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RenderTable buffers the whole table before writing it, since tablewriter
// drops write errors.
func RenderTable(w io.Writer, report *cloud.Report, columns []string) error {
	if len(columns) == 0 {
		columns = Columns
	}
	colored := ColorEnabled(w)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)

	for _, res := range report.Reservations {
		for _, inst := range res.Instances {
			row := make([]string, 0, len(columns))
			for _, c := range columns {
				row = append(row, cell(c, res, inst, colored))
			}
			table.Append(row)
		}
	}

	table.Render()

	_, err := w.Write(buf.Bytes())
	return err
}

func cell(column string, res cloud.Reservation, inst cloud.Instance, colored bool) string {
	switch column {
	case "reservation_id":
		return res.ReservationID
	case "instance_id":
		return inst.InstanceID
	case "instance_type":
		return inst.InstanceType
	case "state":
		if !colored {
			return inst.State
		}
		return colorState(inst.State)
	case "tags":
		return formatTags(inst.Tags)
	default:
		return ""
	}
}

func colorState(state string) string {
	var c *color.Color
	switch state {
	case "running":
		c = color.New(color.FgGreen)
	case "stopped", "terminated":
		c = color.New(color.FgRed)
	default:
		c = color.New(color.FgYellow)
	}
	c.EnableColor()
	return c.Sprint(state)
}

func formatTags(tags map[string]string) string {
	pairs := make([]string, 0, len(tags))
	for _, k := range sortedTagKeys(tags) {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, tags[k]))
	}
	return strings.Join(pairs, ", ")
}
