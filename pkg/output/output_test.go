package output_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/oldmonad/ec2Inventory/pkg/cloud"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *cloud.Report {
	return &cloud.Report{
		Region: "sa-east-1",
		Reservations: []cloud.Reservation{
			{
				ReservationID: "r-1",
				Instances: []cloud.Instance{
					{
						InstanceID:   "i-1",
						InstanceType: "t2.micro",
						State:        "running",
						Tags:         map[string]string{"Name": "web", "Env": "prod"},
					},
				},
			},
			{
				ReservationID: "r-2",
				Instances: []cloud.Instance{
					{InstanceID: "i-2", InstanceType: "m5.large", State: "stopped", Tags: map[string]string{}},
					{InstanceID: "i-3", InstanceType: "t3.nano", State: "pending"},
				},
			},
		},
	}
}

func TestRenderText(t *testing.T) {
	t.Run("single instance", func(t *testing.T) {
		report := &cloud.Report{
			Region: "sa-east-1",
			Reservations: []cloud.Reservation{{
				ReservationID: "r-1",
				Instances: []cloud.Instance{{
					InstanceID:   "i-1",
					InstanceType: "t2.micro",
					State:        "running",
					Tags:         map[string]string{"Name": "web"},
				}},
			}},
		}

		var buf bytes.Buffer
		require.NoError(t, output.RenderText(&buf, report))

		expected := "Reservation ID: r-1\n" +
			"\tInstance ID: i-1\n" +
			"\tInstance Type: t2.micro\n" +
			"\tInstance State: running\n" +
			"\tInstance Tags:\n" +
			"\t\tKey: Name - Value: web\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("tags ordered by key and empty tag blocks kept", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.RenderText(&buf, sampleReport()))

		expected := "Reservation ID: r-1\n" +
			"\tInstance ID: i-1\n" +
			"\tInstance Type: t2.micro\n" +
			"\tInstance State: running\n" +
			"\tInstance Tags:\n" +
			"\t\tKey: Env - Value: prod\n" +
			"\t\tKey: Name - Value: web\n" +
			"Reservation ID: r-2\n" +
			"\tInstance ID: i-2\n" +
			"\tInstance Type: m5.large\n" +
			"\tInstance State: stopped\n" +
			"\tInstance Tags:\n" +
			"\tInstance ID: i-3\n" +
			"\tInstance Type: t3.nano\n" +
			"\tInstance State: pending\n" +
			"\tInstance Tags:\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("empty report", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.RenderText(&buf, &cloud.Report{Region: "sa-east-1"}))
		assert.Empty(t, buf.String())
	})
}

func colored(attr color.Attribute, s string) string {
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

func forceColor(t *testing.T) {
	t.Helper()
	orig := output.ColorEnabled
	output.ColorEnabled = func(io.Writer) bool { return true }
	t.Cleanup(func() { output.ColorEnabled = orig })
}

func TestRenderTable(t *testing.T) {
	t.Run("all columns", func(t *testing.T) {
		forceColor(t)

		var buf bytes.Buffer
		require.NoError(t, output.RenderTable(&buf, sampleReport(), nil))
		out := buf.String()

		assert.Contains(t, out, "RESERVATION ID")
		assert.Contains(t, out, "INSTANCE TYPE")
		assert.Contains(t, out, "TAGS")
		assert.Contains(t, out, "Env=prod, Name=web")
		assert.Contains(t, out, colored(color.FgGreen, "running"))
		assert.Contains(t, out, colored(color.FgRed, "stopped"))
		assert.Contains(t, out, colored(color.FgYellow, "pending"))
		// header + one row per instance
		assert.Equal(t, 4, strings.Count(out, "\n"))
	})

	t.Run("plain text for non-terminal writers", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.RenderTable(&buf, sampleReport(), []string{"instance_id", "state"}))
		out := buf.String()

		assert.NotContains(t, out, "\x1b[")
		assert.Contains(t, out, "running")
		assert.Contains(t, out, "stopped")
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "report.txt"))
		require.NoError(t, err)
		defer f.Close()

		assert.False(t, output.ColorEnabled(f))
		assert.False(t, output.ColorEnabled(&bytes.Buffer{}))
	})

	t.Run("selected columns", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.RenderTable(&buf, sampleReport(), []string{"instance_id", "state"}))
		out := buf.String()

		assert.Contains(t, out, "INSTANCE ID")
		assert.Contains(t, out, "i-3")
		assert.NotContains(t, out, "RESERVATION ID")
		assert.NotContains(t, out, "r-1")
		assert.NotContains(t, out, "t2.micro")
	})

	t.Run("empty report prints header only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, output.RenderTable(&buf, &cloud.Report{}, nil))
		assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	})
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.RenderJSON(&buf, sampleReport()))

	assert.JSONEq(t, `{
		"region": "sa-east-1",
		"reservations": [
			{"reservation_id": "r-1", "instances": [
				{"instance_id": "i-1", "instance_type": "t2.micro", "state": "running", "tags": {"Env": "prod", "Name": "web"}}
			]},
			{"reservation_id": "r-2", "instances": [
				{"instance_id": "i-2", "instance_type": "m5.large", "state": "stopped", "tags": {}},
				{"instance_id": "i-3", "instance_type": "t3.nano", "state": "pending", "tags": null}
			]}
		]
	}`, buf.String())
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"region\""))
}

func TestRender(t *testing.T) {
	report := sampleReport()

	for _, f := range []output.Format{output.Text, output.Table, output.JSON} {
		t.Run(string(f), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, output.Render(&buf, report, f, nil))
			assert.Contains(t, buf.String(), "i-1")
		})
	}

	t.Run("default is text", func(t *testing.T) {
		var a, b bytes.Buffer
		require.NoError(t, output.Render(&a, report, "", nil))
		require.NoError(t, output.RenderText(&b, report))
		assert.Equal(t, b.String(), a.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := output.Render(&buf, report, "xml", nil)
		require.Error(t, err)

		var formatErr *errors.InvalidFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "xml", formatErr.Requested)
		assert.Empty(t, buf.String())
	})

	for _, f := range []output.Format{output.Text, output.Table, output.JSON} {
		t.Run("write failure "+string(f), func(t *testing.T) {
			err := output.Render(failingWriter{}, report, f, nil)

			var renderErr errors.ErrRender
			require.ErrorAs(t, err, &renderErr)
			assert.Equal(t, string(f), renderErr.Format)
			assert.ErrorIs(t, err, assert.AnError)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
