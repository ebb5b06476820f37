package cli

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/oldmonad/ec2Inventory/internal/app"
	"github.com/oldmonad/ec2Inventory/pkg/config/env"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/oldmonad/ec2Inventory/pkg/output"
	"github.com/oldmonad/ec2Inventory/pkg/ports/rest"
	"github.com/oldmonad/ec2Inventory/pkg/utils/validator"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type Command struct {
	app            app.AppRunner
	validator      validator.Validator
	server         rest.Server
	configurations *env.Configurations
}

func NewCommand(app app.AppRunner, validator validator.Validator, server rest.Server, configurations *env.Configurations) *Command {
	return &Command{
		app:            app,
		validator:      validator,
		server:         server,
		configurations: configurations,
	}
}

// InitiateCommands builds the root command with its list and serve
// subcommands.
func (c *Command) InitiateCommands() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ec2inventory",
		Short:         "List EC2 reservations and instances in a region",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(c.listCommand())
	rootCmd.AddCommand(c.serveCommand())
	return rootCmd
}

func (c *Command) listCommand() *cobra.Command {
	var (
		format     string
		columns    []string
		outputPath string
	)

	defaultFormat := c.configurations.OutputFormat
	if defaultFormat == "" {
		defaultFormat = string(output.Text)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List reservations and instances",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c.validator.ValidateFormat(format)
			if err != nil {
				return err
			}

			cols, err := c.validator.ValidateColumns(columns)
			if err != nil {
				return err
			}

			if outputPath == "" {
				return c.app.Run(cmd.Context(), f, cols, cmd.OutOrStdout())
			}
			return c.runToFile(cmd, f, cols, outputPath)
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "f", defaultFormat, "output format: text, table or json")
	listCmd.Flags().StringSliceVarP(&columns, "columns", "c", []string{}, "table columns to show (comma-separated or multiple flags)")
	listCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	return listCmd
}

// runToFile writes the report only once it has rendered completely, so a
// failed listing never leaves a truncated file behind.
func (c *Command) runToFile(cmd *cobra.Command, format output.Format, columns []string, path string) error {
	var buf bytes.Buffer
	if err := c.app.Run(cmd.Context(), format, columns, &buf); err != nil {
		return err
	}

	if err := writeFile(path, &buf); err != nil {
		return errors.NewWriteFileError(path, err)
	}

	logger.Log.Info("Report written", zap.String("path", path))
	return nil
}

func writeFile(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *Command) serveCommand() *cobra.Command {
	var port string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			portNum, err := env.ParsePort(port)
			if err != nil {
				return err
			}
			return c.server.Start(strconv.Itoa(portNum))
		},
	}

	serveCmd.Flags().StringVarP(&port, "port", "p", c.configurations.PortToString(), "port for HTTP server")
	return serveCmd
}
