package main

import (
	"context"
	"fmt"
	"os"

	"github.com/oldmonad/ec2Inventory/internal/app"
	"github.com/oldmonad/ec2Inventory/pkg/config/env"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/oldmonad/ec2Inventory/pkg/ports/cli"
	"github.com/oldmonad/ec2Inventory/pkg/ports/rest"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		logger.Log.Error("Command failed",
			zap.String("kind", string(errors.KindOf(err))),
			zap.Error(err),
		)
		fmt.Fprintln(os.Stderr, &errors.CommandError{Err: err})
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}

func run() error {
	if err := env.LoadDotEnv(); err != nil {
		return err
	}

	configurations, err := env.SetupConfigurations()
	if err != nil {
		return errors.NewErrConfigSetup(err)
	}

	appInstance := app.NewApp(*configurations)
	server := rest.NewServer(appInstance, configurations.Validator)

	rootCmd := cli.NewCommand(appInstance, configurations.Validator, server, configurations).InitiateCommands()
	return rootCmd.ExecuteContext(context.Background())
}
