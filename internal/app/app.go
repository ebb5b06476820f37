package app

import (
	"context"
	"io"
	"time"

	"github.com/oldmonad/ec2Inventory/pkg/cloud"
	"github.com/oldmonad/ec2Inventory/pkg/cloud/aws"
	"github.com/oldmonad/ec2Inventory/pkg/config/env"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/oldmonad/ec2Inventory/pkg/output"
	"go.uber.org/zap"
)

type App struct {
	Logger         *zap.Logger
	configurations env.Configurations
	provider       cloud.CloudProvider
}

// AppRunner defines the contract for running the core application logic
type AppRunner interface {
	Report(ctx context.Context) (*cloud.Report, error)
	Run(ctx context.Context, format output.Format, columns []string, w io.Writer) error
}

// NewApp initializes and returns a new App instance
func NewApp(configurations env.Configurations) *App {
	return &App{Logger: logger.Log, configurations: configurations}
}

// SetProvider replaces the default EC2 provider.
func (a *App) SetProvider(p cloud.CloudProvider) {
	a.provider = p
}

// Provider returns the cloud provider for this process. CLOUD_PROVIDER is
// checked when the configuration is loaded, so only AWS reaches here.
func (a *App) Provider() cloud.CloudProvider {
	if a.provider != nil {
		return a.provider
	}
	return aws.NewAWSProvider()
}

// Report fetches a fresh inventory. Nothing is cached between calls.
func (a *App) Report(ctx context.Context) (*cloud.Report, error) {
	cfg := a.configurations.CloudConfig
	if cfg == nil {
		return nil, errors.NewErrCloudConfigNotInit()
	}

	start := time.Now()
	a.Logger.Info("Fetching instance inventory", zap.String("region", cfg.GetRegion()))

	report, err := a.Provider().ListInstances(ctx, cfg)
	if err != nil {
		a.Logger.Error("Inventory failed",
			zap.String("kind", string(errors.KindOf(err))),
			zap.Error(err))
		return nil, err
	}

	a.Logger.Info("Inventory complete",
		zap.Int("reservation_count", len(report.Reservations)),
		zap.Int("instance_count", report.InstanceCount()),
		zap.Duration("elapsed", time.Since(start)))
	return report, nil
}

// Run fetches the inventory and renders it to w. Nothing is written when
// the fetch fails.
func (a *App) Run(ctx context.Context, format output.Format, columns []string, w io.Writer) error {
	report, err := a.Report(ctx)
	if err != nil {
		return err
	}

	return output.Render(w, report, format, columns)
}
