package cloud

import (
	"github.com/oldmonad/ec2Inventory/pkg/config/cloud/aws"
	"github.com/oldmonad/ec2Inventory/pkg/parser"

	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"go.uber.org/zap"
)

type ProviderConfig interface {
	Validate() error
	GetCredentials() interface{}
	GetRegion() string
}

type ProviderType string

const (
	AWS ProviderType = "aws"
)

// NewProviderConfig builds the provider config from the settings file values
// overlaid with the environment. It does not validate: missing credentials are
// reported by the provider when it is asked to list instances.
func NewProviderConfig(provider ProviderType, settings *parser.Settings) (ProviderConfig, error) {
	if settings == nil {
		settings = &parser.Settings{}
	}

	switch provider {
	case AWS:
		cfg, err := aws.LoadConfig(aws.Config{
			AccessKey:    settings.Credentials.AccessKey,
			SecretKey:    settings.Credentials.SecretKey,
			SessionToken: settings.Credentials.SessionToken,
			Region:       settings.Region,
			Endpoint:     settings.Endpoint,
			HTTPTimeout:  settings.HTTPTimeout,
		})
		if err != nil {
			logger.Log.Error("Failed to load AWS configuration", zap.Error(err))
			return nil, err
		}

		logger.Log.Debug("Loaded AWS configuration",
			zap.String("access_key", maskKey(cfg.AccessKey)),
			zap.String("region", cfg.Region),
			zap.Duration("http_timeout", cfg.HTTPTimeout),
			zap.Bool("endpoint_override", cfg.Endpoint != ""))
		return cfg, nil

	default:
		return nil, errors.NewUnsupportedProvider(string(provider))
	}
}

func maskKey(key string) string {
	if len(key) < 4 {
		return "****"
	}
	return key[:4] + "****"
}
