package aws

import (
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"go.uber.org/zap"
)

const (
	DefaultRegion      = "sa-east-1"
	DefaultHTTPTimeout = 30 * time.Second
)

type Config struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
	Region       string
	// Endpoint overrides the EC2 endpoint, e.g. for LocalStack. Empty means
	// the SDK resolves it from Region.
	Endpoint    string
	HTTPTimeout time.Duration
}

// LoadConfig starts from defaults and lets each non-empty AWS_* variable
// override the matching field. Zero Region and HTTPTimeout fall back to
// DefaultRegion and DefaultHTTPTimeout.
func LoadConfig(defaults Config) (*Config, error) {
	cfg := defaults

	if v := os.Getenv("AWS_ACCESS_KEY_ID"); v != "" {
		cfg.AccessKey = v
	}
	if v := os.Getenv("AWS_SECRET_ACCESS_KEY"); v != "" {
		cfg.SecretKey = v
	}
	if v := os.Getenv("AWS_SESSION_TOKEN"); v != "" {
		cfg.SessionToken = v
	}
	if v := os.Getenv("AWS_REGION"); v != "" {
		cfg.Region = v
	}
	if v := os.Getenv("AWS_ENDPOINT_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("AWS_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.NewErrDurationParse("AWS_HTTP_TIMEOUT", v, err)
		}
		cfg.HTTPTimeout = d
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	return &cfg, nil
}

// Validate checks the credentials first so a config missing both a key and a
// region reports the credentials problem.
func (c *Config) Validate() error {
	var missing []string
	if c.AccessKey == "" {
		missing = append(missing, "accessKey")
	}
	if c.SecretKey == "" {
		missing = append(missing, "secretKey")
	}

	if len(missing) > 0 {
		logger.Log.Error("AWS config validation failed", zap.Strings("missing", missing))
		return errors.NewErrMissingCredentials(missing)
	}

	if c.Region == "" {
		logger.Log.Error("AWS config validation failed", zap.String("reason", "empty region"))
		return errors.NewErrMissingRegion()
	}

	if c.HTTPTimeout < 0 {
		return errors.NewErrInvalidTimeout(c.HTTPTimeout)
	}

	return nil
}

func (c *Config) GetCredentials() interface{} {
	return aws.Credentials{
		AccessKeyID:     c.AccessKey,
		SecretAccessKey: c.SecretKey,
		SessionToken:    c.SessionToken,
	}
}

func (c *Config) GetRegion() string {
	return c.Region
}
