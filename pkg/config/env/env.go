package env

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/oldmonad/ec2Inventory/pkg/config/cloud"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/oldmonad/ec2Inventory/pkg/parser"
	"github.com/oldmonad/ec2Inventory/pkg/utils/validator"
	"go.uber.org/zap"
)

const DefaultHTTPPort = 8080

type Configurations struct {
	DebugMode         bool
	ConfigPath        string
	OutputFormat      string
	CloudProviderType cloud.ProviderType
	HttpPort          int
	Settings          *parser.Settings
	CloudConfig       cloud.ProviderConfig
	CloudProvider     CloudConfigProvider
	Validator         validator.Validator
}

type CloudConfigProvider interface {
	NewProviderConfig(cloud.ProviderType, *parser.Settings) (cloud.ProviderConfig, error)
}

type DefaultCloudProvider struct{}

func (d *DefaultCloudProvider) NewProviderConfig(p cloud.ProviderType, s *parser.Settings) (cloud.ProviderConfig, error) {
	return cloud.NewProviderConfig(p, s)
}

func NewConfiguration() *Configurations {
	return &Configurations{
		HttpPort:          DefaultHTTPPort,
		CloudProviderType: cloud.AWS,
		Settings:          &parser.Settings{},
		CloudProvider:     &DefaultCloudProvider{},
		Validator:         validator.NewValidator(),
	}
}

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding variables already set. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		path := ".env"
		if len(paths) > 0 {
			path = paths[0]
		}
		return errors.NewErrEnvLoad(path, err)
	}
	return nil
}

func (c *Configurations) LoadGeneralConfig() error {
	if rawDebug := os.Getenv("DEBUG"); rawDebug != "" {
		mode, err := strconv.ParseBool(rawDebug)
		if err != nil {
			logger.Log.Error("failed to set up configuration", zap.Error(err))
			logger.Log.Info("Ensure that DEBUG is set to true or false")
			return errors.NewErrDebugParse(rawDebug, err)
		}
		c.DebugMode = mode
	}

	c.ConfigPath = os.Getenv("INVENTORY_CONFIG")
	c.OutputFormat = os.Getenv("OUTPUT_FORMAT")

	if err := c.ValidateAndSetPort(); err != nil {
		logger.Log.Error("Invalid port configuration", zap.Error(err))
		logger.Log.Info("Ensure that HTTP_PORT is a number between 1 and 65535")
		return err
	}

	if provider := os.Getenv("CLOUD_PROVIDER"); provider != "" {
		c.CloudProviderType = cloud.ProviderType(provider)
	}

	return nil
}

// LoadSettings reads the settings file named by ConfigPath, if any. The
// file's output_format is used only when OUTPUT_FORMAT is unset.
func (c *Configurations) LoadSettings() error {
	if c.ConfigPath == "" {
		return nil
	}

	pt, err := c.Validator.ValidateSettingsFile(c.ConfigPath)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(c.ConfigPath)
	if err != nil {
		return errors.NewErrLoadSettings(c.ConfigPath, errors.NewReadFileError(err))
	}

	settings, err := parser.New(pt).Parse(content)
	if err != nil {
		return errors.NewErrLoadSettings(c.ConfigPath, err)
	}

	c.Settings = settings
	if c.OutputFormat == "" {
		c.OutputFormat = settings.OutputFormat
	}

	logger.Log.Debug("Loaded settings file",
		zap.String("path", c.ConfigPath),
		zap.String("parser", string(pt)))
	return nil
}

func (c *Configurations) LoadCloudConfig() error {
	cloudCfg, err := c.CloudProvider.NewProviderConfig(c.CloudProviderType, c.Settings)
	if err != nil {
		return err
	}
	c.CloudConfig = cloudCfg
	return nil
}

// ValidateGeneralConfig checks what must hold before any command runs.
// Credentials are left to the provider so that a missing key is reported
// on each listing instead of preventing startup.
func (c *Configurations) ValidateGeneralConfig() error {
	if c.CloudConfig == nil {
		return errors.NewErrCloudConfigNotInit()
	}

	if c.OutputFormat != "" {
		if _, err := c.Validator.ValidateFormat(c.OutputFormat); err != nil {
			return err
		}
	}

	return nil
}

func (c *Configurations) ValidateAndSetPort() error {
	portStr := os.Getenv("HTTP_PORT")
	if portStr == "" {
		return nil
	}

	port, err := ParsePort(portStr)
	if err != nil {
		return err
	}

	c.HttpPort = port
	return nil
}

// ParsePort parses a TCP port in the range 1-65535.
func ParsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, errors.NewErrPortParse(portStr, err)
	}

	if port < 1 || port > 65535 {
		return 0, errors.NewErrPortOutOfRange(port)
	}
	return port, nil
}

func (c *Configurations) PortToString() string {
	return strconv.Itoa(c.HttpPort)
}

func (c *Configurations) InitiateLogger() {
	logger.Init(c.DebugMode)
}

func SetupConfigurations() (*Configurations, error) {
	configurations := NewConfiguration()

	if err := configurations.LoadGeneralConfig(); err != nil {
		return nil, err
	}

	configurations.InitiateLogger()

	if err := configurations.LoadSettings(); err != nil {
		return nil, err
	}

	if err := configurations.LoadCloudConfig(); err != nil {
		return nil, err
	}

	if err := configurations.ValidateGeneralConfig(); err != nil {
		return nil, err
	}

	return configurations, nil
}
