package aws_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/oldmonad/ec2Inventory/pkg/config/cloud/aws"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	logger.SetLogger(zap.NewNop())
	m.Run()
}

func clearAWSEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN",
		"AWS_REGION", "AWS_ENDPOINT_URL", "AWS_HTTP_TIMEOUT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("all fields set", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_ACCESS_KEY_ID", "test-access")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")
		t.Setenv("AWS_REGION", "us-east-1")
		t.Setenv("AWS_SESSION_TOKEN", "test-token")
		t.Setenv("AWS_ENDPOINT_URL", "http://localhost:4566")
		t.Setenv("AWS_HTTP_TIMEOUT", "5s")

		cfg, err := awsConfig.LoadConfig(awsConfig.Config{})
		require.NoError(t, err)

		assert.Equal(t, "test-access", cfg.AccessKey)
		assert.Equal(t, "test-secret", cfg.SecretKey)
		assert.Equal(t, "us-east-1", cfg.Region)
		assert.Equal(t, "test-token", cfg.SessionToken)
		assert.Equal(t, "http://localhost:4566", cfg.Endpoint)
		assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	})

	t.Run("defaults applied", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_ACCESS_KEY_ID", "test-access")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "test-secret")

		cfg, err := awsConfig.LoadConfig(awsConfig.Config{})
		require.NoError(t, err)

		assert.Equal(t, awsConfig.DefaultRegion, cfg.Region)
		assert.Equal(t, "sa-east-1", cfg.Region)
		assert.Equal(t, awsConfig.DefaultHTTPTimeout, cfg.HTTPTimeout)
		assert.Empty(t, cfg.SessionToken)
		assert.Empty(t, cfg.Endpoint)
	})

	t.Run("env overrides settings file values", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_REGION", "eu-west-1")

		cfg, err := awsConfig.LoadConfig(awsConfig.Config{
			AccessKey:   "file-access",
			SecretKey:   "file-secret",
			Region:      "us-west-2",
			HTTPTimeout: 10 * time.Second,
		})
		require.NoError(t, err)

		assert.Equal(t, "file-access", cfg.AccessKey)
		assert.Equal(t, "file-secret", cfg.SecretKey)
		assert.Equal(t, "eu-west-1", cfg.Region)
		assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	})

	t.Run("invalid timeout", func(t *testing.T) {
		clearAWSEnv(t)
		t.Setenv("AWS_HTTP_TIMEOUT", "soon")

		cfg, err := awsConfig.LoadConfig(awsConfig.Config{})
		require.Error(t, err)
		assert.Nil(t, cfg)

		var durErr errors.ErrDurationParse
		require.ErrorAs(t, err, &durErr)
		assert.Equal(t, "AWS_HTTP_TIMEOUT", durErr.Field)
		assert.Equal(t, "soon", durErr.RawValue)
	})
}

func TestGetCredentials(t *testing.T) {
	t.Run("full credentials with session token", func(t *testing.T) {
		cfg := &awsConfig.Config{
			AccessKey:    "AKIAEXAMPLE",
			SecretKey:    "SecretKeyExample",
			SessionToken: "SessionTokenExample",
		}

		result := cfg.GetCredentials()
		creds, ok := result.(aws.Credentials)
		assert.True(t, ok, "Should return aws.Credentials type")

		assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)
		assert.Equal(t, "SecretKeyExample", creds.SecretAccessKey)
		assert.Equal(t, "SessionTokenExample", creds.SessionToken)
	})

	t.Run("minimum required credentials", func(t *testing.T) {
		cfg := &awsConfig.Config{
			AccessKey: "AKIAEXAMPLE",
			SecretKey: "SecretKeyExample",
			Region:    "sa-east-1",
		}

		creds := cfg.GetCredentials().(aws.Credentials)

		assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)
		assert.Equal(t, "SecretKeyExample", creds.SecretAccessKey)
		assert.Empty(t, creds.SessionToken)
	})
}

func TestGetRegion(t *testing.T) {
	assert.Equal(t, "eu-central-1", (&awsConfig.Config{Region: "eu-central-1"}).GetRegion())
	assert.Empty(t, (&awsConfig.Config{}).GetRegion())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  *awsConfig.Config
		missing []string
	}{
		{
			name:    "all required fields present",
			config:  &awsConfig.Config{AccessKey: "access", SecretKey: "secret", Region: "sa-east-1"},
			missing: nil,
		},
		{
			name:    "session token is optional",
			config:  &awsConfig.Config{AccessKey: "access", SecretKey: "secret", Region: "sa-east-1", SessionToken: "tok"},
			missing: nil,
		},
		{
			name:    "missing access key",
			config:  &awsConfig.Config{SecretKey: "x", Region: "sa-east-1"},
			missing: []string{"accessKey"},
		},
		{
			name:    "missing secret key",
			config:  &awsConfig.Config{AccessKey: "x", Region: "sa-east-1"},
			missing: []string{"secretKey"},
		},
		{
			name:    "missing both keys",
			config:  &awsConfig.Config{Region: "sa-east-1"},
			missing: []string{"accessKey", "secretKey"},
		},
		{
			name:    "credentials reported before region",
			config:  &awsConfig.Config{},
			missing: []string{"accessKey", "secretKey"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, recordedLogs := observer.New(zap.ErrorLevel)
			observedLogger := zap.New(core)

			originalLogger := logger.Log
			logger.Log = observedLogger
			defer func() { logger.Log = originalLogger }()

			err := tt.config.Validate()

			if tt.missing == nil {
				assert.NoError(t, err)
				assert.Zero(t, recordedLogs.Len())
				return
			}

			require.Error(t, err)
			var credsErr errors.ErrMissingCredentials
			require.ErrorAs(t, err, &credsErr)
			assert.Equal(t, tt.missing, credsErr.Missing)
			assert.Equal(t, errors.KindMissingCredentials, errors.KindOf(err))

			require.Equal(t, 1, recordedLogs.Len())
			logEntry := recordedLogs.All()[0]
			assert.Equal(t, "AWS config validation failed", logEntry.Message)
			assert.Equal(t, zap.ErrorLevel, logEntry.Level)

			var loggedMissing []string
			for _, field := range logEntry.Context {
				if field.Key == "missing" {
					val := reflect.ValueOf(field.Interface)
					if val.Kind() == reflect.Slice {
						loggedMissing = make([]string, val.Len())
						for i := 0; i < val.Len(); i++ {
							loggedMissing[i] = val.Index(i).Interface().(string)
						}
					}
					break
				}
			}
			assert.Equal(t, tt.missing, loggedMissing)
		})
	}
}

func TestValidateRegionAndTimeout(t *testing.T) {
	t.Run("empty region", func(t *testing.T) {
		err := (&awsConfig.Config{AccessKey: "a", SecretKey: "s"}).Validate()

		var regionErr errors.ErrMissingRegion
		require.ErrorAs(t, err, &regionErr)
		assert.Equal(t, errors.KindInvalidConfig, errors.KindOf(err))
	})

	t.Run("negative timeout", func(t *testing.T) {
		err := (&awsConfig.Config{AccessKey: "a", SecretKey: "s", Region: "sa-east-1", HTTPTimeout: -time.Second}).Validate()

		var timeoutErr errors.ErrInvalidTimeout
		require.ErrorAs(t, err, &timeoutErr)
		assert.Equal(t, -time.Second, timeoutErr.Timeout)
	})
}
