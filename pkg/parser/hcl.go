package parser

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/oldmonad/ec2Inventory/pkg/errors"
	"github.com/oldmonad/ec2Inventory/pkg/logger"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"go.uber.org/zap"
)

// HCLParser reads settings files such as:
//
//	region       = "sa-east-1"
//	http_timeout = "10s"
//
//	credentials {
//	  access_key = env("AWS_ACCESS_KEY_ID")
//	  secret_key = env("AWS_SECRET_ACCESS_KEY")
//	}
type HCLParser struct{}

type hclSettings struct {
	Region       string          `hcl:"region,optional"`
	Endpoint     string          `hcl:"endpoint,optional"`
	HTTPTimeout  string          `hcl:"http_timeout,optional"`
	OutputFormat string          `hcl:"output_format,optional"`
	Credentials  *hclCredentials `hcl:"credentials,block"`
}

type hclCredentials struct {
	AccessKey    string `hcl:"access_key,optional"`
	SecretKey    string `hcl:"secret_key,optional"`
	SessionToken string `hcl:"session_token,optional"`
}

// envFunc lets a settings file pull a value from the environment instead of
// holding the secret itself. Unset variables evaluate to "".
var envFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "name", Type: cty.String},
	},
	Type: function.StaticReturnType(cty.String),
	Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
		return cty.StringVal(os.Getenv(args[0].AsString())), nil
	},
})

func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": envFunc,
		},
	}
}

func (p *HCLParser) Parse(content []byte) (*Settings, error) {
	log := logger.WithField("component", "hcl-parser")
	log.Debug("Parsing HCL settings file")

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, "inventory.hcl")
	if diags.HasErrors() {
		log.Error("HCL parsing failed",
			zap.String("error", diags.Error()),
			zap.Int("error_count", len(diags)))
		logDiagnostics(log, "Parsing diagnostic", diags)
		return nil, errors.ErrHCLParseFailure{Diagnostics: diags}
	}

	var raw hclSettings
	diags = gohcl.DecodeBody(file.Body, evalContext(), &raw)
	if diags.HasErrors() {
		log.Error("HCL decoding failed",
			zap.String("error", diags.Error()),
			zap.Int("error_count", len(diags)))
		logDiagnostics(log, "Decoding diagnostic", diags)
		return nil, errors.ErrHCLDecodeFailure{Diagnostics: diags}
	}

	timeout, err := parseTimeout(raw.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		Region:       raw.Region,
		Endpoint:     raw.Endpoint,
		HTTPTimeout:  timeout,
		OutputFormat: raw.OutputFormat,
	}
	if raw.Credentials != nil {
		settings.Credentials = Credentials{
			AccessKey:    raw.Credentials.AccessKey,
			SecretKey:    raw.Credentials.SecretKey,
			SessionToken: raw.Credentials.SessionToken,
		}
	}

	log.Debug("Parsed HCL settings file",
		zap.String("region", settings.Region),
		zap.Bool("credentials_block", raw.Credentials != nil))
	return settings, nil
}

func logDiagnostics(log *zap.Logger, msg string, diags hcl.Diagnostics) {
	for _, diag := range diags {
		log.Debug(msg,
			zap.String("summary", diag.Summary),
			zap.String("detail", diag.Detail),
			zap.String("position", fmt.Sprintf("%v", diag.Subject)))
	}
}
