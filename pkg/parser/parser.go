package parser

import (
	"time"

	"github.com/oldmonad/ec2Inventory/pkg/errors"
)

// Settings is the content of an inventory settings file. Every field is
// optional; environment variables take precedence over whatever is set here.
type Settings struct {
	Region       string
	Endpoint     string
	HTTPTimeout  time.Duration
	OutputFormat string
	Credentials  Credentials
}

type Credentials struct {
	AccessKey    string
	SecretKey    string
	SessionToken string
}

type Parser interface {
	Parse(content []byte) (*Settings, error)
}

type ParserType string

const (
	HCL     ParserType = "hcl"
	JSON    ParserType = "json"
	Unknown ParserType = "unknown"
)

// New returns the parser for pt, or nil for Unknown.
func New(pt ParserType) Parser {
	switch pt {
	case HCL:
		return &HCLParser{}
	case JSON:
		return &JSONParser{}
	default:
		return nil
	}
}

func parseTimeout(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.NewErrDurationParse("http_timeout", raw, err)
	}
	return d, nil
}
