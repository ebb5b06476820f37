package parser

import (
	"encoding/json"

	"github.com/oldmonad/ec2Inventory/pkg/errors"
)

type JSONParser struct{}

type jsonSettings struct {
	Region       string `json:"region"`
	Endpoint     string `json:"endpoint"`
	HTTPTimeout  string `json:"http_timeout"`
	OutputFormat string `json:"output_format"`
	Credentials  struct {
		AccessKey    string `json:"access_key"`
		SecretKey    string `json:"secret_key"`
		SessionToken string `json:"session_token"`
	} `json:"credentials"`
}

func (p *JSONParser) Parse(content []byte) (*Settings, error) {
	var raw jsonSettings
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, errors.NewParseError(err)
	}

	timeout, err := parseTimeout(raw.HTTPTimeout)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Region:       raw.Region,
		Endpoint:     raw.Endpoint,
		HTTPTimeout:  timeout,
		OutputFormat: raw.OutputFormat,
		Credentials: Credentials{
			AccessKey:    raw.Credentials.AccessKey,
			SecretKey:    raw.Credentials.SecretKey,
			SessionToken: raw.Credentials.SessionToken,
		},
	}, nil
}
