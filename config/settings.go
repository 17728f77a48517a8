package config

import (
	"github.com/docker/go-units"

	"github.com/coupergateway/base64url/errors"
)

var DefaultSettings = Settings{
	LogFormat:    "common",
	LogLevel:     "info",
	MaxInputSize: "64MiB",
}

// Settings are the process wide options. Flags are applied
// first, environment variables override them.
type Settings struct {
	LogFormat    string `env:"log_format"`
	LogLevel     string `env:"log_level"`
	LogPretty    bool   `env:"log_pretty"`
	Lossy        bool   `env:"lossy"`
	MaxInputSize string `env:"max_input_size"`
	NoNewline    bool   `env:"no_newline"`
}

// InputLimit returns the parsed MaxInputSize in bytes.
func (s *Settings) InputLimit() (int64, error) {
	limit, err := units.RAMInBytes(s.MaxInputSize)
	if err != nil {
		return 0, errors.Command.Label("max_input_size").With(err)
	}
	if limit <= 0 {
		return 0, errors.Command.Label("max_input_size").Message("must be greater than zero")
	}
	return limit, nil
}
