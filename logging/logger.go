package logging

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/coupergateway/base64url/config"
	"github.com/coupergateway/base64url/errors"
	"github.com/coupergateway/base64url/logging/hooks"
	"github.com/coupergateway/base64url/utils"
)

const (
	FormatCommon = "common"
	FormatJSON   = "json"
	TypeField    = "base64url"
)

// New creates the process logger. Unknown levels fall back to info.
func New(out io.Writer, settings *config.Settings, extraHooks ...logrus.Hook) *logrus.Entry {
	logger := logrus.New()
	logger.Out = out

	if settings.LogFormat == FormatJSON {
		logger.Formatter = NewJSONColorFormatter("", settings.LogPretty)
	} else {
		logger.Formatter = &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		}
	}

	logger.Level = logrus.InfoLevel
	if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
		logger.Level = level
	}

	logger.AddHook(&errors.LogHook{})
	logger.AddHook(&hooks.Context{})
	for _, h := range extraHooks {
		logger.AddHook(h)
	}

	return logger.WithFields(logrus.Fields{
		"build": utils.BuildName,
		"type":  TypeField,
	})
}
