package logging

import (
	"regexp"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type JSONColorFormatter struct {
	inner *logrus.JSONFormatter
}

// NewJSONColorFormatter writes json entries. Pretty printed entries get
// colored keys unless color output is disabled for the process.
func NewJSONColorFormatter(parent string, pretty bool) logrus.Formatter {
	return &JSONColorFormatter{
		inner: &logrus.JSONFormatter{
			DataKey: parent,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
			PrettyPrint: pretty,
		},
	}
}

var keyRegex = regexp.MustCompile(`"([A-Za-z0-9-_]+)":`)

func (jcf *JSONColorFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b, err := jcf.inner.Format(entry)
	if !jcf.inner.PrettyPrint || err != nil || color.NoColor {
		return b, err
	}

	result := keyRegex.ReplaceAllFunc(b, func(needle []byte) []byte {
		return []byte(color.HiGreenString("%s", string(needle)))
	})

	return result, err
}
