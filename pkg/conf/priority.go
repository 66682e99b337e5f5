package conf

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// priorities maps logging priority labels onto logrus levels.
// Both the long labels and the logrus names are accepted.
var priorities = map[string]logrus.Level{
	"fatal":       logrus.FatalLevel,
	"critical":    logrus.ErrorLevel,
	"error":       logrus.ErrorLevel,
	"warning":     logrus.WarnLevel,
	"warn":        logrus.WarnLevel,
	"notice":      logrus.InfoLevel,
	"information": logrus.InfoLevel,
	"info":        logrus.InfoLevel,
	"debug":       logrus.DebugLevel,
	"trace":       logrus.TraceLevel,
}

// ParsePriority converts a logging priority label to logrus level.
func ParsePriority(label string) (logrus.Level, error) {
	level, ok := priorities[strings.ToLower(strings.TrimSpace(label))]
	if !ok {
		return logrus.PanicLevel, errors.Errorf("invalid logging priority label %q", label)
	}
	return level, nil
}
