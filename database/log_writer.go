package database

import (
	"github.com/sirupsen/logrus"
	"strings"
)

// LogWriter is a gorm logger.Writer that logs each line to logrus at the level
// the line was reported at. Failed statements go to Error, slow ones to Warn,
// and plain SQL traces to Debug.
type LogWriter struct {
	Logger *logrus.Logger
}

func (w LogWriter) Printf(format string, args ...any) {
	w.Logger.Logf(lineLevel(format, args), format, args...)
}

func lineLevel(format string, args []any) logrus.Level {
	switch {
	case strings.Contains(format, "[error]"):
		return logrus.ErrorLevel
	case strings.Contains(format, "[warn]"):
		return logrus.WarnLevel
	case strings.Contains(format, "[info]"):
		return logrus.InfoLevel
	}
	for _, arg := range args {
		switch v := arg.(type) {
		case error:
			return logrus.ErrorLevel
		case string:
			if strings.HasPrefix(v, "SLOW SQL") {
				return logrus.WarnLevel
			}
		}
	}
	return logrus.DebugLevel
}
