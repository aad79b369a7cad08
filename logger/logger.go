// Package logger holds the process-wide logrus logger. Systems derive scoped
// entries from Log with WithFields instead of creating their own loggers.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	Log.SetLevel(logrus.InfoLevel)
}

// Init applies the command line logging options. An unknown level keeps the
// current one and is reported.
func Init(level string, json bool) {
	if json {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}
	if level == "" {
		return
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		Log.WithField("level", level).Warn("unknown log level, keeping info")
		return
	}
	Log.SetLevel(lvl)
}
