package logs

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared application logger. Init configures it once at
// startup; the zero configuration logs text at info level to stderr.
var Logger = logrus.New()

type Options struct {
	Level  string // trace|debug|info|warn|error
	Format string // "json" or "text"
	File   string // optional log file; empty = stderr
}

func Init(o Options) {
	lvl, err := logrus.ParseLevel(o.Level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Logger.SetLevel(lvl)

	if o.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if o.File != "" {
		f, ferr := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if ferr != nil {
			Logger.Warnf("log file %s: %v, falling back to stderr", o.File, ferr)
			return
		}
		Logger.SetOutput(io.MultiWriter(os.Stderr, f))
	}
}
