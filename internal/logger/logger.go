package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	// The TUI owns the terminal, so nothing is written until Init
	// points the logger at a file.
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// Init directs log output to a file under dir and sets the level.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, "opensphere.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	log.SetOutput(f)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	return nil
}

// Debug logs a debug message
func Debug(msg string, fields ...map[string]interface{}) {
	if len(fields) > 0 {
		log.WithFields(fields[0]).Debug(msg)
	} else {
		log.Debug(msg)
	}
}

// Info logs an info message
func Info(msg string, fields ...map[string]interface{}) {
	if len(fields) > 0 {
		log.WithFields(fields[0]).Info(msg)
	} else {
		log.Info(msg)
	}
}

// Warn logs a warning message
func Warn(msg string, fields ...map[string]interface{}) {
	if len(fields) > 0 {
		log.WithFields(fields[0]).Warn(msg)
	} else {
		log.Warn(msg)
	}
}

// Error logs an error message
func Error(msg string, err error, fields ...map[string]interface{}) {
	if len(fields) > 0 {
		log.WithFields(fields[0]).WithError(err).Error(msg)
	} else {
		log.WithError(err).Error(msg)
	}
}
