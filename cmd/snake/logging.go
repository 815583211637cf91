package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/sirupsen/logrus"
)

const maxLogSize = 10 * 1024 * 1024 // 10MB

// setupLogging returns a logger writing to path when debug is set, discarding otherwise
// A log file above maxLogSize is moved to path.old first; the caller closes the returned file
func setupLogging(debug bool, path string) (*logrus.Logger, *os.File, error) {
	logger := logrus.New()
	if !debug {
		logger.SetOutput(io.Discard)
		return logger, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, eris.Wrap(err, "create log directory")
	}

	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, path+".old"); err != nil {
			return nil, nil, eris.Wrap(err, "rotate log file")
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, eris.Wrap(err, "open log file")
	}
	logger.SetOutput(f)

	// The terminal is owned by the game, so the level defaults to debug rather than info
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
	return logger, f, nil
}
