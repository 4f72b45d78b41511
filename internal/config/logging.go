package config

import (
	"github.com/sirupsen/logrus"
)

// Apply configures a logrus logger from this section. Used both at
// startup and when the config watcher picks up a file change.
func (c LoggingConfig) Apply(logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)

	if c.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}
