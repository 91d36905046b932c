package dram

import "github.com/sirupsen/logrus"

// configureLogging applies level to the package's shared logrus logger.
// An empty or unrecognized level leaves the current configuration in
// place rather than failing New outright.
func configureLogging(level string) {
	if level == "" {
		return
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("log_level", level).Warn("dram: ignoring unrecognized log level")
		return
	}
	logrus.SetLevel(parsed)
}
