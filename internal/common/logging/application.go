package logging

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// ConfigureCliLogging sets up logging suitable for a CLI: plain text written
// to stdout, with no timestamps or log levels cluttering the output.
func ConfigureCliLogging() {
	formatter := &CommandLineFormatter{}
	log.SetFormatter(formatter)
	log.SetOutput(os.Stdout)
}

// ConfigureServerLogging sets up logging suitable for a long-running process:
// full timestamps, written to stdout, level taken from ORCHBENCH_LOG_LEVEL if
// set.
func ConfigureServerLogging() {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	log.SetOutput(os.Stdout)

	if levelStr, ok := os.LookupEnv("ORCHBENCH_LOG_LEVEL"); ok {
		if level, err := log.ParseLevel(levelStr); err == nil {
			log.SetLevel(level)
		}
	}
}
