package logging

import (
	log "github.com/sirupsen/logrus"
)

// CommandLineFormatter renders just the log message, for CLI output meant to
// be read by humans rather than scraped.
type CommandLineFormatter struct{}

func (f *CommandLineFormatter) Format(entry *log.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}
