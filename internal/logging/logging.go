// Package logging provides the shared prefixed loggers.
package logging

import (
	"log"
	"os"
)

var (
	// Info logs routine events to stdout.
	Info = log.New(os.Stdout, "[INFO] ", log.Ldate|log.Ltime)
	// Error logs failures to stderr.
	Error = log.New(os.Stderr, "[ERROR] ", log.Ldate|log.Ltime)
)
