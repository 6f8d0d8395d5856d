package revaluation

import (
	"github.com/moisespsena-go/logging"
	path_helpers "github.com/moisespsena-go/path-helpers"
)

var log = logging.GetOrCreateLogger(path_helpers.GetCalledDirUp(0))

// SetLogger replace default logger
func SetLogger(logger logging.Logger) {
	log = logger
}

// Logger returns the package logger
func Logger() logging.Logger {
	return log
}
