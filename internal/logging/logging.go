// Package logging is the sink for swallowed operation failures. The board
// never surfaces remote errors to the user, so this log is the only place
// they land.
package logging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

var (
	infoLogger  *log.Logger
	errorLogger *log.Logger
)

// Init routes log output to a dated file under dir. With an empty dir the
// package falls back to stderr, which keeps tests and ad-hoc runs quiet.
func Init(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("taskboard_%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	infoLogger = log.New(f, "[INFO] ", log.Ldate|log.Ltime)
	errorLogger = log.New(f, "[ERROR] ", log.Ldate|log.Ltime)
	return nil
}

func Info(format string, v ...any) {
	if infoLogger != nil {
		_ = infoLogger.Output(2, fmt.Sprintf(format, v...))
		return
	}
	log.Printf("[INFO] "+format, v...)
}

func Error(format string, v ...any) {
	if errorLogger != nil {
		_ = errorLogger.Output(2, fmt.Sprintf(format, v...))
		return
	}
	log.Printf("[ERROR] "+format, v...)
}
