package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/flipdeck/internal/logger"
	"github.com/julianstephens/flipdeck/internal/storage"
)

// Format formats an error message with a consistent "Error: " prefix.
// Known storage errors get a follow-up hint on a second line.
func Format(err error) string {
	if err == nil {
		return ""
	}
	msg := fmt.Sprintf("Error: %v", err)
	if hint := Hint(err); hint != "" {
		msg += "\n" + hint
	}
	return msg
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Hint returns a suggestion for errors the user can fix themselves
func Hint(err error) string {
	switch {
	case stderrors.Is(err, storage.ErrNotInitialized):
		return "Hint: run 'flipdeck init' to create the progress database."
	case stderrors.Is(err, storage.ErrAlreadyInitialized):
		return "Hint: pass --force to start over with empty progress."
	}
	return ""
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
