package console

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rxtech-lab/argo-console/pkg/errors"
)

// appendLine appends line to the file selected by r for the day of now,
// creating logDir first when needed.
func appendLine(logDir string, r route, now time.Time, line string) error {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return errors.NewLogFileError(errors.ErrCodeLogDirCreateFailed, logDir, r.bySymbol, err)
	}

	path := filepath.Join(logDir, FileName(r.key, now))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewLogFileError(errors.ErrCodeLogFileOpenFailed, path, r.bySymbol, err)
	}

	_, err = io.WriteString(f, line+"\n")
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		return errors.NewLogFileError(errors.ErrCodeLogFileAppendFailed, path, r.bySymbol, err)
	}

	return nil
}

// fallbackWriter reports persistence failures straight to the terminal.
// It never goes through Coordinator.Log so a failing filesystem cannot
// trigger another log transaction.
type fallbackWriter struct {
	w io.Writer
}

func newFallbackWriter(w io.Writer) *fallbackWriter {
	return &fallbackWriter{w: w}
}

func (f *fallbackWriter) report(err error) {
	target := "log file"

	var fileErr *errors.LogFileError
	if errors.As(err, &fileErr) && fileErr.BySymbol {
		target = "symbol log file"
	}

	_, _ = fmt.Fprintf(f.w, "Error writing to %s: %v\n", target, err)
}
