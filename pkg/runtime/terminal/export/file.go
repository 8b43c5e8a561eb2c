package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// WriteFile renders the report into path, creating parent directories.
// The file is opened once, written and closed; a close failure is returned.
func WriteFile(path, format string, config Config, report *domain.Report) (err error) {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	handler, err := NewHandler(format, f, config)
	if err != nil {
		return err
	}
	return handler.Handle(report)
}
