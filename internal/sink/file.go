package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/matexport/internal/ctxlog"
)

// FileSink writes to a filesystem path. Data goes to a temporary file in the
// same directory first and is renamed into place, so a failed write never
// leaves a truncated document behind.
type FileSink struct {
	path string
}

// NewFileSink creates a sink for the given path as-is.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (s *FileSink) Location() string {
	return s.path
}

func (s *FileSink) Write(ctx context.Context, data []byte) (err error) {
	logger := ctxlog.FromContext(ctx)

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".matexport-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename into %s: %w", s.path, err)
	}

	logger.Debug("Document written to file.", "path", s.path, "bytes", len(data))
	return nil
}
