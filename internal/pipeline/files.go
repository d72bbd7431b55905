package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	dirMode        = 0o755
	fileMode       = 0o644
	copyBufferSize = 32 * 1024
)

// writeFile creates or truncates path and copies r into it through buf.
// Missing parent directories are created.
func writeFile(path string, r io.Reader, buf []byte) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if _, err := io.CopyBuffer(f, r, buf); err != nil {
		return fmt.Errorf("failed to copy data: %w", err)
	}

	return nil
}
