package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/askiada/go-identicon/pkg/identicon"
)

// Writer stores encoded images.
type Writer interface {
	Write(ctx context.Context, name string, data []byte) error
}

// DirWriter writes files into a directory.
type DirWriter struct {
	dir  string
	perm os.FileMode
}

// NewDirWriter creates a writer for dir. The directory is created on the first write.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{
		dir:  dir,
		perm: 0o644,
	}
}

// Path returns the path of name.
func (w *DirWriter) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Write writes data to name, replacing any existing file.
func (w *DirWriter) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := w.Path(name)
	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return errors.Wrapf(identicon.ErrPersistenceFailure, "unable to create directory %s: %v", dir, err)
	}

	err = os.WriteFile(path, data, w.perm)
	if err != nil {
		return errors.Wrapf(identicon.ErrPersistenceFailure, "unable to write %s: %v", path, err)
	}

	return nil
}

var _ Writer = (*DirWriter)(nil)
