package scaffold

import (
	"io/fs"
	"os"

	"github.com/vertti/oauthprep/pkg/filecheck"
)

// FileSystem abstracts the file operations the scaffolder needs.
type FileSystem interface {
	filecheck.FileSystem
	WriteFile(name string, data []byte, perm fs.FileMode) error
	Remove(name string) error
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct {
	filecheck.RealFileSystem
}

// WriteFile creates name exclusively; an existing file is never truncated.
// A file this call created is removed again if writing it fails.
func (r *RealFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm) //nolint:gosec // path comes from project config
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(name)
		return err
	}
	return nil
}

// Remove deletes name.
func (r *RealFileSystem) Remove(name string) error {
	return os.Remove(name)
}
