package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/skillverse/internal/filex"
	"github.com/google/uuid"
)

// Sink stores and retrieves snapshot blobs by key.
type Sink interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

// ObjectKey returns a fresh key of the form backups/YYYY/MM/DD/<uuid>.json.
func ObjectKey(now time.Time) string {
	d := now.UTC()
	return fmt.Sprintf("backups/%04d/%02d/%02d/%s.json", d.Year(), d.Month(), d.Day(), uuid.New())
}

// FileSink keeps snapshots under a local directory, mirroring the key
// layout.
type FileSink struct {
	Dir string
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

func (f *FileSink) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("backup key %q escapes the backup directory", key)
	}
	return filepath.Join(f.Dir, clean), nil
}

func (f *FileSink) Put(ctx context.Context, key string, data []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if _, err := filex.EnsureDir(filepath.Dir(p)); err != nil {
		return err
	}
	return filex.WriteFileAtomic(p, data)
}

// Get reads a key relative to Dir. A reference that is absolute or starts
// with "./" names a local file instead.
func (f *FileSink) Get(ctx context.Context, key string) ([]byte, error) {
	if isLocalPath(key) {
		data, err := os.ReadFile(key)
		if err != nil {
			return nil, fmt.Errorf("read backup %s: %w", key, err)
		}
		return data, nil
	}
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read backup %s: %w", key, err)
	}
	return data, nil
}

func isLocalPath(ref string) bool {
	return filepath.IsAbs(ref) ||
		strings.HasPrefix(ref, "./") ||
		strings.HasPrefix(ref, "."+string(filepath.Separator))
}
