// Package filesystem provides the production application.FileSystem: a
// thin wrapper over os that the streaming protocol uses instead of
// touching the standard library directly, keeping file-system I/O the one
// swappable seam the design calls for.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/samir0909/flyingcarpet/application"
)

// OS is the default, os-backed application.FileSystem.
type OS struct{}

func New() OS { return OS{} }

func (OS) OpenRead(path string) (application.ChunkedReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &osReader{f: f}, nil
}

func (OS) CreateForWrite(root, relPath string) (application.ChunkedWriter, error) {
	full := filepath.Join(root, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(full, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

type osReader struct {
	f *os.File
}

func (r *osReader) Read(p []byte) (int, error) { return r.f.Read(p) }
func (r *osReader) Close() error                { return r.f.Close() }

func (r *osReader) Size() (int64, error) {
	info, err := r.f.Stat()
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
