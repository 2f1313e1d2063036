package transfer

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/samir0909/flyingcarpet/application"
)

// memFS is an in-memory application.FileSystem used to exercise the
// streaming protocol without touching a real disk.
type memFS struct {
	mu      sync.Mutex
	files   map[string][]byte // source files, keyed by the path passed to OpenRead
	written map[string][]byte // files written via CreateForWrite, keyed by root-joined relative path
}

func newMemFS() *memFS {
	return &memFS{
		files:   map[string][]byte{},
		written: map[string][]byte{},
	}
}

func (m *memFS) put(path string, content []byte) {
	m.files[path] = content
}

func (m *memFS) OpenRead(path string) (application.ChunkedReader, error) {
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return &memReader{r: bytes.NewReader(content), size: int64(len(content))}, nil
}

func (m *memFS) CreateForWrite(root, relPath string) (application.ChunkedWriter, error) {
	key := filepath.ToSlash(filepath.Join(root, filepath.FromSlash(relPath)))
	return &memWriter{fs: m, key: key}, nil
}

func (m *memFS) get(root, relPath string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := filepath.ToSlash(filepath.Join(root, filepath.FromSlash(relPath)))
	b, ok := m.written[key]
	return b, ok
}

type memReader struct {
	r    *bytes.Reader
	size int64
}

func (r *memReader) Read(p []byte) (int, error) { return r.r.Read(p) }
func (r *memReader) Close() error                { return nil }
func (r *memReader) Size() (int64, error)        { return r.size, nil }

type memWriter struct {
	fs  *memFS
	key string
	buf bytes.Buffer
}

func (w *memWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memWriter) Close() error {
	w.fs.mu.Lock()
	defer w.fs.mu.Unlock()
	w.fs.written[w.key] = append([]byte(nil), w.buf.Bytes()...)
	return nil
}

var _ io.WriteCloser = (*memWriter)(nil)
