package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Directories are
// implied by the files stored beneath them, plus any added with AddDir.
type MockFileSystem struct {
	mu    sync.Mutex
	files map[string][]byte
	dirs  map[string]bool

	// ReadErr, WriteErr and StatErr force the matching call to fail for the
	// given path.
	ReadErr  map[string]error
	WriteErr map[string]error
	StatErr  map[string]error

	// Writes records every path passed to WriteFile, in call order.
	Writes []string
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:    make(map[string][]byte),
		dirs:     make(map[string]bool),
		ReadErr:  make(map[string]error),
		WriteErr: make(map[string]error),
		StatErr:  make(map[string]error),
	}
}

// Ensure MockFileSystem implements FileSystem.
var _ FileSystem = (*MockFileSystem)(nil)

// SetFile stores data at path, creating parent directories implicitly.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[filepath.Clean(path)] = data
}

// GetFile returns the data stored at path.
func (m *MockFileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filepath.Clean(path)]
	return data, ok
}

// AddDir registers an empty directory.
func (m *MockFileSystem) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[filepath.Clean(path)] = true
}

func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.ReadErr[path]; err != nil {
		return nil, err
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *MockFileSystem) WriteFile(ctx context.Context, path string, data []byte, _ os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.WriteErr[path]; err != nil {
		return err
	}
	if !m.isDirLocked(filepath.Dir(path)) {
		return &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	m.files[path] = out
	m.Writes = append(m.Writes, path)
	return nil
}

func (m *MockFileSystem) Stat(ctx context.Context, path string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.StatErr[path]; err != nil {
		return nil, err
	}
	if data, ok := m.files[path]; ok {
		return mockFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.isDirLocked(path) {
		return mockFileInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

// ReadDir lists the immediate children of path sorted by name, like os.ReadDir.
func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	if err := m.ReadErr[path]; err != nil {
		return nil, err
	}
	if !m.isDirLocked(path) {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	children := make(map[string]bool) // name -> isDir
	collect := func(p string, isDir bool) {
		rel, ok := childOf(path, p)
		if !ok {
			return
		}
		name, rest, nested := strings.Cut(rel, string(filepath.Separator))
		if nested && rest != "" {
			children[name] = true
			return
		}
		if _, seen := children[name]; !seen {
			children[name] = isDir
		}
	}
	for p := range m.files {
		collect(p, false)
	}
	for p := range m.dirs {
		collect(p, true)
	}

	names := make([]string, 0, len(children))
	for name := range children {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]os.DirEntry, 0, len(names))
	for _, name := range names {
		info := mockFileInfo{name: name, dir: children[name]}
		if !info.dir {
			info.size = int64(len(m.files[filepath.Join(path, name)]))
		}
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries, nil
}

// isDirLocked reports whether path is the root, a registered directory or
// an ancestor of any stored file. Callers must hold m.mu.
func (m *MockFileSystem) isDirLocked(path string) bool {
	if path == "." || path == string(filepath.Separator) || m.dirs[path] {
		return true
	}
	for p := range m.files {
		if _, ok := childOf(path, p); ok {
			return true
		}
	}
	for p := range m.dirs {
		if _, ok := childOf(path, p); ok {
			return true
		}
	}
	return false
}

// childOf returns p relative to dir when p lies strictly beneath dir.
func childOf(dir, p string) (string, bool) {
	if dir == "." {
		if filepath.IsAbs(p) || p == "." {
			return "", false
		}
		return p, true
	}
	prefix := dir
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	if !strings.HasPrefix(p, prefix) || p == prefix {
		return "", false
	}
	return strings.TrimPrefix(p, prefix), true
}

type mockFileInfo struct {
	name string
	size int64
	dir  bool
}

func (i mockFileInfo) Name() string { return i.name }
func (i mockFileInfo) Size() int64  { return i.size }
func (i mockFileInfo) Mode() os.FileMode {
	if i.dir {
		return fs.ModeDir | PermDir
	}
	return PermFile
}
func (i mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i mockFileInfo) IsDir() bool        { return i.dir }
func (i mockFileInfo) Sys() any           { return nil }
