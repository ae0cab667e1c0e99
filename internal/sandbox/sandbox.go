package sandbox

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"unicode/utf8"
)

const dirMode = 0o700

// FS is a sandboxed filesystem: all operations are confined to a root
// directory chosen at construction. A mutable virtual cursor anchors
// relative paths; the cursor is guarded by a single mutex so concurrent
// callers never observe it mid-update.
type FS struct {
	root string

	mu      sync.Mutex
	current string
}

// Entry is one child of a listed directory.
type Entry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// File is the result of a successful read: content plus the
// sandbox-relative path echoed back.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// New creates a sandbox rooted at the given directory. The root must
// exist; it is canonicalized (symlinks resolved) so the containment check
// compares canonical paths on both sides. The cursor starts at the root.
func New(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("sandbox root is not a directory")
	}

	return &FS{root: resolved, current: resolved}, nil
}

// Root returns the real root path. For wiring only — tool surfaces must
// report sandbox-relative paths.
func (s *FS) Root() string {
	return s.root
}

// Rel converts a resolved path back to its sandbox-relative form.
func (s *FS) Rel(abs string) string {
	return s.rel(abs)
}

// Exists checks whether a path exists. Containment denials are returned
// as errors, not folded into false.
func (s *FS) Exists(path string) (bool, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return false, err
	}

	_, serr := os.Stat(target)
	if serr == nil {
		return true, nil
	}
	if errors.Is(serr, iofs.ErrNotExist) {
		return false, nil
	}
	return false, ioError(s.rel(target), serr)
}

// CurrentDir returns the cursor as a sandbox-relative path. Never fails.
func (s *FS) CurrentDir() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rel(s.current)
}

// ChangeDir moves the cursor. The mutation commits only when the target
// resolves inside the root, exists, and is a directory; any failure
// leaves the cursor unchanged.
func (s *FS) ChangeDir(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, rerr := s.resolveFrom(s.current, path)
	if rerr != nil {
		return "", rerr
	}

	info, err := os.Stat(target)
	if errors.Is(err, iofs.ErrNotExist) {
		return "", notFound(s.rel(target))
	}
	if err != nil {
		return "", ioError(s.rel(target), err)
	}
	if !info.IsDir() {
		return "", wrongType(s.rel(target), "not a directory")
	}

	s.current = target
	return s.rel(target), nil
}

// ListContents lists the immediate children of the cursor directory in
// name order. Fails if the cursor directory no longer exists (removed
// concurrently) or is no longer a directory.
func (s *FS) ListContents() ([]Entry, error) {
	s.mu.Lock()
	dir := s.current
	s.mu.Unlock()

	children, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, notFound(s.rel(dir))
		}
		if errors.Is(err, syscall.ENOTDIR) {
			return nil, wrongType(s.rel(dir), "not a directory")
		}
		return nil, ioError(s.rel(dir), err)
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		isDir := child.IsDir()
		if !isDir {
			// Follow symlinks so a link to a directory is tagged as one.
			if info, serr := os.Stat(filepath.Join(dir, child.Name())); serr == nil {
				isDir = info.IsDir()
			}
		}
		entries = append(entries, Entry{Name: child.Name(), IsDir: isDir})
	}
	return entries, nil
}

// MakeDir creates a directory and any missing parents with restrictive
// permissions. Idempotent when the directory already exists; returns the
// sandbox-relative path.
func (s *FS) MakeDir(path string) (string, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return "", err
	}

	if info, serr := os.Stat(target); serr == nil && !info.IsDir() {
		return "", wrongType(s.rel(target), "exists and is not a directory")
	}
	if merr := os.MkdirAll(target, dirMode); merr != nil {
		return "", ioError(s.rel(target), merr)
	}
	return s.rel(target), nil
}

// WriteFile writes content as UTF-8 bytes, creating missing parent
// directories and overwriting existing content in full. Returns the
// number of bytes written.
func (s *FS) WriteFile(path, content string) (int, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return 0, err
	}

	if info, serr := os.Stat(target); serr == nil && info.IsDir() {
		return 0, wrongType(s.rel(target), "is a directory")
	}
	if merr := os.MkdirAll(filepath.Dir(target), dirMode); merr != nil {
		return 0, ioError(s.rel(target), merr)
	}

	data := []byte(content)
	if werr := os.WriteFile(target, data, 0o600); werr != nil {
		return 0, ioError(s.rel(target), werr)
	}
	return len(data), nil
}

// ReadFile returns the full UTF-8 content of a file. Denied, directory,
// missing, and decode conditions are each a distinct error kind — never a
// silent empty result.
func (s *FS) ReadFile(path string) (File, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return File{}, err
	}
	rel := s.rel(target)

	info, serr := os.Stat(target)
	if errors.Is(serr, iofs.ErrNotExist) {
		return File{}, notFound(rel)
	}
	if serr != nil {
		return File{}, ioError(rel, serr)
	}
	if info.IsDir() {
		return File{}, wrongType(rel, "is a directory")
	}

	data, rerr := os.ReadFile(target)
	if rerr != nil {
		return File{}, ioError(rel, rerr)
	}
	if !utf8.Valid(data) {
		return File{}, decodeFailed(rel)
	}
	return File{Path: rel, Content: string(data)}, nil
}

// Remove deletes a file or empty directory and returns its
// sandbox-relative path.
func (s *FS) Remove(path string) (string, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return "", err
	}
	rel := s.rel(target)

	if rerr := os.Remove(target); rerr != nil {
		if errors.Is(rerr, iofs.ErrNotExist) {
			return "", notFound(rel)
		}
		return "", ioError(rel, rerr)
	}
	return rel, nil
}
