package sandbox

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolve maps a caller-supplied path to a canonical real path strictly
// inside the root, or returns a KindDenied error. Absolute inputs are
// reinterpreted as sandbox-absolute, relative inputs are anchored at the
// cursor. The containment check runs after symlink resolution, so a path
// that is lexically inside the root but links outside it is rejected.
func (s *FS) Resolve(path string) (string, error) {
	s.mu.Lock()
	base := s.current
	s.mu.Unlock()

	resolved, err := s.resolveFrom(base, path)
	if err != nil {
		return "", err
	}
	return resolved, nil
}

// resolveFrom is the resolution primitive: a pure function of
// (root, base, input). Callers supply the cursor snapshot as base.
func (s *FS) resolveFrom(base, input string) (string, *Error) {
	var anchored string
	if filepath.IsAbs(input) {
		// Strip the platform root component and re-anchor under the
		// sandbox root. "/etc/passwd" means "<root>/etc/passwd" here.
		trimmed := filepath.Clean(input)
		trimmed = strings.TrimPrefix(trimmed, filepath.VolumeName(trimmed))
		trimmed = strings.TrimLeft(trimmed, string(os.PathSeparator))
		anchored = filepath.Join(s.root, trimmed)
	} else {
		anchored = filepath.Join(base, input)
	}

	canon, err := canonical(anchored)
	if err != nil {
		return "", ioError(input, err)
	}

	if !s.within(canon) {
		return "", denied(input)
	}
	return canon, nil
}

// canonical resolves symlinks for a path that may not exist yet: the
// deepest existing ancestor is fully resolved and the missing remainder
// is re-attached lexically. MakeDir and WriteFile depend on this.
func canonical(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, iofs.ErrNotExist) {
		return "", err
	}

	p := filepath.Clean(path)
	suffix := ""
	for {
		parent := filepath.Dir(p)
		if parent == p {
			return "", err
		}
		suffix = filepath.Join(filepath.Base(p), suffix)
		p = parent

		resolved, rerr := filepath.EvalSymlinks(p)
		if rerr == nil {
			return filepath.Join(resolved, suffix), nil
		}
		if !errors.Is(rerr, iofs.ErrNotExist) {
			return "", rerr
		}
	}
}

// within reports whether abs is the root itself or a descendant of it.
// abs must already be canonical.
func (s *FS) within(abs string) bool {
	if abs == s.root {
		return true
	}
	return strings.HasPrefix(abs, s.root+string(os.PathSeparator))
}

// rel converts a canonical in-root path to its sandbox-relative form with
// a single leading separator. The root itself maps to "/".
func (s *FS) rel(abs string) string {
	if abs == s.root {
		return "/"
	}
	r, err := filepath.Rel(s.root, abs)
	if err != nil {
		return "/"
	}
	return "/" + filepath.ToSlash(r)
}
