package sandbox

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DirectoryTree enumerates every directory reachable under path and maps
// its sandbox-relative location to a newline-joined listing of immediate
// children, subdirectories tagged "(dir)". Symlinked directories are
// followed when their canonical target stays inside the root; visited
// canonical directories are tracked per walk so self-referential links
// terminate instead of looping.
func (s *FS) DirectoryTree(path string) (map[string]string, error) {
	target, err := s.Resolve(path)
	if err != nil {
		return nil, err
	}
	rel := s.rel(target)

	info, serr := os.Stat(target)
	if errors.Is(serr, iofs.ErrNotExist) {
		return nil, notFound(rel)
	}
	if serr != nil {
		return nil, ioError(rel, serr)
	}
	if !info.IsDir() {
		return nil, wrongType(rel, "not a directory")
	}

	tree := make(map[string]string)
	visited := make(map[string]struct{})
	s.walkTree(target, tree, visited)
	return tree, nil
}

func (s *FS) walkTree(dir string, tree map[string]string, visited map[string]struct{}) {
	if _, seen := visited[dir]; seen {
		return
	}
	visited[dir] = struct{}{}

	children, err := os.ReadDir(dir)
	if err != nil {
		// Directory vanished mid-walk; its parent already listed it.
		return
	}

	var files, dirs, descend []string
	for _, child := range children {
		full := filepath.Join(dir, child.Name())

		info, serr := os.Stat(full)
		if serr != nil {
			// Broken symlink or concurrent removal: list by name only.
			files = append(files, child.Name())
			continue
		}

		if !info.IsDir() {
			files = append(files, child.Name())
			continue
		}

		dirs = append(dirs, child.Name()+" (dir)")
		canon, cerr := filepath.EvalSymlinks(full)
		if cerr == nil && s.within(canon) {
			descend = append(descend, canon)
		}
	}

	listing := append(append([]string{}, files...), dirs...)
	tree[s.rel(dir)] = strings.Join(listing, "\n")

	for _, sub := range descend {
		s.walkTree(sub, tree, visited)
	}
}
