// Package sandbox implements the containment-checked filesystem core.
//
// An FS owns a root boundary and a virtual current-directory cursor. Every
// caller-supplied path is resolved against that boundary before any I/O:
//   - Absolute inputs are re-anchored under the root (sandbox-absolute)
//   - Relative inputs are anchored under the cursor
//   - The anchored path is canonicalized (symlinks followed) and then
//     checked for containment — symlink targets outside the root are
//     rejected the same as ".." escapes
//
// Operations:
//   - Exists, CurrentDir, ChangeDir, ListContents
//   - MakeDir, WriteFile, ReadFile, Remove
//   - DirectoryTree (follows symlinked directories, cycle-guarded)
//
// All failures are typed *Error values carrying a kind (denied, not_found,
// wrong_type, decode, io) and the sandbox-relative path. Real filesystem
// locations never leave the package.
//
// Example Usage:
//
//	fs, err := sandbox.New("/tmp/workspace")
//	n, err := fs.WriteFile("notes/a.txt", "hello")
//	file, err := fs.ReadFile("notes/a.txt")
package sandbox
