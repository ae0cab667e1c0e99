// Package session manages sandbox sessions.
//
// Each session owns one sandbox instance rooted at a per-session
// directory under a configured base directory. Sessions are identified
// by UUID and live until destroyed; destroying a session can optionally
// purge its files.
//
// Example Usage:
//
//	mgr, err := session.NewManager("/tmp/sandboxfs")
//	info, fs, err := mgr.Create()
//	fs, ok := mgr.Get(info.ID)
package session
