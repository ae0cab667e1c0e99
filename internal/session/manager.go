package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/GriffinCanCode/SandboxFS/internal/sandbox"
	"github.com/google/uuid"
)

// Info describes a sandbox session
type Info struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type entry struct {
	fs      *sandbox.FS
	root    string
	created time.Time
}

// Manager handles sandbox session lifecycle
type Manager struct {
	baseDir   string
	sandboxes sync.Map
}

// NewManager creates a session manager rooted at baseDir
func NewManager(baseDir string) (*Manager, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session base dir: %w", err)
	}
	return &Manager{baseDir: abs}, nil
}

// Create provisions a new sandbox session with its own root directory
func (m *Manager) Create() (Info, *sandbox.FS, error) {
	id := uuid.New().String()
	root := filepath.Join(m.baseDir, id)

	if err := os.MkdirAll(root, 0o700); err != nil {
		return Info{}, nil, fmt.Errorf("failed to create sandbox root: %w", err)
	}

	fs, err := sandbox.New(root)
	if err != nil {
		return Info{}, nil, fmt.Errorf("failed to create sandbox: %w", err)
	}

	e := &entry{fs: fs, root: root, created: time.Now()}
	m.sandboxes.Store(id, e)
	return Info{ID: id, CreatedAt: e.created}, fs, nil
}

// Get retrieves a session's sandbox by ID
func (m *Manager) Get(id string) (*sandbox.FS, bool) {
	val, ok := m.sandboxes.Load(id)
	if !ok {
		return nil, false
	}
	return val.(*entry).fs, true
}

// List returns all active sessions, oldest first
func (m *Manager) List() []Info {
	var infos []Info
	m.sandboxes.Range(func(key, value interface{}) bool {
		e := value.(*entry)
		infos = append(infos, Info{ID: key.(string), CreatedAt: e.created})
		return true
	})
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

// Destroy removes a session. With purge, the session's files are deleted
// from disk as well.
func (m *Manager) Destroy(id string, purge bool) error {
	val, ok := m.sandboxes.LoadAndDelete(id)
	if !ok {
		return fmt.Errorf("session not found: %s", id)
	}

	if purge {
		e := val.(*entry)
		if err := os.RemoveAll(e.root); err != nil {
			return fmt.Errorf("failed to purge session files: %w", err)
		}
	}
	return nil
}

// Stats returns session statistics
func (m *Manager) Stats() map[string]interface{} {
	count := 0
	m.sandboxes.Range(func(_, _ interface{}) bool {
		count++
		return true
	})
	return map[string]interface{}{
		"active_sessions": count,
		"base_dir":        m.baseDir,
	}
}
