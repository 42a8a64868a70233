package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	sqliteFileName = "taskdeck.sqlite"

	// Backend selection.
	//
	// Default: SQLite, unless the workspace already holds JSON slot files and no
	// SQLite db (so a JSON workspace keeps working without a flag).
	envBackend = "TASKDECK_BACKEND"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendJSON   Backend = "json"
)

// Store is a workspace directory holding the durable slots and UI state.
type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return fmt.Errorf("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) sqlitePath() string {
	return filepath.Join(s.Dir, sqliteFileName)
}

func (s Store) hasJSONSlots() bool {
	_, err := os.Stat(s.slotFilePath(SlotKeyTasks))
	return err == nil
}

func (s Store) hasSQLite() bool {
	_, err := os.Stat(s.sqlitePath())
	return err == nil
}

// Backend reports which slot implementation OpenSlot will use.
func (s Store) Backend() Backend {
	switch Backend(strings.ToLower(strings.TrimSpace(os.Getenv(envBackend)))) {
	case BackendJSON:
		return BackendJSON
	case BackendSQLite:
		return BackendSQLite
	}
	if s.hasJSONSlots() && !s.hasSQLite() {
		return BackendJSON
	}
	return BackendSQLite
}

// OpenSlot opens the workspace's durable key/value slot store.
func (s Store) OpenSlot(ctx context.Context) (Slot, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	switch s.Backend() {
	case BackendJSON:
		return FileSlot{Dir: s.Dir}, nil
	default:
		sl, err := OpenSQLiteSlot(ctx, s.sqlitePath())
		if err != nil {
			return nil, err
		}
		return sl, nil
	}
}
