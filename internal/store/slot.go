package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SlotKeyTasks is the durable slot holding the serialized task collection.
const SlotKeyTasks = "tasks"

// Slot is a durable key/value store. Put overwrites; last writer wins.
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

// FileSlot stores each key as <Dir>/<key>.json.
type FileSlot struct {
	Dir string
}

func (s Store) slotFilePath(key string) string {
	return FileSlot{Dir: s.Dir}.path(key)
}

func (f FileSlot) path(key string) string {
	return filepath.Join(f.Dir, key+".json")
}

func validSlotKey(key string) error {
	if strings.TrimSpace(key) == "" || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("invalid slot key: %q", key)
	}
	return nil
}

func (f FileSlot) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := validSlotKey(key); err != nil {
		return nil, false, err
	}
	b, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (f FileSlot) Put(_ context.Context, key string, value []byte) error {
	if err := validSlotKey(key); err != nil {
		return err
	}
	return atomicWriteFile(f.Dir, key+".json.*.tmp", f.path(key), value, 0o644)
}

func (FileSlot) Close() error { return nil }
