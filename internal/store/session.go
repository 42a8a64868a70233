package store

import (
	"context"
	"log/slog"

	"taskdeck/internal/tasklist"
)

// Session is an open workspace: a hydrated task list wired to its durable slot.
type Session struct {
	Store     Store
	Slot      Slot
	Tasks     *tasklist.List
	Persister *Persister

	detach func()
}

// Open hydrates the task list from the workspace slot and attaches a
// persister, so every later mutation is written through.
func (s Store) Open(ctx context.Context, logger *slog.Logger, opts ...tasklist.Option) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	backend := s.Backend()
	slot, err := s.OpenSlot(ctx)
	if err != nil {
		return nil, err
	}
	tasks := Hydrate(ctx, slot, logger)
	list := tasklist.New(append([]tasklist.Option{tasklist.WithTasks(tasks)}, opts...)...)
	p := NewPersister(slot, logger.With("backend", string(backend)))
	return &Session{
		Store:     s,
		Slot:      slot,
		Tasks:     list,
		Persister: p,
		detach:    p.Attach(list),
	}, nil
}

func (ss *Session) Close() error {
	if ss == nil {
		return nil
	}
	if ss.detach != nil {
		ss.detach()
		ss.detach = nil
	}
	return ss.Slot.Close()
}
