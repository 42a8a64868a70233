package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"taskdeck/internal/model"
	"taskdeck/internal/tasklist"
)

// EncodeTasks serializes the collection in the durable wire form (a JSON array).
func EncodeTasks(tasks []model.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []model.Task{}
	}
	return json.Marshal(tasks)
}

// DecodeTasks parses the wire form. A JSON null decodes to an empty collection.
func DecodeTasks(b []byte) ([]model.Task, error) {
	var out []model.Task
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}

// Hydrate reads the tasks slot. Missing, unreadable or malformed data is
// treated as absent and yields an empty collection.
func Hydrate(ctx context.Context, slot Slot, logger *slog.Logger) []model.Task {
	if logger == nil {
		logger = slog.Default()
	}
	b, ok, err := slot.Get(ctx, SlotKeyTasks)
	if err != nil {
		logger.Warn("read tasks slot failed; starting empty", "err", err)
		return []model.Task{}
	}
	if !ok || len(b) == 0 {
		return []model.Task{}
	}
	tasks, err := DecodeTasks(b)
	if err != nil {
		logger.Warn("tasks slot is not a valid task list; starting empty", "err", err)
		return []model.Task{}
	}
	logger.Debug("hydrated tasks", "count", len(tasks))
	return tasks
}

// Persister writes the full collection to the tasks slot after every change
// to the collection. Writes are synchronous and not batched.
type Persister struct {
	slot   Slot
	logger *slog.Logger

	writes int
	err    error
}

func NewPersister(slot Slot, logger *slog.Logger) *Persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &Persister{slot: slot, logger: logger}
}

// Attach subscribes the persister to l and returns the unsubscribe func.
func (p *Persister) Attach(l *tasklist.List) func() {
	return l.Subscribe(p.onChange)
}

func (p *Persister) onChange(c tasklist.Change) {
	if !c.TasksChanged() {
		return
	}
	if err := p.Save(context.Background(), c.Tasks); err != nil {
		p.logger.Error("persist tasks failed", "op", string(c.Op), "id", c.ID, "err", err)
		return
	}
	p.logger.Debug("persisted tasks", "op", string(c.Op), "count", len(c.Tasks))
}

// Save overwrites the tasks slot with tasks. The outcome is kept in Err.
func (p *Persister) Save(ctx context.Context, tasks []model.Task) error {
	b, err := EncodeTasks(tasks)
	if err == nil {
		err = p.slot.Put(ctx, SlotKeyTasks, b)
	}
	if err != nil {
		p.err = fmt.Errorf("write %s slot: %w", SlotKeyTasks, err)
		return p.err
	}
	p.writes++
	p.err = nil
	return nil
}

// Err returns the error from the most recent write, if it failed.
func (p *Persister) Err() error { return p.err }

// Writes counts successful slot writes.
func (p *Persister) Writes() int { return p.writes }
