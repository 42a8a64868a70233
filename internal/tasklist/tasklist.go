// Package tasklist owns the ordered task collection and the single edit focus.
//
// Every mutation replaces the collection with a new slice; slices handed out
// earlier (via Tasks or a Change) are never written to again. Subscribers are
// notified synchronously after each operation, which is how persistence and
// the UI learn about changes.
package tasklist

import (
	"slices"
	"time"

	"taskdeck/internal/model"
)

type Op string

const (
	OpAdd    Op = "add"
	OpDelete Op = "delete"
	OpToggle Op = "toggle"
	OpPin    Op = "pin"
	OpEdit   Op = "edit"
	OpSave   Op = "save"
	OpCancel Op = "cancel"
	OpSort   Op = "sort"
)

// Change describes a completed operation.
type Change struct {
	Op    Op
	ID    int64
	// Tasks is a copy of the collection after the op; writes to it never reach the list.
	Tasks []model.Task

	EditingID  int64
	HasEditing bool
}

// TasksChanged reports whether the op may have touched the collection.
// Edit focus transitions (edit/cancel) never do.
func (c Change) TasksChanged() bool {
	return c.Op != OpEdit && c.Op != OpCancel
}

type subscriber struct {
	id int
	fn func(Change)
}

type List struct {
	tasks []model.Task

	editing    int64
	hasEditing bool

	now    func() time.Time
	lastID int64

	subs   []subscriber
	nextID int
}

type Option func(*List)

// WithTasks seeds the collection (typically from hydration).
// Later duplicates of an id are dropped.
func WithTasks(tasks []model.Task) Option {
	return func(l *List) {
		seen := make(map[int64]bool, len(tasks))
		out := make([]model.Task, 0, len(tasks))
		for _, t := range tasks {
			if seen[t.ID] {
				continue
			}
			seen[t.ID] = true
			out = append(out, t.Clone())
			if t.ID > l.lastID {
				l.lastID = t.ID
			}
		}
		l.tasks = out
	}
}

// WithClock overrides the id clock.
func WithClock(now func() time.Time) Option {
	return func(l *List) {
		if now != nil {
			l.now = now
		}
	}
}

func New(opts ...Option) *List {
	l := &List{
		tasks: []model.Task{},
		now:   time.Now,
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Subscribe registers fn for every subsequent operation. The returned func
// removes the subscription.
func (l *List) Subscribe(fn func(Change)) func() {
	l.nextID++
	id := l.nextID
	l.subs = append(l.subs, subscriber{id: id, fn: fn})
	return func() {
		l.subs = slices.DeleteFunc(l.subs, func(s subscriber) bool { return s.id == id })
	}
}

func (l *List) emit(op Op, id int64) {
	c := Change{
		Op:         op,
		ID:         id,
		Tasks:      l.Tasks(),
		EditingID:  l.editing,
		HasEditing: l.hasEditing,
	}
	for _, s := range slices.Clone(l.subs) {
		s.fn(c)
	}
}

// Tasks returns a copy of the current collection.
func (l *List) Tasks() []model.Task {
	out := make([]model.Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}

func (l *List) Len() int { return len(l.tasks) }

func (l *List) Get(id int64) (model.Task, bool) {
	for _, t := range l.tasks {
		if t.ID == id {
			return t.Clone(), true
		}
	}
	return model.Task{}, false
}

// Editing returns the task id holding the edit focus, if any.
func (l *List) Editing() (int64, bool) {
	return l.editing, l.hasEditing
}

// nextTaskID derives an id from the clock in milliseconds, bumped past the
// last issued id so ids stay unique within a millisecond or across clock skew.
func (l *List) nextTaskID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

// Add appends a new, uncompleted task. Text is not validated.
func (l *List) Add(text string, priority *string, pinned bool) model.Task {
	t := model.Task{
		ID:       l.nextTaskID(),
		Text:     text,
		Priority: priority,
		Pinned:   pinned,
	}
	t = t.Clone()

	next := make([]model.Task, 0, len(l.tasks)+1)
	next = append(next, l.tasks...)
	next = append(next, t)
	l.tasks = next

	l.emit(OpAdd, t.ID)
	return t.Clone()
}

// Delete removes the task with id. Absent ids are a no-op.
func (l *List) Delete(id int64) {
	next := make([]model.Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	l.tasks = next
	l.emit(OpDelete, id)
}

// Toggle flips Completed on the matching task.
func (l *List) Toggle(id int64) {
	l.update(id, func(t *model.Task) { t.Completed = !t.Completed })
	l.emit(OpToggle, id)
}

// TogglePin flips Pinned on the matching task.
func (l *List) TogglePin(id int64) {
	l.update(id, func(t *model.Task) { t.Pinned = !t.Pinned })
	l.emit(OpPin, id)
}

// Edit moves the edit focus to id, discarding any previous focus unsaved.
func (l *List) Edit(id int64) {
	l.editing = id
	l.hasEditing = true
	l.emit(OpEdit, id)
}

// SaveEdited overwrites text and priority on the matching task and clears
// the edit focus, even when id is absent.
func (l *List) SaveEdited(id int64, text string, priority *string) {
	l.update(id, func(t *model.Task) {
		t.Text = text
		t.Priority = priority
	})
	l.editing = 0
	l.hasEditing = false
	l.emit(OpSave, id)
}

func (l *List) CancelEditing() {
	l.editing = 0
	l.hasEditing = false
	l.emit(OpCancel, 0)
}

// SortByPriority reorders the collection by ascending priority label.
// The sort is stable and tasks without a priority go last.
func (l *List) SortByPriority() {
	next := slices.Clone(l.tasks)
	if next == nil {
		next = []model.Task{}
	}
	slices.SortStableFunc(next, model.ComparePriority)
	l.tasks = next
	l.emit(OpSort, 0)
}

func (l *List) update(id int64, fn func(*model.Task)) {
	next := make([]model.Task, len(l.tasks))
	for i, t := range l.tasks {
		if t.ID == id {
			t = t.Clone()
			fn(&t)
		}
		next[i] = t
	}
	l.tasks = next
}
