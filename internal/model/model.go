package model

import "strings"

// Task is one to-do entry.
//
// The JSON shape is the durable wire form: {id, text, priority?, pinned, completed}.
type Task struct {
	ID        int64   `json:"id"`
	Text      string  `json:"text"`
	Priority  *string `json:"priority,omitempty"`
	Pinned    bool    `json:"pinned"`
	Completed bool    `json:"completed"`
}

// PriorityLabel returns the priority or "" when the task has none.
func (t Task) PriorityLabel() string {
	if t.Priority == nil {
		return ""
	}
	return *t.Priority
}

// HasPriority reports whether a priority label is set.
func (t Task) HasPriority() bool { return t.Priority != nil }

// Priority returns a pointer to p, or nil when p is blank.
func Priority(p string) *string {
	p = strings.TrimSpace(p)
	if p == "" {
		return nil
	}
	return &p
}

// ComparePriority orders tasks by priority label (byte-wise ascending).
// Tasks without a priority sort after every task that has one.
func ComparePriority(a, b Task) int {
	switch {
	case a.Priority == nil && b.Priority == nil:
		return 0
	case a.Priority == nil:
		return 1
	case b.Priority == nil:
		return -1
	}
	return strings.Compare(*a.Priority, *b.Priority)
}

// Clone returns a deep copy (the priority pointer is not shared).
func (t Task) Clone() Task {
	out := t
	if t.Priority != nil {
		p := *t.Priority
		out.Priority = &p
	}
	return out
}
