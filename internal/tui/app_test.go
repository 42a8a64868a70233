package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
	"taskdeck/internal/suggest"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type fakeCopier struct {
	got []string
	err error
}

func (f *fakeCopier) Copy(s string) error {
	f.got = append(f.got, s)
	return f.err
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func openSession(t *testing.T, dir string) *store.Session {
	t.Helper()
	t.Setenv("TASKDECK_BACKEND", "json")
	ss, err := store.Store{Dir: dir}.Open(context.Background(), quietLogger())
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	t.Cleanup(func() { _ = ss.Close() })
	return ss
}

func newTestModel(t *testing.T, dir string, copier suggest.Copier) appModel {
	t.Helper()
	light := false
	m := newAppModel(Options{
		Session:   openSession(t, dir),
		Logger:    quietLogger(),
		Generator: suggest.New(rand.NewPCG(1, 2)),
		Copier:    copier,
		DarkMode:  &light,
	})
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return mAny.(appModel)
}

func keyRunes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) appModel {
	t.Helper()
	for _, k := range keys {
		mAny, _ := m.Update(k)
		m = mAny.(appModel)
	}
	return m
}

func TestAddTask_FromInputWithPriority(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir, nil)

	m = press(t, m, keyRunes("a"))
	if m.mode != modeAdd {
		t.Fatalf("expected add mode; got %s", modeToString(m.mode))
	}
	m = press(t, m, keyRunes("Buy milk !high"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != modeBrowse {
		t.Fatalf("expected browse mode after enter; got %s", modeToString(m.mode))
	}
	tasks := m.tasks.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Buy milk" || tasks[0].PriorityLabel() != "high" || tasks[0].Completed {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if id, ok := m.selectedTaskID(); !ok || id != tasks[0].ID {
		t.Fatalf("expected new task to be selected")
	}

	// Write-through: a fresh hydrate sees the task.
	got := store.Hydrate(context.Background(), store.FileSlot{Dir: dir}, quietLogger())
	if len(got) != 1 || got[0].ID != tasks[0].ID {
		t.Fatalf("expected persisted task; got %+v", got)
	}
}

func TestToggle_Pin_Delete_Sort(t *testing.T) {
	m := newTestModel(t, t.TempDir(), nil)
	low := m.tasks.Add("l", model.Priority("low"), false)
	high := m.tasks.Add("h", model.Priority("high"), false)
	m.refreshList()
	m.selectTaskID(low.ID)

	m = press(t, m, keyRunes("x"))
	if got, _ := m.tasks.Get(low.ID); !got.Completed {
		t.Fatalf("expected completed after x")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if got, _ := m.tasks.Get(low.ID); got.Completed {
		t.Fatalf("expected space to toggle back")
	}

	m = press(t, m, keyRunes("p"))
	if got, _ := m.tasks.Get(low.ID); !got.Pinned {
		t.Fatalf("expected pinned after p")
	}

	m = press(t, m, keyRunes("s"))
	tasks := m.tasks.Tasks()
	if tasks[0].ID != high.ID || tasks[1].ID != low.ID {
		t.Fatalf("expected high before low after sort; got %+v", tasks)
	}
	if id, _ := m.selectedTaskID(); id != low.ID {
		t.Fatalf("expected selection to follow the task across sort")
	}

	// Delete needs confirmation; anything but y cancels.
	m = press(t, m, keyRunes("d"))
	if v := xansi.Strip(m.View()); !strings.Contains(v, `Delete "l (low)"?`) {
		t.Fatalf("expected delete prompt with task title; got:\n%s", v)
	}
	m = press(t, m, keyRunes("n"))
	if m.tasks.Len() != 2 {
		t.Fatalf("expected delete to be cancelled")
	}
	m = press(t, m, keyRunes("d"), keyRunes("y"))
	if _, ok := m.tasks.Get(low.ID); ok || m.tasks.Len() != 1 {
		t.Fatalf("expected low to be deleted; got %+v", m.tasks.Tasks())
	}
}

func TestEdit_SaveAndCancel(t *testing.T) {
	m := newTestModel(t, t.TempDir(), nil)
	tk := m.tasks.Add("Buy milk", model.Priority("high"), false)
	m.refreshList()
	m.selectTaskID(tk.ID)

	m = press(t, m, keyRunes("e"))
	if id, ok := m.tasks.Editing(); !ok || id != tk.ID {
		t.Fatalf("expected edit focus on %d", tk.ID)
	}
	if got := m.input.Value(); got != "Buy milk !high" {
		t.Fatalf("expected prefilled input; got %q", got)
	}

	m.input.SetValue("Buy oat milk")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.tasks.Editing(); ok {
		t.Fatalf("expected edit focus cleared after save")
	}
	got, _ := m.tasks.Get(tk.ID)
	if got.Text != "Buy oat milk" || got.Priority != nil {
		t.Fatalf("unexpected task after save: %+v", got)
	}

	m = press(t, m, keyRunes("e"))
	m.input.SetValue("discarded")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := m.tasks.Editing(); ok {
		t.Fatalf("expected edit focus cleared after esc")
	}
	if got, _ := m.tasks.Get(tk.ID); got.Text != "Buy oat milk" {
		t.Fatalf("expected cancel to keep text; got %q", got.Text)
	}
}

func TestDarkMode_TogglePersistsAndRestores(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, dir, nil)
	if m.darkMode {
		t.Fatalf("expected forced light start")
	}
	m = press(t, m, keyRunes("t"))
	if !m.darkMode {
		t.Fatalf("expected dark mode after t")
	}
	if !strings.Contains(xansi.Strip(m.View()), "Dark Mode [x]") {
		t.Fatalf("expected header to show dark mode on")
	}

	st, err := store.Store{Dir: dir}.LoadTUIState()
	if err != nil {
		t.Fatalf("LoadTUIState: %v", err)
	}
	if st.DarkMode == nil || !*st.DarkMode {
		t.Fatalf("expected saved dark mode; got %#v", st)
	}

	restored := newAppModel(Options{Session: openSession(t, dir), Logger: quietLogger()})
	if !restored.darkMode {
		t.Fatalf("expected dark mode restored from tui state")
	}
}

func TestSuggestion_RandomCopyAndAdd(t *testing.T) {
	cp := &fakeCopier{}
	m := newTestModel(t, t.TempDir(), cp)

	m = press(t, m, keyRunes("c"))
	if m.flash == nil || !strings.Contains(m.flash.text, "No suggestion") {
		t.Fatalf("expected hint when nothing to copy")
	}

	m = press(t, m, keyRunes("r"))
	if !slices.Contains(suggest.Phrases(), m.suggestion) {
		t.Fatalf("unexpected suggestion %q", m.suggestion)
	}
	if !strings.Contains(xansi.Strip(m.View()), m.suggestion) {
		t.Fatalf("expected suggestion in view")
	}

	mAny, cmd := m.Update(keyRunes("c"))
	m = mAny.(appModel)
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	mAny, _ = m.Update(cmd())
	m = mAny.(appModel)
	if len(cp.got) != 1 || cp.got[0] != m.suggestion {
		t.Fatalf("expected copier to receive suggestion; got %v", cp.got)
	}
	if m.flash == nil || m.flash.kind != flashInfo {
		t.Fatalf("expected copied flash")
	}

	m = press(t, m, keyRunes("A"))
	tasks := m.tasks.Tasks()
	if len(tasks) != 1 || tasks[0].Text != m.suggestion {
		t.Fatalf("expected suggestion added as task; got %+v", tasks)
	}
}

func TestSuggestion_CopyFailureOnlyFlashes(t *testing.T) {
	cp := &fakeCopier{err: errors.New("no clipboard")}
	m := newTestModel(t, t.TempDir(), cp)
	m = press(t, m, keyRunes("r"))

	_, cmd := m.Update(keyRunes("c"))
	mAny, _ := m.Update(cmd())
	m = mAny.(appModel)
	if m.flash == nil || m.flash.kind != flashError {
		t.Fatalf("expected error flash")
	}
	if m.tasks.Len() != 0 {
		t.Fatalf("copy failure must not touch tasks")
	}
}

func TestHelp_RendersAndReturns(t *testing.T) {
	m := newTestModel(t, t.TempDir(), nil)
	m = press(t, m, keyRunes("?"))
	if m.mode != modeHelp {
		t.Fatalf("expected help mode")
	}
	if v := xansi.Strip(m.View()); !strings.Contains(v, "Sort by priority") {
		t.Fatalf("expected help text; got:\n%s", v)
	}
	m = press(t, m, keyRunes("z"))
	if m.mode != modeBrowse {
		t.Fatalf("expected any key to leave help")
	}
}

func TestParseTaskInput(t *testing.T) {
	cases := []struct {
		in       string
		text     string
		priority string
	}{
		{"Buy milk", "Buy milk", ""},
		{"Buy milk !high", "Buy milk", "high"},
		{"  Buy milk !2  ", "Buy milk", "2"},
		{"!high", "", "high"},
		{"Wow !", "Wow !", ""},
		{"a ! b", "a ! b", ""},
		{"", "", ""},
	}
	for _, tc := range cases {
		text, p := parseTaskInput(tc.in)
		gotP := ""
		if p != nil {
			gotP = *p
		}
		if text != tc.text || gotP != tc.priority {
			t.Fatalf("parseTaskInput(%q) = %q,%q; want %q,%q", tc.in, text, gotP, tc.text, tc.priority)
		}
	}
}
