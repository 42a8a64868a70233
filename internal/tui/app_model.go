package tui

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"taskdeck/internal/model"
	"taskdeck/internal/store"
	"taskdeck/internal/suggest"
	"taskdeck/internal/tasklist"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
)

// Options wires the app to an open workspace session.
type Options struct {
	Session   *store.Session
	Config    *store.GlobalConfig
	Logger    *slog.Logger
	Generator *suggest.Generator
	Copier    suggest.Copier

	// DarkMode forces the initial palette (nil: saved state, config, then terminal).
	DarkMode *bool
}

type appModel struct {
	store     store.Store
	tasks     *tasklist.List
	persister *store.Persister
	logger    *slog.Logger
	gen       *suggest.Generator
	copier    suggest.Copier

	width  int
	height int

	mode      mode
	darkMode  bool
	st        styles
	list      list.Model
	input     textinput.Model
	confirmID int64

	suggestion string
	flash      *flash

	uiState *store.TUIState
}

func newAppModel(opts Options) appModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	gen := opts.Generator
	if gen == nil {
		gen = suggest.Default()
	}

	m := appModel{
		store:     opts.Session.Store,
		tasks:     opts.Session.Tasks,
		persister: opts.Session.Persister,
		logger:    logger,
		gen:       gen,
		copier:    opts.Copier,
		mode:      modeBrowse,
	}

	// Best-effort: restore last UI state for this workspace.
	st, err := m.store.LoadTUIState()
	if err != nil {
		logger.Warn("load tui state failed", "err", err)
		st = &store.TUIState{Version: 1}
	}
	m.uiState = st
	m.darkMode = initialDarkMode(opts.DarkMode, st, opts.Config)
	m.suggestion = st.LastSuggestion
	m.st = newStyles(paletteFor(m.darkMode))

	m.input = textinput.New()
	m.input.Placeholder = "Task text !priority"
	m.input.CharLimit = 500
	m.input.Width = 60

	m.list = newList("Tasks", nil, newTaskDelegate(m.st, 0, false))
	m.list.SetSize(80, 20)
	m.refreshList()
	m.selectTaskID(st.SelectedTaskID)
	return m
}

func initialDarkMode(forced *bool, st *store.TUIState, cfg *store.GlobalConfig) bool {
	switch {
	case forced != nil:
		return *forced
	case st != nil && st.DarkMode != nil:
		return *st.DarkMode
	case cfg != nil && cfg.TUI != nil && cfg.TUI.DarkMode != nil:
		return *cfg.TUI.DarkMode
	default:
		return detectDarkBackground()
	}
}

// refreshList re-renders the list from the store, keeping the cursor on the same task.
func (m *appModel) refreshList() {
	curID, hadCur := m.selectedTaskID()
	editingID, editing := m.tasks.Editing()
	m.list.SetDelegate(newTaskDelegate(m.st, editingID, editing))
	m.list.SetItems(taskListItems(m.tasks.Tasks()))
	if hadCur {
		m.selectTaskID(curID)
	}
}

func (m *appModel) selectedTaskID() (int64, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return 0, false
	}
	return it.task.ID, true
}

func (m *appModel) selectTaskID(id int64) bool {
	if id == 0 {
		return false
	}
	for i, it := range m.list.Items() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.list.Select(i)
			return true
		}
	}
	return false
}

func (m *appModel) setDarkMode(dark bool) {
	m.darkMode = dark
	m.st = newStyles(paletteFor(dark))
	m.refreshList()
	d := dark
	m.uiState.DarkMode = &d
	m.saveUIState()
}

func (m *appModel) saveUIState() {
	if id, ok := m.selectedTaskID(); ok {
		m.uiState.SelectedTaskID = id
	}
	m.uiState.LastSuggestion = m.suggestion
	if err := m.store.SaveTUIState(m.uiState); err != nil {
		m.logger.Warn("save tui state failed", "err", err)
	}
}

func (m *appModel) resize() {
	// Header, suggestion, input, status and footer lines.
	h := m.height - 8
	if h < 4 {
		h = 4
	}
	w := m.width
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
	m.input.Width = w - 6
}

func (m *appModel) setFlash(kind flashKind, text string) {
	m.flash = &flash{kind: kind, text: text}
}

// checkPersisted surfaces a failed write-through as a status line.
func (m *appModel) checkPersisted() {
	if m.persister == nil {
		return
	}
	if err := m.persister.Err(); err != nil {
		m.setFlash(flashError, "not saved: "+err.Error())
	}
}

// parseTaskInput splits "text !priority" into text and an optional priority.
// Only a trailing "!word" counts; a lone "!" stays part of the text.
func parseTaskInput(s string) (string, *string) {
	s = strings.TrimSpace(s)
	idx := strings.LastIndex(s, " !")
	var candidate string
	switch {
	case idx >= 0:
		candidate = s[idx+2:]
	case strings.HasPrefix(s, "!"):
		candidate = s[1:]
		idx = -1
	default:
		return s, nil
	}
	if candidate == "" || strings.ContainsAny(candidate, " \t") {
		return s, nil
	}
	if idx < 0 {
		return "", model.Priority(candidate)
	}
	return strings.TrimSpace(s[:idx]), model.Priority(candidate)
}

func formatTaskInput(t model.Task) string {
	if t.HasPriority() && t.PriorityLabel() != "" {
		return t.Text + " !" + t.PriorityLabel()
	}
	return t.Text
}

func fmtID(id int64) string { return strconv.FormatInt(id, 10) }
