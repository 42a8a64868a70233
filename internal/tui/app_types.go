package tui

type mode int

const (
	modeBrowse mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
	modeHelp
)

func modeToString(md mode) string {
	switch md {
	case modeAdd:
		return "add"
	case modeEdit:
		return "edit"
	case modeConfirmDelete:
		return "confirm-delete"
	case modeHelp:
		return "help"
	default:
		return "browse"
	}
}

type flashKind int

const (
	flashInfo flashKind = iota
	flashError
)

type flash struct {
	kind flashKind
	text string
}
