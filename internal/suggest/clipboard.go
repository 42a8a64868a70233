package suggest

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Copier puts text on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// ClipboardCopier uses the platform clipboard (pbcopy, clip, xclip/xsel/wl-copy).
type ClipboardCopier struct{}

func (ClipboardCopier) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	return clipboard.WriteAll(strings.ReplaceAll(text, "\r\n", "\n"))
}

type clipboardError string

func (e clipboardError) Error() string { return string(e) }

const ErrClipboardUnsupported = clipboardError("clipboard not available in this environment")

// CopierFunc adapts a func to Copier.
type CopierFunc func(string) error

func (f CopierFunc) Copy(text string) error { return f(text) }
