// Package key translates backend input events into editor commands.
package key

import (
	"github.com/dshills/hexstorm/internal/engine/grid"
	"github.com/dshills/hexstorm/internal/engine/view"
	"github.com/dshills/hexstorm/internal/renderer/backend"
)

// Kind identifies an editor command.
type Kind int

const (
	// KindNone means the event maps to no command.
	KindNone Kind = iota
	// KindMoveCursor moves the cursor by cell deltas.
	KindMoveCursor
	// KindScrollPage scrolls the viewport a page in a direction.
	KindScrollPage
	// KindOpen prompts for a file to open.
	KindOpen
	// KindSave persists the buffer.
	KindSave
	// KindEdit prompts for a hex value for the byte under the cursor.
	KindEdit
	// KindTransform applies a named Lua transform to the cursor byte.
	KindTransform
	// KindQuit exits the editor.
	KindQuit
	// KindWake re-checks out-of-band state such as watcher notices.
	KindWake
	// KindResize reflows the display to new dimensions.
	KindResize
)

// String returns the command kind name.
func (k Kind) String() string {
	switch k {
	case KindMoveCursor:
		return "move-cursor"
	case KindScrollPage:
		return "scroll-page"
	case KindOpen:
		return "open"
	case KindSave:
		return "save"
	case KindEdit:
		return "edit"
	case KindTransform:
		return "transform"
	case KindQuit:
		return "quit"
	case KindWake:
		return "wake"
	case KindResize:
		return "resize"
	default:
		return "none"
	}
}

// Command is one decoded editor command.
type Command struct {
	Kind Kind

	// DX, DY are cell deltas for KindMoveCursor.
	DX, DY int

	// Dir is the direction for KindScrollPage.
	Dir view.Direction

	// Width, Height carry the new size for KindResize.
	Width, Height int
}

// Translate decodes a backend event into a command. Horizontal cursor
// movement is premultiplied by the layout's cells-per-byte so the
// cursor always lands on a byte's first digit column.
func Translate(ev backend.Event, l grid.Layout) (Command, bool) {
	switch ev.Type {
	case backend.EventResize:
		return Command{Kind: KindResize, Width: ev.Width, Height: ev.Height}, true

	case backend.EventWake:
		return Command{Kind: KindWake}, true

	case backend.EventKey:
		return translateKey(ev, l)

	default:
		return Command{}, false
	}
}

func translateKey(ev backend.Event, l grid.Layout) (Command, bool) {
	switch ev.Key {
	case backend.KeyUp:
		return Command{Kind: KindMoveCursor, DY: -1}, true
	case backend.KeyDown:
		return Command{Kind: KindMoveCursor, DY: 1}, true
	case backend.KeyLeft:
		return Command{Kind: KindMoveCursor, DX: -l.ColumnsPerByte}, true
	case backend.KeyRight:
		return Command{Kind: KindMoveCursor, DX: l.ColumnsPerByte}, true
	case backend.KeyPageUp:
		return Command{Kind: KindScrollPage, Dir: view.Backward}, true
	case backend.KeyPageDown:
		return Command{Kind: KindScrollPage, Dir: view.Forward}, true
	case backend.KeyEnter:
		return Command{Kind: KindEdit}, true
	case backend.KeyCtrlC:
		return Command{Kind: KindQuit}, true
	case backend.KeyRune:
		return translateRune(ev.Rune)
	default:
		return Command{}, false
	}
}

func translateRune(r rune) (Command, bool) {
	switch r {
	case 'o', 'O':
		return Command{Kind: KindOpen}, true
	case 's', 'S':
		return Command{Kind: KindSave}, true
	case 'x', 'X':
		return Command{Kind: KindTransform}, true
	case 'q', 'Q':
		return Command{Kind: KindQuit}, true
	default:
		return Command{}, false
	}
}
