// Package backend abstracts the terminal so the renderer and the event
// loop can be tested without a real screen.
package backend

// EventType identifies the kind of backend event.
type EventType int

const (
	// EventNone is an event that requires no handling.
	EventNone EventType = iota
	// EventKey is a key press.
	EventKey
	// EventResize is a terminal size change.
	EventResize
	// EventWake is posted from another goroutine to nudge the event
	// loop, for example when the file watcher sees an external change.
	EventWake
)

// Key identifies a special key.
type Key int

const (
	// KeyNone means no special key.
	KeyNone Key = iota
	// KeyRune is a printable character key; the rune carries the value.
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyCtrlC
)

// Event is a single input event delivered by the backend.
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Width  int
	Height int
}

// Style is the subset of terminal styling the editor uses.
type Style struct {
	Bold    bool
	Reverse bool
}

// StyleDefault is the unstyled cell style.
var StyleDefault = Style{}

// StyleCursor is the style for the byte under the cursor.
var StyleCursor = Style{Reverse: true}

// StyleHeader is the style for header and status text.
var StyleHeader = Style{Bold: true}

// Backend is a character-cell output device plus an input event source.
type Backend interface {
	// Init prepares the device for use.
	Init() error

	// Fini restores the device to its original state.
	Fini()

	// Size returns the device dimensions in cells.
	Size() (width, height int)

	// Clear blanks the whole device.
	Clear()

	// SetCell places a rune at the given cell.
	SetCell(x, y int, r rune, style Style)

	// Show makes all cell changes since the last Show visible.
	Show()

	// PollEvent blocks until the next event is available.
	PollEvent() Event

	// PostWake queues an EventWake. Safe to call from any goroutine.
	PostWake()

	// Beep sounds the terminal bell, best effort.
	Beep()
}
