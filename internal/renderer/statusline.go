package renderer

import "fmt"

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// Status is the transient message shown in the status line. When no
// message is set the line falls back to cursor/offset information.
type Status struct {
	Message string
	Type    MessageType
}

// Info returns an informational status.
func Info(format string, args ...any) Status {
	return Status{Message: fmt.Sprintf(format, args...), Type: MessageInfo}
}

// Errorf returns an error status.
func Errorf(format string, args ...any) Status {
	return Status{Message: fmt.Sprintf(format, args...), Type: MessageError}
}

// Line formats the status line text for a frame.
func (s Status) Line(f Frame) string {
	if s.Type != MessageNone {
		if s.Type == MessageError {
			return "error: " + s.Message
		}
		return s.Message
	}
	return fmt.Sprintf("view 0x%08X  cursor (%d,%d)", f.ViewOffset, f.Cursor.X, f.Cursor.Y)
}
