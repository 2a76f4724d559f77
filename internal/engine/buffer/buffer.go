package buffer

import (
	"sync/atomic"
)

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
// This is thread-safe using atomic operations.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer holds the bytes of one open file.
type Buffer struct {
	data       []byte
	path       string
	modified   bool
	revisionID RevisionID
}

// New creates an empty buffer with no backing file.
func New() *Buffer {
	return &Buffer{
		revisionID: NewRevisionID(),
	}
}

// Load replaces the buffer content with bytes read from path and clears
// the modified flag. The buffer takes ownership of data.
func (b *Buffer) Load(data []byte, path string) {
	b.data = data
	b.path = path
	b.modified = false
	b.revisionID = NewRevisionID()
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// ByteAt returns the byte at offset, or false when offset is out of
// range.
func (b *Buffer) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(b.data) {
		return 0, false
	}
	return b.data[offset], true
}

// Bytes returns the underlying content. Callers must not mutate it;
// edits go through SetByte so the modified flag stays truthful.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// SetByte writes value at offset and marks the buffer modified.
// Offsets at or past the end are a silent no-op: valid offsets only
// ever come from grid resolution, which already bounds-checks, but the
// mutation entry point re-validates rather than trust its callers.
func (b *Buffer) SetByte(offset int, value byte) {
	if offset < 0 || offset >= len(b.data) {
		return
	}
	if b.data[offset] == value {
		// Writing the current value still counts as an edit.
		b.modified = true
		return
	}
	b.data[offset] = value
	b.modified = true
	b.revisionID = NewRevisionID()
}

// Modified returns true when the content differs from what was last
// loaded or saved.
func (b *Buffer) Modified() bool {
	return b.modified
}

// MarkSaved clears the modified flag after a successful persist.
func (b *Buffer) MarkSaved() {
	b.modified = false
}

// Path returns the file path the buffer was loaded from, or empty when
// no file has been opened.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath records a new save target for a buffer that has none yet.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}
