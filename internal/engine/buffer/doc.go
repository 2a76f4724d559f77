// Package buffer provides the in-memory byte buffer for the editor.
//
// A Buffer holds the full content of one file, the modified flag, and
// the path the content came from. The modified flag is false only while
// the content matches what was last loaded from or saved to disk:
//
//	Empty -> Loaded    (Load)
//	Loaded -> Modified (SetByte)
//	Modified -> Loaded (MarkSaved after a successful persist, or Load)
//
// Buffers are mutated in place by a single thread of control; the
// revision ID lets observers detect changes cheaply.
package buffer
