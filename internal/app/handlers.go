package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/hexstorm/internal/engine/view"
	"github.com/dshills/hexstorm/internal/renderer"
)

func (app *Application) handleMoveCursor(dx, dy int) {
	app.cursor.Move(dx, dy, app.layout, app.view.VisibleRows())
	app.status = renderer.Status{}
}

func (app *Application) handleScrollPage(dir view.Direction) {
	// The cursor cell stays put; the same cell now refers to a
	// different byte offset.
	app.view.ScrollPage(dir)
	app.status = renderer.Status{}
}

func (app *Application) handleOpen() {
	path := strings.TrimSpace(app.promptLine("Open file: "))
	if path == "" {
		return
	}
	app.openPath(path)
}

// openPath loads a file into the buffer. The cursor cell is left where
// it was: stale cells over a shorter file simply resolve to no offset.
func (app *Application) openPath(path string) {
	data, err := app.store.Read(path)
	if err != nil {
		app.status = renderer.Errorf("%v", NewOperationError("open", path, err))
		app.log.Errorf("open %s: %v", path, err)
		return
	}

	app.buf.Load(data, path)
	app.view.SetBufferLen(app.buf.Len())
	app.view.Reset()

	if app.watcher != nil {
		if err := app.watcher.Watch(path); err != nil {
			app.log.Warnf("watching %s: %v", path, err)
		}
	}

	if err := app.scripts.OnOpen(path, app.buf.Len()); err != nil {
		app.log.Errorf("%v", err)
	}

	app.status = renderer.Info("Opened %s (%d bytes)", path, app.buf.Len())
	app.log.Infof("opened %s (%d bytes)", path, app.buf.Len())
}

func (app *Application) handleSave() {
	if app.cfg.ReadOnly {
		app.status = renderer.Errorf("%v", ErrReadOnly)
		return
	}

	if app.buf.Path() == "" {
		path := strings.TrimSpace(app.promptLine("Save to: "))
		if path == "" {
			return
		}
		app.buf.SetPath(path)
	}

	path := app.buf.Path()
	if err := app.store.Write(path, app.buf.Bytes()); err != nil {
		// Failed saves leave everything in memory untouched,
		// including the modified flag.
		app.status = renderer.Errorf("%v", NewOperationError("save", path, err))
		app.log.Errorf("save %s: %v", path, err)
		return
	}

	app.buf.MarkSaved()
	app.lastSave = time.Now()
	if app.watcher != nil {
		app.watcher.Suppress()
		if err := app.watcher.Watch(path); err != nil {
			app.log.Warnf("watching %s: %v", path, err)
		}
	}

	if err := app.scripts.OnSave(path, app.buf.Len()); err != nil {
		app.log.Errorf("%v", err)
	}

	app.status = renderer.Info("Saved %s (%d bytes)", path, app.buf.Len())
	app.log.Infof("saved %s (%d bytes)", path, app.buf.Len())
}

func (app *Application) handleEdit() {
	offset, ok := app.cursorOffset()
	if !ok {
		app.backend.Beep()
		return
	}
	if app.cfg.ReadOnly {
		app.status = renderer.Errorf("%v", ErrReadOnly)
		return
	}

	current, _ := app.buf.ByteAt(offset)
	prompt := app.promptLine(fmt.Sprintf("Edit byte at 0x%08X [current: 0x%02X]: 0x", offset, current))
	input := strings.TrimSpace(prompt)
	if input == "" {
		return
	}

	value, err := strconv.ParseUint(input, 16, 8)
	if err != nil {
		app.status = renderer.Errorf("%v: %q (use two hex digits, e.g. 1F)", ErrInvalidHex, input)
		return
	}

	app.buf.SetByte(offset, byte(value))
	app.status = renderer.Info("Byte 0x%08X set to 0x%02X", offset, byte(value))
	app.log.Infof("edit 0x%08X = 0x%02X", offset, byte(value))
}

func (app *Application) handleTransform() {
	offset, ok := app.cursorOffset()
	if !ok {
		app.backend.Beep()
		return
	}
	if app.cfg.ReadOnly {
		app.status = renderer.Errorf("%v", ErrReadOnly)
		return
	}

	name := strings.TrimSpace(app.promptLine("Transform function: "))
	if name == "" {
		return
	}
	if !app.scripts.HasTransform(name) {
		app.status = renderer.Errorf("no transform named %q", name)
		return
	}

	current, _ := app.buf.ByteAt(offset)
	value, err := app.scripts.Transform(name, current)
	if err != nil {
		app.status = renderer.Errorf("%v", err)
		app.log.Errorf("transform %s at 0x%08X: %v", name, offset, err)
		return
	}

	app.buf.SetByte(offset, value)
	app.status = renderer.Info("Byte 0x%08X: %s(0x%02X) = 0x%02X", offset, name, current, value)
	app.log.Infof("transform %s 0x%08X: 0x%02X -> 0x%02X", name, offset, current, value)
}

func (app *Application) handleWake() {
	if app.watcher == nil || !app.watcher.Consume() {
		return
	}
	if time.Since(app.lastSave) < selfSaveWindow {
		// Our own save echoing back through the watcher.
		return
	}

	app.status = renderer.Info("%s changed on disk (reopen with 'o' to reload)", app.buf.Path())
	app.log.Warnf("%s changed on disk", app.buf.Path())
}

func (app *Application) handleResize(width, height int) {
	app.rend.Resize(width, height)
	app.view.Resize(app.rend.VisibleRows())
	app.cursor.Clamp(app.layout, app.view.VisibleRows())
}

func (app *Application) handleQuit() error {
	if app.cfg.ConfirmQuit && app.buf.Modified() {
		answer := strings.TrimSpace(app.promptLine("Unsaved changes. Quit anyway? (y/n) "))
		if !strings.EqualFold(answer, "y") {
			app.status = renderer.Status{}
			return nil
		}
	}
	return ErrQuit
}

// cursorOffset resolves the byte offset under the cursor, if any.
func (app *Application) cursorOffset() (int, bool) {
	return app.layout.OffsetForCell(app.cursor.X, app.cursor.Y, app.view.Offset(), app.buf.Len())
}
