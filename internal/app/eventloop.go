package app

import (
	"errors"

	"github.com/dshills/hexstorm/internal/input/key"
)

// loop is the synchronous event loop: render, poll one event, dispatch
// the decoded command, repeat. No error escapes except ErrQuit; every
// failure is reported in the status line and the loop continues.
func (app *Application) loop() error {
	for {
		app.rend.Render(app.frame())

		ev := app.backend.PollEvent()
		cmd, ok := key.Translate(ev, app.layout)
		if !ok {
			continue
		}

		if err := app.dispatch(cmd); err != nil {
			if errors.Is(err, ErrQuit) {
				return ErrQuit
			}
			// Defensive: handlers report through the status line and
			// return nil. Anything else gets logged and survived.
			app.log.Errorf("command %s: %v", cmd.Kind, err)
		}
	}
}

// dispatch routes one command to its handler.
func (app *Application) dispatch(cmd key.Command) error {
	app.log.Debugf("command %s", cmd.Kind)

	switch cmd.Kind {
	case key.KindMoveCursor:
		app.handleMoveCursor(cmd.DX, cmd.DY)
	case key.KindScrollPage:
		app.handleScrollPage(cmd.Dir)
	case key.KindOpen:
		app.handleOpen()
	case key.KindSave:
		app.handleSave()
	case key.KindEdit:
		app.handleEdit()
	case key.KindTransform:
		app.handleTransform()
	case key.KindWake:
		app.handleWake()
	case key.KindResize:
		app.handleResize(cmd.Width, cmd.Height)
	case key.KindQuit:
		return app.handleQuit()
	}

	return nil
}
