package app

import "github.com/dshills/hexstorm/internal/renderer/backend"

// promptLine collects a line of text in the status row. It deliberately
// blocks the event loop: prompts are modal and the editor has no other
// work to do while one is open. Enter submits, Escape abandons (returns
// an empty string), Backspace edits. Resizes are applied so the prompt
// survives them; all other events are ignored.
func (app *Application) promptLine(message string) string {
	var input []rune

	for {
		app.rend.RenderPrompt(message, string(input))

		ev := app.backend.PollEvent()
		switch ev.Type {
		case backend.EventResize:
			app.handleResize(ev.Width, ev.Height)
			app.rend.Render(app.frame())

		case backend.EventKey:
			switch ev.Key {
			case backend.KeyEnter:
				return string(input)
			case backend.KeyEscape:
				return ""
			case backend.KeyCtrlC:
				return ""
			case backend.KeyBackspace:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case backend.KeyRune:
				if ev.Rune >= ' ' {
					input = append(input, ev.Rune)
				}
			}
		}
	}
}
