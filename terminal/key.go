package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dodge/input"
)

// KeyIntent maps a key press to a session intent
func KeyIntent(ev *tcell.EventKey) input.IntentType {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.IntentQuit
	case tcell.KeyRune:
	default:
		return input.IntentNone
	}

	switch unicode.ToLower(ev.Rune()) {
	case 'q':
		return input.IntentQuit
	case 'p', ' ':
		return input.IntentPause
	case 'r':
		return input.IntentRestart
	case 'm':
		return input.IntentToggleMute
	}
	return input.IntentNone
}

// Translate decodes a non-mouse event into an intent; resize also updates the viewport
func Translate(ev tcell.Event, view *Viewport) input.IntentType {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return KeyIntent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		view.Resize(w, h)
		return input.IntentResize
	}
	return input.IntentNone
}
