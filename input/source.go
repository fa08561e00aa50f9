package input

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paddle-duel/engine"
)

// eventBuffer sizes the channel between the screen poller goroutine and
// the frame loop. Excess keystrokes beyond it fall back to the terminal's
// own buffering
const eventBuffer = 100

// Key identifies a keyboard input: a special key (arrows, Escape, ...) or
// a printable rune. Rune keys are case-folded so bindings are layout
// friendly
type Key struct {
	Special tcell.Key // tcell.KeyRune for rune bindings
	Rune    rune
}

// RuneKey builds the Key for a printable character
func RuneKey(r rune) Key {
	return Key{Special: tcell.KeyRune, Rune: unicode.ToLower(r)}
}

// SpecialKey builds the Key for a non-rune key
func SpecialKey(k tcell.Key) Key {
	return Key{Special: k}
}

// String names the key for logs
func (k Key) String() string {
	if k.Special == tcell.KeyRune {
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Special]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", k.Special)
}

// Source reads available key events and maps them to commands via
// registered bindings.
//
// PollAndDispatch never blocks: it consumes at most one pending event per
// call, applies the bound command (if any) directly against gs, and
// reports the consumed key and whether a command was dispatched. Unbound
// keys are no-ops
type Source interface {
	RegisterBinding(key Key, cmd engine.Command)
	PollAndDispatch(gs *engine.GameState) (Key, bool)
}

// ScreenSource is the tcell-backed Source. A dedicated goroutine forwards
// screen events into a buffered channel; the frame loop drains it with a
// non-blocking receive
type ScreenSource struct {
	events   <-chan tcell.Event
	bindings map[Key]engine.Command
	onResize func()
}

// NewScreenSource creates a Source polling the given screen. The internal
// poller goroutine runs until the screen is finalized
func NewScreenSource(screen tcell.Screen) *ScreenSource {
	events := make(chan tcell.Event, eventBuffer)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // screen finalized
			}
			events <- ev
		}
	}()
	return newScreenSource(events)
}

// newScreenSource wires a source to an externally fed event channel.
// Split out so tests can feed events deterministically
func newScreenSource(events <-chan tcell.Event) *ScreenSource {
	return &ScreenSource{
		events:   events,
		bindings: make(map[Key]engine.Command),
	}
}

// RegisterBinding associates a key with a command. Rebinding a key
// overwrites the previous command: last write wins
func (s *ScreenSource) RegisterBinding(key Key, cmd engine.Command) {
	s.bindings[key] = cmd
}

// SetResizeHook installs a callback invoked when a resize event is
// consumed
func (s *ScreenSource) SetResizeHook(hook func()) {
	s.onResize = hook
}

// PollAndDispatch consumes at most one pending event without blocking
func (s *ScreenSource) PollAndDispatch(gs *engine.GameState) (Key, bool) {
	select {
	case ev := <-s.events:
		switch ev := ev.(type) {
		case *tcell.EventKey:
			return s.dispatchKey(ev, gs)
		case *tcell.EventResize:
			if s.onResize != nil {
				s.onResize()
			}
		}
	default:
	}
	return Key{}, false
}

func (s *ScreenSource) dispatchKey(ev *tcell.EventKey, gs *engine.GameState) (Key, bool) {
	var key Key
	if ev.Key() == tcell.KeyRune {
		key = RuneKey(ev.Rune())
	} else {
		key = SpecialKey(ev.Key())
	}

	cmd, ok := s.bindings[key]
	if !ok {
		return key, false
	}
	cmd.Apply(gs)
	return key, true
}
