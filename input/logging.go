package input

import (
	"log"

	"github.com/lixenwraith/paddle-duel/engine"
)

// LogSource decorates another Source, recording every dispatched key.
// Both operations are forwarded unchanged, so dispatch semantics and
// timing are those of the wrapped source
type LogSource struct {
	inner  Source
	logger *log.Logger
}

// NewLogSource wraps inner, logging dispatches to logger
func NewLogSource(inner Source, logger *log.Logger) *LogSource {
	return &LogSource{inner: inner, logger: logger}
}

// RegisterBinding forwards to the wrapped source
func (s *LogSource) RegisterBinding(key Key, cmd engine.Command) {
	s.inner.RegisterBinding(key, cmd)
}

// PollAndDispatch forwards to the wrapped source and logs the key when a
// command was dispatched
func (s *LogSource) PollAndDispatch(gs *engine.GameState) (Key, bool) {
	key, dispatched := s.inner.PollAndDispatch(gs)
	if dispatched {
		s.logger.Printf("input: dispatched %q", key.String())
	}
	return key, dispatched
}
