package input

import (
	"log/slog"

	"snake-arcade/game/types"
)

// Steerable is the part of the snake the mapper needs.
type Steerable interface {
	Direction() types.Direction
	SetPendingDirection(d types.Direction) bool
}

type Mapper struct {
	logger *slog.Logger
}

func NewMapper(logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{logger: logger}
}

// Apply handles one event. It returns true for a quit request; the caller
// owns shutdown. Direction keys that would reverse the target's current
// heading are dropped before reaching it.
func (m *Mapper) Apply(ev Event, target Steerable) (quit bool) {
	switch ev.Kind {
	case EventQuit:
		return true
	case EventKeyDown:
		d, ok := ev.Key.Direction()
		if !ok {
			return false
		}
		if target.Direction().IsOpposite(d) {
			m.logger.Debug("reversal ignored", "current", target.Direction(), "requested", d)
			return false
		}
		target.SetPendingDirection(d)
	}
	return false
}

// ApplyAll handles events in order and stops at the first quit request.
func (m *Mapper) ApplyAll(events []Event, target Steerable) (quit bool) {
	for _, ev := range events {
		if m.Apply(ev, target) {
			return true
		}
	}
	return false
}
