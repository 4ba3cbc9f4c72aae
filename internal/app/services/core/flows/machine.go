package flows

import "anubha-web/internal/pkg/exceptions"

type (
	State string
	Event string
)

// transitions maps state and event to the next state. Anything missing is illegal.
type transitions map[State]map[Event]State

func (t transitions) next(current State, event Event) (State, error) {
	target, ok := t[current][event]
	if !ok {
		return current, t.illegal(current, event)
	}
	return target, nil
}

func (t transitions) illegal(current State, event Event) error {
	return exceptions.ErrIllegalTransition(string(event), string(current))
}
