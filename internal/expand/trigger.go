package expand

// State is the state of a Trigger.
type State int

const (
	// Idle means no shortcut is being typed.
	Idle State = iota

	// Armed means a start boundary was seen and the next end boundary
	// resolves the word at the cursor.
	Armed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	default:
		return "unknown"
	}
}

// Trigger is the two-state machine that decides when a shortcut is resolved.
// The zero value is not usable; create triggers with NewTrigger.
type Trigger struct {
	start rune
	end   rune
	state State
}

// NewTrigger creates an idle trigger for the given boundary characters.
// start and end may be equal.
func NewTrigger(start, end rune) *Trigger {
	return &Trigger{start: start, end: end}
}

// Boundaries returns the start and end boundary characters.
func (t *Trigger) Boundaries() (start, end rune) {
	return t.start, t.end
}

// SetBoundaries changes the boundary characters. The current state is kept.
func (t *Trigger) SetBoundaries(start, end rune) {
	t.start, t.end = start, end
}

// State returns the current state.
func (t *Trigger) State() State {
	return t.state
}

// Feed advances the machine with one typed character and reports whether
// the word at the cursor must be resolved now.
//
// The start character arms the trigger even when already armed. The end
// character disarms it and requests resolution only if it was armed. When
// start and end are the same character both steps apply to one keystroke:
// it arms and immediately requests resolution.
func (t *Trigger) Feed(k rune) bool {
	if k != t.start && k != t.end {
		return false
	}
	if k == t.start {
		t.state = Armed
	}
	if k != t.end {
		return false
	}
	resolve := t.state == Armed
	t.state = Idle
	return resolve
}
