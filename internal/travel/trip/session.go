package trip

// State is the dialogue state of a conversation.
type State string

const (
	StateIdle            State = "idle"
	StatePlanningPackage State = "planning_package"
)

// Session is the per-conversation context. It is owned by the caller and
// passed into every turn; it must not be mutated by two turns at once.
type Session struct {
	State State `json:"state"`
	Draft Draft `json:"draft"`
	// Pending is the slot the last follow-up question asked for.
	Pending Slot `json:"pending,omitempty"`
}

// NewSession returns an idle session.
func NewSession() *Session {
	return &Session{State: StateIdle}
}

// Planning reports whether a package plan is in progress.
func (s *Session) Planning() bool {
	return s.State == StatePlanningPackage
}

// Reset returns the session to idle with an empty draft.
func (s *Session) Reset() {
	*s = Session{State: StateIdle}
}
