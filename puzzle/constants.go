package puzzle

type Outcome int

const (
	InProgress Outcome = iota
	Won
	TimedOut
	MoveLimitExceeded
)

var outcomeNames = map[Outcome]string{
	InProgress:        "in progress",
	Won:               "won",
	TimedOut:          "timed out",
	MoveLimitExceeded: "move limit exceeded",
}

func (outcome Outcome) String() string {
	if name, ok := outcomeNames[outcome]; ok {
		return name
	}
	return "unknown"
}

// IsTerminal reports whether the session is over
func (outcome Outcome) IsTerminal() bool {
	return outcome != InProgress
}

// NoSelection is the selected index of a session with no tile selected
const NoSelection = -1
