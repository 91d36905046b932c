package dram

// StateKind is the tag of a device node's State.
type StateKind int

const (
	// StateNoUse marks levels that carry no state of their own (Channel,
	// BankGroup, Column).
	StateNoUse StateKind = iota
	// StatePowerUp is the Rank's normal operating state.
	StatePowerUp
	// StateClosed marks a Bank with no open row.
	StateClosed
	// StateOpened marks a Bank with an open row; Row holds which one.
	StateOpened
	// StateActPowerDown is a Rank power-down entered with at least one bank
	// still open.
	StateActPowerDown
	// StatePrePowerDown is a Rank power-down entered with every bank closed.
	StatePrePowerDown
	// StateSelfRefresh is a Rank in self-refresh.
	StateSelfRefresh
)

// State is a device node's state. Row is only meaningful when Kind is
// StateOpened.
type State struct {
	Kind StateKind
	Row  uint64
}

func (s State) String() string {
	switch s.Kind {
	case StateNoUse:
		return "no_use"
	case StatePowerUp:
		return "power_up"
	case StateClosed:
		return "closed"
	case StateOpened:
		return "opened"
	case StateActPowerDown:
		return "act_power_down"
	case StatePrePowerDown:
		return "pre_power_down"
	case StateSelfRefresh:
		return "self_refresh"
	default:
		return "unknown_state"
	}
}

// startState returns the initial state for a freshly constructed node at the
// given level.
func startState(level Level) State {
	switch level {
	case Channel, BankGroup, Column:
		return State{Kind: StateNoUse}
	case Rank:
		return State{Kind: StatePowerUp}
	case Bank, Row:
		return State{Kind: StateClosed}
	default:
		panic("dram: start state of unknown level")
	}
}
