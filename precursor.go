package dram

// precursor returns the command that node must see issued before cmd can be
// issued there, or cmd itself if node is already in a state that admits cmd
// directly. This is the per-level resolution table from spec.md §4.2: a
// closed bank needs ACT before RD/WR, an open bank on the wrong row needs
// PRE first, a powered-down or self-refreshing rank needs PDX/SRX before
// any column or activate command, and REF/PDE/SRE need every bank in the
// rank precharged first.
func (n *Node) precursor(cmd Command, row uint64) Command {
	switch n.Level {
	case Bank:
		return n.bankPrecursor(cmd, row)
	case Rank:
		return n.rankPrecursor(cmd)
	default:
		return cmd
	}
}

func (n *Node) bankPrecursor(cmd Command, row uint64) Command {
	switch cmd {
	case RD, WR, RDA, WRA:
		switch n.State.Kind {
		case StateClosed:
			return ACT
		case StateOpened:
			if n.State.Row != row {
				return PRE
			}
			return cmd
		default:
			return ACT
		}
	case ACT:
		if n.State.Kind == StateOpened {
			if n.State.Row == row {
				return cmd
			}
			return PRE
		}
		return ACT
	default:
		return cmd
	}
}

func (n *Node) anyBankOpen() bool {
	for _, c := range n.Children {
		if c.State.Kind == StateOpened {
			return true
		}
	}
	return false
}

func (n *Node) rankPrecursor(cmd Command) Command {
	switch cmd {
	case RD, WR, RDA, WRA, ACT:
		switch n.State.Kind {
		case StateActPowerDown, StatePrePowerDown:
			return PDX
		case StateSelfRefresh:
			return SRX
		default:
			return cmd
		}
	case REF:
		// Refresh needs every bank precharged first; power-down and
		// self-refresh also need to be exited before PREA can issue.
		if n.anyBankOpen() {
			return PREA
		}
		switch n.State.Kind {
		case StateActPowerDown, StatePrePowerDown:
			return PDX
		case StateSelfRefresh:
			return SRX
		default:
			return cmd
		}
	case PDE, SRE:
		// Power-down/self-refresh entry also needs every bank precharged
		// first, but is otherwise requested directly: it is itself the
		// state transition out of power-up, not something that needs a
		// PDX/SRX precursor.
		if n.anyBankOpen() {
			return PREA
		}
		return cmd
	default:
		return cmd
	}
}

// applyState updates node's own State in response to cmd being issued at
// node; the one exception is PREA at a Rank, which closes every bank below
// it. Issue calls this only on the target node returned by Decode.
func (n *Node) applyState(cmd Command, row uint64) {
	switch n.Level {
	case Bank:
		switch cmd {
		case ACT:
			n.State = State{Kind: StateOpened, Row: row}
		case PRE, RDA, WRA:
			n.State = State{Kind: StateClosed}
		}
	case Rank:
		switch cmd {
		case PREA:
			for _, c := range n.Children {
				c.State = State{Kind: StateClosed}
			}
		case PDE:
			if n.anyBankOpen() {
				n.State = State{Kind: StateActPowerDown}
			} else {
				n.State = State{Kind: StatePrePowerDown}
			}
		case PDX:
			n.State = State{Kind: StatePowerUp}
		case SRE:
			n.State = State{Kind: StateSelfRefresh}
		case SRX:
			n.State = State{Kind: StatePowerUp}
		}
	}
}
