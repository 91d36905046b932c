package dram

// maxHistory bounds the per-command issue-history ring buffer kept on every
// node. Four entries is enough to evaluate the widest history-indexed rule
// in the timing table (the four-activate window, dist == 4).
const maxHistory = 4

// noHistory marks a ring-buffer slot that has never been written.
const noHistory = ^uint64(0)

// Node is one element of the DDR4 device tree. Only Channel, Rank,
// BankGroup, and Bank get nodes; Row and Column are virtualized through
// State on the owning Bank and through the decoded address vector.
type Node struct {
	Level    Level
	ID       int
	Parent   *Node
	Children []*Node

	State State

	// nextClk[cmd] is the earliest clock at which cmd may next be issued
	// through this node.
	nextClk [numCommands]uint64
	// prev[cmd] is a ring buffer of the most recent issue clocks of cmd at
	// this node, most recent first; unused slots hold noHistory.
	prev [numCommands][maxHistory]uint64

	table *timingTable
}

// newNode builds the subtree rooted at level, using sizes (as returned by
// Org.sizes) to size every level's child count. Bank nodes are leaves.
func newNode(level Level, sizes [numLevels]int, table *timingTable) *Node {
	n := &Node{Level: level, State: startState(level), table: table}
	for c := 0; c < numCommands; c++ {
		for i := range n.prev[c] {
			n.prev[c][i] = noHistory
		}
	}
	next, ok := level.NextLevel()
	if !ok || !next.needsNode() {
		return n
	}
	count := sizes[next]
	n.Children = make([]*Node, count)
	for i := 0; i < count; i++ {
		child := newNode(next, sizes, table)
		child.ID = i
		child.Parent = n
		n.Children[i] = child
	}
	return n
}

// newTree builds a complete channel-rooted device tree for the given sizes
// and timing table.
func newTree(sizes [numLevels]int, table *timingTable) *Node {
	return newNode(Channel, sizes, table)
}

// child returns the node's child addressed by addrVec at the node's own
// next-finer level.
func (n *Node) child(addrVec [numLevels]uint64) *Node {
	next, ok := n.Level.NextLevel()
	if !ok {
		return nil
	}
	return n.Children[addrVec[next]]
}

// Check reports whether cmd may be issued at clk along the path described
// by addrVec, checking every node from n down to the Bank leaf.
func (n *Node) Check(cmd Command, clk uint64, addrVec [numLevels]uint64) bool {
	if clk < n.nextClk[cmd] {
		return false
	}
	if n.Level == Bank {
		return true
	}
	return n.child(addrVec).Check(cmd, clk, addrVec)
}

// Decode resolves the precursor chain for cmd along addrVec, descending
// from n. It returns the command that must actually be issued next (which
// may be a precursor such as ACT, PRE, PDX, SRX, or PREA rather than cmd
// itself) together with the node that command targets.
func (n *Node) Decode(cmd Command, addrVec [numLevels]uint64) (Command, *Node) {
	cur := n
	for {
		if cur.Level == Rank || cur.Level == Bank {
			row := addrVec[Row]
			if pc := cur.precursor(cmd, row); pc != cmd {
				return pc, cur
			}
		}
		if cur.Level == Bank {
			return cmd, cur
		}
		cur = cur.child(addrVec)
	}
}

// pushHistory records clk as the most recent issue of cmd at n, evicting
// the oldest entry.
func (n *Node) pushHistory(cmd Command, clk uint64) {
	copy(n.prev[cmd][1:], n.prev[cmd][:len(n.prev[cmd])-1])
	n.prev[cmd][0] = clk
}

// applyOwnTiming pushes clk into n's own history for cmd and, for every
// non-sibling table entry registered at n's level for cmd, updates
// n.nextClk for the entry's target command using the history slot at
// entry.Dist-1.
func (n *Node) applyOwnTiming(cmd Command, clk uint64) {
	entries := n.table[n.Level][cmd]
	if len(entries) == 0 {
		return
	}
	n.pushHistory(cmd, clk)
	for _, e := range entries {
		if e.Sibling || int(e.Dist) > maxHistory {
			continue
		}
		hist := n.prev[cmd][e.Dist-1]
		if hist == noHistory {
			continue
		}
		ready := hist + e.Val
		if ready > n.nextClk[e.Target] {
			n.nextClk[e.Target] = ready
		}
	}
}

// applySiblingTiming applies n's sibling-scoped table entries directly from
// clk, with no history lookup: a sibling constraint is always measured
// from the instant the other node issued cmd, not from n's own past.
func (n *Node) applySiblingTiming(cmd Command, clk uint64) {
	for _, e := range n.table[n.Level][cmd] {
		if !e.Sibling {
			continue
		}
		ready := clk + e.Val
		if ready > n.nextClk[e.Target] {
			n.nextClk[e.Target] = ready
		}
	}
}

// propagateTiming walks the whole subtree rooted at n (n itself assumed to
// be on the path addrVec describes), applying cmd's effect at every level:
// n applies its own non-sibling entries from its issue history, then each
// child either continues the walk (if it is the addressed child at its
// level) or, if it is a sibling of that child, takes only the sibling
// entries registered at its own level. This matches spec.md §4.3: a
// same-node history constraint only ever binds the node that issued the
// command, while a cross-node constraint reaches every node beside it at
// that level, not just its own descendants.
func (n *Node) propagateTiming(cmd Command, clk uint64, addrVec [numLevels]uint64) {
	n.applyOwnTiming(cmd, clk)
	for _, child := range n.Children {
		if uint64(child.ID) == addrVec[child.Level] {
			child.propagateTiming(cmd, clk, addrVec)
		} else {
			child.applySiblingTiming(cmd, clk)
		}
	}
}

// Issue applies the effect of issuing cmd at clk, targeting the row given
// by addrVec (meaningful only for Bank-scoped commands). target is the
// node cmd actually acts on, as returned by Decode, and is the only node
// whose State transitions; root's whole subtree has its timing state
// updated, since commands issued on one node can also gate its siblings.
func Issue(cmd Command, clk uint64, addrVec [numLevels]uint64, root, target *Node) {
	target.applyState(cmd, addrVec[Row])
	root.propagateTiming(cmd, clk, addrVec)
}

// NextAvailableClk returns the earliest clock at which cmd could be issued
// along addrVec, i.e. the maximum nextClk seen from n down to the Bank
// leaf.
func (n *Node) NextAvailableClk(cmd Command, addrVec [numLevels]uint64) uint64 {
	clk := n.nextClk[cmd]
	if n.Level == Bank {
		return clk
	}
	if c := n.child(addrVec).NextAvailableClk(cmd, addrVec); c > clk {
		clk = c
	}
	return clk
}
