package dram

import "fmt"

// SchedulerType selects the policy used to pick which queued request a
// controller attempts to issue next.
type SchedulerType int

const (
	// FCFS always picks the oldest request in the queue.
	FCFS SchedulerType = iota
	// FRFCFS (first-ready, first-come-first-served) considers only
	// requests whose command is currently issuable, prefers the oldest of
	// those that hits an open row, and otherwise picks the oldest of them.
	FRFCFS
)

func (s SchedulerType) String() string {
	switch s {
	case FCFS:
		return "FCFS"
	case FRFCFS:
		return "FRFCFS"
	default:
		return "unknown_scheduler"
	}
}

// MarshalText implements encoding.TextMarshaler so SchedulerType can be
// written as a plain name in TOML config files.
func (s SchedulerType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SchedulerType) UnmarshalText(text []byte) error {
	switch string(text) {
	case FCFS.String():
		*s = FCFS
	case FRFCFS.String():
		*s = FRFCFS
	default:
		return fmt.Errorf("dram: unknown scheduler type %q", text)
	}
	return nil
}

// scheduler picks the index within q of the next request to attempt, or
// -1 if none of q's requests can be chosen right now.
type scheduler interface {
	pick(root *Node, clk uint64, q *Queue) int
}

// fcfsScheduler always returns the head of the queue, deferring to the
// controller's own readiness check to decide whether it can actually be
// issued this cycle.
type fcfsScheduler struct{}

func (fcfsScheduler) pick(root *Node, clk uint64, q *Queue) int {
	if q.Len() == 0 {
		return -1
	}
	return 0
}

// frfcfsScheduler implements spec.md §4.6's first-ready-first-come policy:
// among the requests whose next command could issue this cycle, a request
// that hits its bank's already-open row is preferred over one that still
// needs a PRE/ACT precursor; within either group, the oldest (lowest
// index) ready request wins.
type frfcfsScheduler struct{}

func (frfcfsScheduler) pick(root *Node, clk uint64, q *Queue) int {
	oldestReady := -1
	rowHit := -1
	for i := 0; i < q.Len(); i++ {
		req := q.At(i)
		final := firstCommand(req.Type)
		resolved := final
		if !req.DoneSetup {
			resolved, _ = root.Decode(final, req.AddrVec)
		}
		if !root.Check(resolved, clk, req.AddrVec) {
			continue
		}
		if oldestReady == -1 {
			oldestReady = i
		}
		if rowHit == -1 && resolved == final {
			rowHit = i
		}
	}
	if rowHit != -1 {
		return rowHit
	}
	return oldestReady
}

// newScheduler constructs the scheduler implementation for t.
func newScheduler(t SchedulerType) scheduler {
	switch t {
	case FRFCFS:
		return frfcfsScheduler{}
	default:
		return fcfsScheduler{}
	}
}
