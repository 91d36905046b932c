package dram

import "github.com/sirupsen/logrus"

// runMode tracks whether a controller is currently favoring reads or
// writes, switched by the write-queue watermarks.
type runMode int

const (
	modeReading runMode = iota
	modeWriting
)

const (
	highWatermark = 0.8
	lowWatermark  = 0.2
)

// Controller manages one channel's device tree: it accepts requests,
// schedules and issues commands against the tree each tick, and collects
// finished requests for the owning Memory to drain.
type Controller struct {
	id    int
	root  *Node
	sched scheduler
	ref   refresher

	// readLatency is the number of cycles between a read's RD/RDA issuing
	// and its data actually being available, nCL + nBL (spec.md §4.4's
	// post-issue handler: "for reads, set finish_time = clk +
	// read_latency"). Writes complete as soon as WR/WRA issues.
	readLatency uint64

	reads  *Queue
	writes *Queue
	acts   *Queue
	// pending holds reads that have issued but whose data has not yet
	// arrived; it is strictly FIFO-ordered by FinishTime since every read
	// shares the same readLatency and clk never decreases.
	pending *Queue

	finished []*Request

	mode       runMode
	refreshDue bool

	log *logrus.Entry
}

func newController(id int, root *Node, sched scheduler, ref refresher, queueCapacity int, readLatency uint64) *Controller {
	return &Controller{
		id:          id,
		root:        root,
		sched:       sched,
		ref:         ref,
		readLatency: readLatency,
		reads:       NewQueue(queueCapacity),
		writes:      NewQueue(queueCapacity),
		acts:        NewQueue(queueCapacity),
		pending:     NewQueue(queueCapacity),
		mode:        modeReading,
		log:         logrus.WithField("channel", id),
	}
}

func (c *Controller) queueFor(t ReqType) *Queue {
	if t == ReqWrite {
		return c.writes
	}
	return c.reads
}

// TryEnqueue admits req into its read or write queue, returning
// ErrQueueFull if that queue is already at capacity.
func (c *Controller) TryEnqueue(req *Request) error {
	return c.queueFor(req.Type).TryPush(req)
}

// PendingRequests returns the number of requests not yet in the finished
// queue.
func (c *Controller) PendingRequests() int {
	return c.reads.Len() + c.writes.Len() + c.acts.Len() + c.pending.Len()
}

// DrainFinished removes and returns every request that finished since the
// last call.
func (c *Controller) DrainFinished() []*Request {
	out := c.finished
	c.finished = nil
	return out
}

// drainPending moves every read whose data has arrived (FinishTime <= clk)
// from the pending queue to the finished queue. This is spec.md §4.4's
// tick step 1, run before any new command is issued this cycle.
func (c *Controller) drainPending(clk uint64) {
	for c.pending.Len() > 0 {
		req := c.pending.At(0)
		if req.FinishTime > clk {
			return
		}
		c.pending.PopFront()
		c.finished = append(c.finished, req)
	}
}

func (c *Controller) switchRunMode() {
	capacity := c.writes.max
	switch c.mode {
	case modeReading:
		if c.reads.Len() == 0 || float64(c.writes.Len()) > highWatermark*float64(capacity) {
			c.mode = modeWriting
		}
	case modeWriting:
		if c.reads.Len() > 0 && float64(c.writes.Len()) < lowWatermark*float64(capacity) {
			c.mode = modeReading
		}
	}
}

func (c *Controller) bestQueue() *Queue {
	if c.mode == modeWriting {
		return c.writes
	}
	return c.reads
}

// Tick advances the controller by one cycle at the given channel clock,
// following spec.md §4.4's fixed tick order: move reads whose data has
// arrived to the finished queue, service a due refresh, update run mode, then try to issue one
// command, preferring a request already past ACT over a fresh pick from
// the read/write queue.
func (c *Controller) Tick(clk uint64) {
	c.drainPending(clk)
	if c.ref.tick(clk) {
		c.refreshDue = true
	}
	c.switchRunMode()

	if c.refreshDue && c.tryIssueRefresh(clk) {
		return
	}
	if c.tryIssueFrom(c.acts, clk) {
		return
	}
	c.tryIssueFrom(c.bestQueue(), clk)
}

func (c *Controller) tryIssueRefresh(clk uint64) bool {
	for rankID, rankNode := range c.root.Children {
		var addrVec [numLevels]uint64
		addrVec[Rank] = uint64(rankID)
		resolved, target := rankNode.Decode(REF, addrVec)
		if !rankNode.Check(resolved, clk, addrVec) {
			continue
		}
		Issue(resolved, clk, addrVec, c.root, target)
		if resolved == REF {
			c.refreshDue = false
		}
		return true
	}
	return false
}

// tryIssueFrom asks the scheduler to pick a candidate request from q,
// resolves its precursor chain, and issues the result if the device tree
// is ready. It reports whether a command was issued.
func (c *Controller) tryIssueFrom(q *Queue, clk uint64) bool {
	idx := c.sched.pick(c.root, clk, q)
	if idx < 0 {
		return false
	}
	req := q.At(idx)
	final := firstCommand(req.Type)
	resolved, target := c.root.Decode(final, req.AddrVec)
	if !c.root.Check(resolved, clk, req.AddrVec) {
		return false
	}
	Issue(resolved, clk, req.AddrVec, c.root, target)

	c.log.WithFields(logrus.Fields{
		"clk": clk, "cmd": resolved.String(), "req_type": req.Type.String(),
	}).Debug("issued command")

	switch {
	case resolved == final && req.Type == ReqRead:
		// Spec.md §4.4's post-issue handler: a read's data isn't actually
		// available until read_latency cycles after RD/RDA issues, so it
		// waits in the pending queue instead of finishing on the spot.
		q.Remove(idx)
		req.FinishTime = clk + c.readLatency
		_ = c.pending.TryPush(req)
	case resolved == final:
		q.Remove(idx)
		req.FinishTime = clk
		c.finished = append(c.finished, req)
	case resolved == ACT:
		q.Remove(idx)
		req.DoneSetup = true
		_ = c.acts.TryPush(req)
	}
	return true
}
