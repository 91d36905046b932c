package dram

import "fmt"

// Memory is the façade callers interact with: it accepts requests, decodes
// their channel from the linear address, fans them out to the right
// per-channel Controller, and collects finished requests into a single
// return queue.
type Memory struct {
	cfg Config
	clk uint64

	bitBits [numLevels]int
	seq     [numLevels]int

	controllers []*Controller
	ret         []*Request
}

// New builds a Memory for the given configuration.
func New(cfg Config) (*Memory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	configureLogging(cfg.LogLevel)

	sizes := cfg.Org.sizes(cfg.Channels, cfg.Ranks)
	var bitBits [numLevels]int
	for lvl := 0; lvl < numLevels; lvl++ {
		bitBits[lvl] = log2(sizes[lvl])
	}

	speed := cfg.Speed.entry()
	table := buildTimingTable(speed)
	readLatency := speed.nCL + speed.nBL

	perChannelSizes := sizes
	perChannelSizes[Channel] = 1

	controllers := make([]*Controller, cfg.Channels)
	for i := range controllers {
		root := newTree(perChannelSizes, table)
		sched := newScheduler(cfg.Scheduler)
		ref := newPeriodicRefresher(cfg.RefreshIntervalCycles)
		controllers[i] = newController(i, root, sched, ref, cfg.QueueCapacity, readLatency)
	}

	return &Memory{cfg: cfg, bitBits: bitBits, seq: cfg.Mapping.sequence(), controllers: controllers}, nil
}

// Cycle returns the number of ticks this Memory has processed.
func (m *Memory) Cycle() uint64 { return m.clk }

// DecodeAddr maps addr into this Memory's per-level coordinate vector.
func (m *Memory) DecodeAddr(addr uint64) [numLevels]uint64 {
	return decodeAddr(addr, m.bitBits, m.seq)
}

// EncodeAddr is the inverse of DecodeAddr.
func (m *Memory) EncodeAddr(vec [numLevels]uint64) uint64 {
	return encodeAddr(vec, m.bitBits, m.seq)
}

// TrySend decodes req's address and admits it onto the owning channel's
// controller, returning ErrQueueFull if that channel's read or write queue
// (by request type) is already full.
func (m *Memory) TrySend(req *Request) error {
	req.AddrVec = m.DecodeAddr(req.Addr)
	req.ArrivalTime = m.clk
	ch := req.AddrVec[Channel]
	if int(ch) >= len(m.controllers) {
		return fmt.Errorf("dram: address %#x decodes to channel %d, have %d", req.Addr, ch, len(m.controllers))
	}
	return m.controllers[ch].TryEnqueue(req)
}

// TryRecv removes and returns the oldest finished request, or reports
// false if none are ready yet.
func (m *Memory) TryRecv() (*Request, bool) {
	if len(m.ret) == 0 {
		return nil, false
	}
	req := m.ret[0]
	m.ret = m.ret[1:]
	return req, true
}

// PendingRequests returns the number of requests still held in the
// controllers' queues. Finished requests waiting in the return queue for
// TryRecv are not counted.
func (m *Memory) PendingRequests() int {
	total := 0
	for _, c := range m.controllers {
		total += c.PendingRequests()
	}
	return total
}

// Tick advances every channel's controller by one cycle and drains any
// requests that finished this cycle into the return queue.
func (m *Memory) Tick() {
	m.clk++
	for _, c := range m.controllers {
		c.Tick(m.clk)
		m.ret = append(m.ret, c.DrainFinished()...)
	}
}
