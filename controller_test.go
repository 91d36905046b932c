package dram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, capacity int) *Controller {
	t.Helper()
	sizes := Org4Gb_x8.sizes(1, 1)
	sizes[Channel] = 1
	speed := Speed2400R.entry()
	table := buildTimingTable(speed)
	root := newTree(sizes, table)
	return newController(0, root, newScheduler(FCFS), newPeriodicRefresher(0), capacity, speed.nCL+speed.nBL)
}

// runUntilFinished ticks c starting at clk 0 (matching the reference
// controller's own cycle numbering, where the first tick observes the
// request it was handed at clk 0) until a request finishes or maxTick is
// reached.
func runUntilFinished(c *Controller, maxTick uint64) (*Request, uint64) {
	for clk := uint64(0); clk <= maxTick; clk++ {
		c.Tick(clk)
		finished := c.DrainFinished()
		if len(finished) > 0 {
			return finished[0], clk
		}
	}
	return nil, 0
}

func TestControllerColdReadFinishesWithinExpectedWindow(t *testing.T) {
	c := newTestController(t, defaultQueueCapacity)
	req := NewRead(0, 0)
	require.NoError(t, c.TryEnqueue(&req))

	// DDR4_2400R, DDR4_4Gb_x8: ACT issues at clk 0 (cold, closed bank);
	// RD becomes ready nRCD=16 cycles later at clk 16; its data lands
	// read_latency = nCL+nBL = 20 cycles after that, at clk 36.
	const wantFinishTick = 36
	for clk := uint64(0); clk < wantFinishTick; clk++ {
		c.Tick(clk)
		require.Empty(t, c.DrainFinished(), "read finished early at clk %d", clk)
	}
	c.Tick(wantFinishTick)
	finished := c.DrainFinished()
	require.Len(t, finished, 1, "read did not finish at clk %d", wantFinishTick)
	require.Equal(t, req.Addr, finished[0].Addr)
}

func TestControllerDifferentRowWaitsForPrecharge(t *testing.T) {
	c := newTestController(t, defaultQueueCapacity)

	first := NewRead(0, 0)
	require.NoError(t, c.TryEnqueue(&first))
	_, firstTick := runUntilFinished(c, 200)

	second := NewRead(1<<20, firstTick)
	second.AddrVec[Row] = 1
	require.NoError(t, c.TryEnqueue(&second))
	_, secondTick := runUntilFinished(c, firstTick+200)

	require.Greater(t, secondTick, firstTick,
		"a read to a different row in the same bank must wait for precharge and re-activate")
}

func TestControllerRowHitIsFasterThanRowMiss(t *testing.T) {
	hit := newTestController(t, defaultQueueCapacity)
	first := NewRead(0, 0)
	require.NoError(t, hit.TryEnqueue(&first))
	_, firstTick := runUntilFinished(hit, 200)
	second := NewRead(0, firstTick)
	require.NoError(t, hit.TryEnqueue(&second))
	_, secondTick := runUntilFinished(hit, firstTick+200)

	gap := secondTick - firstTick
	require.Greater(t, secondTick, firstTick)
	require.LessOrEqual(t, gap, uint64(30),
		"a same-row read should only need RD, not a fresh ACT/PRE/ACT sequence")
}

func TestControllerRejectsEnqueueBeyondCapacity(t *testing.T) {
	c := newTestController(t, 2)
	for i := 0; i < 2; i++ {
		req := NewRead(uint64(i)<<20, 0)
		require.NoError(t, c.TryEnqueue(&req))
	}
	overflow := NewRead(1<<30, 0)
	require.ErrorIs(t, c.TryEnqueue(&overflow), ErrQueueFull)
}
