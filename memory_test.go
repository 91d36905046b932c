package dram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestMemory(t *testing.T) *Memory {
	t.Helper()
	cfg := DefaultConfig()
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func TestMemorySequentialReadsAllComplete(t *testing.T) {
	m := newTestMemory(t)

	const count = 256
	for i := 0; i < count; i++ {
		req := NewRead(uint64(i)<<6, m.Cycle())
		for m.TrySend(&req) == ErrQueueFull {
			m.Tick()
		}
	}

	got := 0
	const maxTicks = 100000
	for m.Cycle() < maxTicks && got < count {
		m.Tick()
		for {
			_, ok := m.TryRecv()
			if !ok {
				break
			}
			got++
		}
	}

	require.Equal(t, count, got, "every sequential read must eventually finish")
}

func TestMemoryInterleavedReadWriteAllComplete(t *testing.T) {
	m := newTestMemory(t)

	const count = 256
	for i := 0; i < count; i++ {
		addr := uint64(i) << 6
		var req Request
		if i%2 == 0 {
			req = NewRead(addr, m.Cycle())
		} else {
			req = NewWrite(addr, m.Cycle())
		}
		for m.TrySend(&req) == ErrQueueFull {
			m.Tick()
		}
	}

	got := 0
	const maxTicks = 100000
	for m.Cycle() < maxTicks && got < count {
		m.Tick()
		for {
			_, ok := m.TryRecv()
			if !ok {
				break
			}
			got++
		}
	}

	require.Equal(t, count, got, "every interleaved read/write must eventually finish")
}

func TestMemoryPendingRequestsTracksOutstandingWork(t *testing.T) {
	m := newTestMemory(t)
	require.Equal(t, 0, m.PendingRequests())

	req := NewRead(0, m.Cycle())
	require.NoError(t, m.TrySend(&req))
	require.Equal(t, 1, m.PendingRequests())

	for i := 0; i < 100 && m.PendingRequests() > 0; i++ {
		m.Tick()
	}
	require.Equal(t, 0, m.PendingRequests())
}
