package dram

// timingEntry is one constraint attached to the command that produces it.
// When Cmd (the command indexing the table) is issued by a node at a given
// Level, the entry says: the next time Target may be issued is bounded by
// either
//
//   - the issuing node's own future issue of Target, found Dist entries back
//     in that node's issue history (Sibling == false), or
//   - every sibling node at the same level (every other node one level
//     below the issuing node's parent), measured directly from the issuing
//     clock with Dist == 1 (Sibling == true).
//
// This mirrors spec.md §4.3: same-node constraints consult the node's own
// ring buffer at Dist-1, while cross-node constraints push straight into
// each sibling's next_clk with no history lookup at all.
type timingEntry struct {
	Target  Command
	Dist    uint64
	Val     uint64
	Sibling bool
}

// timingTable holds, for every (level, command) pair, the constraints that
// fire when that command is issued by a node at that level.
type timingTable [numLevels][numCommands][]timingEntry

func (t *timingTable) add(level Level, from Command, to Command, dist uint64, val uint64, sibling bool) {
	t[level][from] = append(t[level][from], timingEntry{Target: to, Dist: dist, Val: val, Sibling: sibling})
}

// buildTimingTable constructs the full command-timing table for a device
// built with the given speed bin, following the per-level rule groups from
// spec.md §4.2 (transcribed from the DDR4 timing tables in the original
// source's ddr4 module).
func buildTimingTable(sp speedEntry) *timingTable {
	t := &timingTable{}

	// Channel level: back-to-back column commands to the same type are
	// separated by the burst length. There is no RD/WR cross-type rule at
	// this level; that turnaround is a Rank-level concern.
	for _, rw := range []struct{ a, b Command }{
		{RD, RD}, {RD, RDA}, {RDA, RD}, {RDA, RDA},
		{WR, WR}, {WR, WRA}, {WRA, WR}, {WRA, WRA},
	} {
		t.add(Channel, rw.a, rw.b, 1, sp.nBL, false)
	}

	// Rank level.
	for _, rw := range []struct{ a, b Command }{
		{RD, RD}, {RD, RDA}, {RDA, RD}, {RDA, RDA},
		{WR, WR}, {WR, WRA}, {WRA, WR}, {WRA, WRA},
	} {
		t.add(Rank, rw.a, rw.b, 1, sp.nCCDS, false)
	}
	// Read-to-write and write-to-read turnarounds, same rank.
	for _, from := range []Command{RD, RDA} {
		for _, to := range []Command{WR, WRA} {
			t.add(Rank, from, to, 1, sp.nCL+sp.nBL+2-sp.nCWL, false)
		}
	}
	for _, from := range []Command{WR, WRA} {
		for _, to := range []Command{RD, RDA} {
			t.add(Rank, from, to, 1, sp.nCWL+sp.nBL+sp.nWTRS, false)
		}
	}
	// Sibling-rank variants: a command on one rank also gates the others.
	// Same-type CAS pairs pay the bare rank-to-rank switch time; RD->WR and
	// WR->RD cross-type pairs pay the switch time plus the asymmetric part
	// of the CAS/CWL gap, which the same-rank rules above already covered
	// for the issuing rank itself.
	for _, rw := range []struct{ a, b Command }{
		{RD, RD}, {RD, RDA}, {RDA, RD}, {RDA, RDA},
	} {
		t.add(Rank, rw.a, rw.b, 1, sp.nBL+sp.nRTRS, true)
	}
	for _, from := range []Command{RD, RDA} {
		for _, to := range []Command{WR, WRA} {
			t.add(Rank, from, to, 1, sp.nBL+sp.nRTRS, true)
			t.add(Rank, from, to, 1, sp.nCL+sp.nBL+sp.nRTRS-sp.nCWL, true)
		}
	}
	for _, from := range []Command{WR, WRA} {
		for _, to := range []Command{RD, RDA} {
			t.add(Rank, from, to, 1, sp.nCWL+sp.nBL+sp.nRTRS-sp.nCL, true)
		}
	}
	// A precharge-all or power-down entry must wait for outstanding reads
	// and writes to retire.
	t.add(Rank, RD, PREA, 1, sp.nRTP, false)
	t.add(Rank, WR, PREA, 1, sp.nCWL+sp.nBL+sp.nWR, false)
	t.add(Rank, RD, PDE, 1, sp.nCL+sp.nBL+1, false)
	t.add(Rank, RDA, PDE, 1, sp.nCL+sp.nBL+1, false)
	t.add(Rank, WR, PDE, 1, sp.nCWL+sp.nBL+sp.nWR, false)
	t.add(Rank, WRA, PDE, 1, sp.nCWL+sp.nBL+sp.nWR+1, false)
	t.add(Rank, PDX, RD, 1, sp.nXP, false)
	t.add(Rank, PDX, RDA, 1, sp.nXP, false)
	t.add(Rank, PDX, WR, 1, sp.nXP, false)
	t.add(Rank, PDX, WRA, 1, sp.nXP, false)

	// Activate spacing: nRRDS between any two activates in the rank, plus
	// the four-activate window nFAW measured four activates back.
	t.add(Rank, ACT, ACT, 1, sp.nRRDS, false)
	t.add(Rank, ACT, ACT, 4, sp.nFAW, false)
	t.add(Rank, ACT, PREA, 1, sp.nRAS, false)
	t.add(Rank, PREA, ACT, 1, sp.nRP, false)

	// Refresh must wait for every bank to be precharged first, and for any
	// in-flight read/write to retire.
	t.add(Rank, ACT, REF, 1, sp.nRC, false)
	t.add(Rank, PRE, REF, 1, sp.nRP, false)
	t.add(Rank, PREA, REF, 1, sp.nRP, false)
	t.add(Rank, RDA, REF, 1, sp.nRTP+sp.nRP, false)
	t.add(Rank, WRA, REF, 1, sp.nCWL+sp.nBL+sp.nWR+sp.nRP, false)
	t.add(Rank, REF, ACT, 1, sp.nRFC, false)
	t.add(Rank, REF, REF, 1, sp.nRFC, false)

	// Power-down entry/exit.
	t.add(Rank, ACT, PDE, 1, 1, false)
	t.add(Rank, PDX, ACT, 1, sp.nXP, false)
	t.add(Rank, PDX, PRE, 1, sp.nXP, false)
	t.add(Rank, PDX, PREA, 1, sp.nXP, false)
	t.add(Rank, PDE, PDX, 1, sp.nPD, false)
	t.add(Rank, PDX, PDE, 1, sp.nXP, false)

	// Self-refresh entry/exit; both require every bank precharged first.
	t.add(Rank, PRE, SRE, 1, sp.nRP, false)
	t.add(Rank, PREA, SRE, 1, sp.nRP, false)
	t.add(Rank, SRX, ACT, 1, sp.nXS, false)
	t.add(Rank, SRE, SRX, 1, sp.nCKESR, false)
	t.add(Rank, SRX, SRE, 1, sp.nXS, false)

	// Refresh and power/self-refresh transitions can chain into each other.
	t.add(Rank, REF, PDE, 1, 1, false)
	t.add(Rank, PDX, REF, 1, sp.nXP, false)
	t.add(Rank, SRX, REF, 1, sp.nXS, false)
	t.add(Rank, PDX, SRE, 1, sp.nXP, false)
	t.add(Rank, SRX, PDE, 1, sp.nXS, false)

	// Bank-group level: commands to the same bank group are spaced wider
	// than commands to different bank groups in the same rank.
	for _, rw := range []struct{ a, b Command }{
		{RD, RD}, {RD, RDA}, {RDA, RD}, {RDA, RDA},
		{WR, WR}, {WR, WRA}, {WRA, WR}, {WRA, WRA},
	} {
		t.add(BankGroup, rw.a, rw.b, 1, sp.nCCDL, false)
	}
	for _, from := range []Command{WR, WRA} {
		for _, to := range []Command{RD, RDA} {
			t.add(BankGroup, from, to, 1, sp.nCWL+sp.nBL+sp.nWTRL, false)
		}
	}
	t.add(BankGroup, ACT, ACT, 1, sp.nRRDL, false)

	// Bank level: the classic ACT/RD/WR/PRE state machine.
	for _, to := range []Command{RD, WR, RDA, WRA} {
		t.add(Bank, ACT, to, 1, sp.nRCD, false)
	}
	t.add(Bank, RD, PRE, 1, sp.nRTP, false)
	t.add(Bank, WR, PRE, 1, sp.nCWL+sp.nBL+sp.nWR, false)
	t.add(Bank, RDA, ACT, 1, sp.nRTP+sp.nRP, false)
	t.add(Bank, WRA, ACT, 1, sp.nCWL+sp.nBL+sp.nWR+sp.nRP, false)
	t.add(Bank, ACT, ACT, 1, sp.nRC, false)
	t.add(Bank, ACT, PRE, 1, sp.nRAS, false)
	t.add(Bank, PRE, ACT, 1, sp.nRP, false)

	return t
}
