package dram

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("device tree node", func() {
	var (
		table *timingTable
		root  *Node
		sizes [numLevels]int
	)

	BeforeEach(func() {
		sizes = Org4Gb_x8.sizes(1, 1)
		sizes[Channel] = 1
		table = buildTimingTable(Speed2400R.entry())
		root = newTree(sizes, table)
	})

	It("starts every bank closed", func() {
		var addrVec [numLevels]uint64
		bank := root.Children[0].Children[0].Children[0]
		Expect(bank.State.Kind).To(Equal(StateClosed))
		Expect(root.Check(ACT, 0, addrVec)).To(BeTrue())
	})

	It("requires ACT before RD on a closed bank", func() {
		var addrVec [numLevels]uint64
		cmd, _ := root.Decode(RD, addrVec)
		Expect(cmd).To(Equal(ACT))
	})

	It("opens the addressed row once ACT is issued", func() {
		var addrVec [numLevels]uint64
		addrVec[Row] = 7
		cmd, target := root.Decode(ACT, addrVec)
		Expect(cmd).To(Equal(ACT))
		Issue(cmd, 0, addrVec, root, target)
		Expect(target.State).To(Equal(State{Kind: StateOpened, Row: 7}))

		next, _ := root.Decode(RD, addrVec)
		Expect(next).To(Equal(RD))
	})

	It("requires PRE when a different row in the same bank is targeted", func() {
		var addrVec [numLevels]uint64
		addrVec[Row] = 1
		cmd, target := root.Decode(ACT, addrVec)
		Issue(cmd, 0, addrVec, root, target)

		addrVec[Row] = 2
		cmd, _ = root.Decode(RD, addrVec)
		Expect(cmd).To(Equal(PRE))
	})

	It("produces a monotonically non-decreasing next-available clock for ACT", func() {
		var addrVec [numLevels]uint64
		addrVec[Row] = 3
		cmd, target := root.Decode(ACT, addrVec)
		Issue(cmd, 10, addrVec, root, target)

		clk1 := root.NextAvailableClk(ACT, addrVec)
		Expect(clk1).To(BeNumerically(">=", 10))

		Issue(ACT, clk1, addrVec, root, target)
		clk2 := root.NextAvailableClk(ACT, addrVec)
		Expect(clk2).To(BeNumerically(">=", clk1))
	})

	It("gates the four-activate window across banks in a rank", func() {
		// nFAW is zero in the 2400R bin, so this spec builds its tree with
		// the 3200 bin, the only one with a non-zero four-activate window.
		speed := Speed3200.entry()
		root = newTree(sizes, buildTimingTable(speed))
		rank := root.Children[0]
		var addrVec [numLevels]uint64
		for i := 0; i < 4; i++ {
			addrVec[Bank] = uint64(i)
			cmd, target := root.Decode(ACT, addrVec)
			Expect(cmd).To(Equal(ACT))
			Issue(cmd, uint64(i), addrVec, root, target)
		}
		// A fifth ACT must wait nFAW after the first one at clk 0, later
		// than the nRRDS spacing after the fourth one at clk 3.
		clk := rank.nextClk[ACT]
		Expect(clk).To(BeNumerically(">=", speed.nFAW))
	})
})
