package dram

import "fmt"

// Org selects a DDR4 device organisation: a density (2/4/8 Gb) combined
// with a device I/O width (x4/x8/x16).
type Org int

const (
	Org2Gb_x4 Org = iota
	Org2Gb_x8
	Org2Gb_x16
	Org4Gb_x4
	Org4Gb_x8
	Org4Gb_x16
	Org8Gb_x4
	Org8Gb_x8
	Org8Gb_x16
)

func (o Org) String() string {
	switch o {
	case Org2Gb_x4:
		return "DDR4_2Gb_x4"
	case Org2Gb_x8:
		return "DDR4_2Gb_x8"
	case Org2Gb_x16:
		return "DDR4_2Gb_x16"
	case Org4Gb_x4:
		return "DDR4_4Gb_x4"
	case Org4Gb_x8:
		return "DDR4_4Gb_x8"
	case Org4Gb_x16:
		return "DDR4_4Gb_x16"
	case Org8Gb_x4:
		return "DDR4_8Gb_x4"
	case Org8Gb_x8:
		return "DDR4_8Gb_x8"
	case Org8Gb_x16:
		return "DDR4_8Gb_x16"
	default:
		return "unknown_org"
	}
}

// MarshalText implements encoding.TextMarshaler so Org can be written as a
// plain name in TOML config files.
func (o Org) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Org) UnmarshalText(text []byte) error {
	for c := Org2Gb_x4; c <= Org8Gb_x16; c++ {
		if c.String() == string(text) {
			*o = c
			return nil
		}
	}
	return fmt.Errorf("dram: unknown organisation %q", text)
}

// sizes returns the per-level element counts for this organisation given the
// channel and rank counts from Config, in the order
// [channels, ranks, bank_groups, banks_per_group, rows, columns/8].
// The column count is the device's column count divided by the burst length
// of 8, since the codec addresses entire cache lines rather than individual
// columns.
func (o Org) sizes(channels, ranks int) [numLevels]int {
	var bankGroups, banksPerGroup, rows, cols int
	switch o {
	case Org2Gb_x4:
		bankGroups, banksPerGroup, rows, cols = 4, 4, 1<<15, 1<<7
	case Org2Gb_x8:
		bankGroups, banksPerGroup, rows, cols = 4, 4, 1<<14, 1<<7
	case Org2Gb_x16:
		bankGroups, banksPerGroup, rows, cols = 2, 4, 1<<14, 1<<7
	case Org4Gb_x4:
		bankGroups, banksPerGroup, rows, cols = 4, 4, 1<<16, 1<<7
	case Org4Gb_x8:
		bankGroups, banksPerGroup, rows, cols = 4, 4, 1<<15, 1<<7
	case Org4Gb_x16:
		bankGroups, banksPerGroup, rows, cols = 2, 4, 1<<15, 1<<7
	case Org8Gb_x4:
		bankGroups, banksPerGroup, rows, cols = 4, 4, 1<<17, 1<<7
	case Org8Gb_x8:
		bankGroups, banksPerGroup, rows, cols = 4, 4, 1<<16, 1<<7
	case Org8Gb_x16:
		bankGroups, banksPerGroup, rows, cols = 2, 4, 1<<16, 1<<7
	default:
		panic("dram: unknown organisation")
	}
	return [numLevels]int{channels, ranks, bankGroups, banksPerGroup, rows, cols}
}
