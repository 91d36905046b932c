package dram

import "fmt"

// Speed selects a DDR4 JEDEC speed bin.
type Speed int

const (
	Speed1600K Speed = iota
	Speed1600L
	Speed1866M
	Speed1866N
	Speed2133P
	Speed2133R
	Speed2400R
	Speed2400U
	Speed3200
)

func (s Speed) String() string {
	switch s {
	case Speed1600K:
		return "DDR4_1600K"
	case Speed1600L:
		return "DDR4_1600L"
	case Speed1866M:
		return "DDR4_1866M"
	case Speed1866N:
		return "DDR4_1866N"
	case Speed2133P:
		return "DDR4_2133P"
	case Speed2133R:
		return "DDR4_2133R"
	case Speed2400R:
		return "DDR4_2400R"
	case Speed2400U:
		return "DDR4_2400U"
	case Speed3200:
		return "DDR4_3200"
	default:
		return "unknown_speed"
	}
}

// MarshalText implements encoding.TextMarshaler so Speed can be written as
// a plain name in TOML config files.
func (s Speed) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Speed) UnmarshalText(text []byte) error {
	for c := Speed1600K; c <= Speed3200; c++ {
		if c.String() == string(text) {
			*s = c
			return nil
		}
	}
	return fmt.Errorf("dram: unknown speed bin %q", text)
}

// speedEntry holds the timing parameters for one JEDEC speed bin, all
// measured in integer device cycles except rate/freq/tCK which describe the
// bin's nominal data rate and are carried for reference but not consumed by
// the timing table.
//
// A zero value in a field that feeds a timing-table rule (nRRDS, nRRDL and
// nFAW on every bin below except Speed3200, nRFC and nREFI on every bin)
// means "no constraint from this rule", not a literal zero-cycle
// dependency — see DESIGN.md, "zero-valued speed fields".
type speedEntry struct {
	rate   uint64
	freq   float64
	tCK    float64
	nBL    uint64
	nCCDS  uint64
	nCCDL  uint64
	nRTRS  uint64
	nCL    uint64
	nRCD   uint64
	nRP    uint64
	nCWL   uint64
	nRAS   uint64
	nRC    uint64
	nRTP   uint64
	nWTRS  uint64
	nWTRL  uint64
	nWR    uint64
	nRRDS  uint64
	nRRDL  uint64
	nFAW   uint64
	nRFC   uint64
	nREFI  uint64
	nPD    uint64
	nXP    uint64
	nXPDLL uint64
	nCKESR uint64
	nXS    uint64
	nXSDLL uint64
}

func (s Speed) entry() speedEntry {
	switch s {
	case Speed1600K:
		return speedEntry{
			rate: 1600, freq: (400.0 / 3.0) * 6.0, tCK: (3.0 / 0.4) / 6.0,
			nBL: 4, nCCDS: 4, nCCDL: 5, nRTRS: 2,
			nCL: 11, nRCD: 11, nRP: 11, nCWL: 9, nRAS: 28, nRC: 39,
			nRTP: 6, nWTRS: 2, nWTRL: 6, nWR: 12,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 4, nXP: 5, nXPDLL: 0, nCKESR: 5, nXS: 0, nXSDLL: 0,
		}
	case Speed1600L:
		return speedEntry{
			rate: 1600, freq: (400.0 / 3.0) * 6.0, tCK: (3.0 / 0.4) / 6.0,
			nBL: 4, nCCDS: 4, nCCDL: 5, nRTRS: 2,
			nCL: 12, nRCD: 12, nRP: 12, nCWL: 9, nRAS: 28, nRC: 40,
			nRTP: 6, nWTRS: 2, nWTRL: 6, nWR: 12,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 4, nXP: 5, nXPDLL: 0, nCKESR: 5, nXS: 0, nXSDLL: 0,
		}
	case Speed1866M:
		return speedEntry{
			rate: 1866, freq: (400.0 / 3.0) * 7.0, tCK: (3.0 / 0.4) / 7.0,
			nBL: 4, nCCDS: 4, nCCDL: 5, nRTRS: 2,
			nCL: 13, nRCD: 13, nRP: 13, nCWL: 10, nRAS: 32, nRC: 45,
			nRTP: 7, nWTRS: 3, nWTRL: 7, nWR: 14,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 5, nXP: 6, nXPDLL: 0, nCKESR: 6, nXS: 0, nXSDLL: 0,
		}
	case Speed1866N:
		return speedEntry{
			rate: 1866, freq: (400.0 / 3.0) * 7.0, tCK: (3.0 / 0.4) / 7.0,
			nBL: 4, nCCDS: 4, nCCDL: 5, nRTRS: 2,
			nCL: 14, nRCD: 14, nRP: 14, nCWL: 10, nRAS: 32, nRC: 46,
			nRTP: 7, nWTRS: 3, nWTRL: 7, nWR: 14,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 5, nXP: 6, nXPDLL: 0, nCKESR: 6, nXS: 0, nXSDLL: 0,
		}
	case Speed2133P:
		return speedEntry{
			rate: 2133, freq: (400.0 / 3.0) * 8.0, tCK: (3.0 / 0.4) / 8.0,
			nBL: 4, nCCDS: 4, nCCDL: 6, nRTRS: 2,
			nCL: 15, nRCD: 15, nRP: 15, nCWL: 11, nRAS: 36, nRC: 51,
			nRTP: 8, nWTRS: 3, nWTRL: 8, nWR: 16,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 6, nXP: 7, nXPDLL: 0, nCKESR: 7, nXS: 0, nXSDLL: 0,
		}
	case Speed2133R:
		return speedEntry{
			rate: 2133, freq: (400.0 / 3.0) * 8.0, tCK: (3.0 / 0.4) / 8.0,
			nBL: 4, nCCDS: 4, nCCDL: 6, nRTRS: 2,
			nCL: 16, nRCD: 16, nRP: 16, nCWL: 11, nRAS: 36, nRC: 52,
			nRTP: 8, nWTRS: 3, nWTRL: 8, nWR: 16,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 6, nXP: 7, nXPDLL: 0, nCKESR: 7, nXS: 0, nXSDLL: 0,
		}
	case Speed2400R:
		return speedEntry{
			rate: 2400, freq: (400.0 / 3.0) * 9.0, tCK: (3.0 / 0.4) / 9.0,
			nBL: 4, nCCDS: 4, nCCDL: 6, nRTRS: 2,
			nCL: 16, nRCD: 16, nRP: 16, nCWL: 12, nRAS: 39, nRC: 55,
			nRTP: 9, nWTRS: 3, nWTRL: 9, nWR: 18,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 6, nXP: 8, nXPDLL: 0, nCKESR: 7, nXS: 0, nXSDLL: 0,
		}
	case Speed2400U:
		return speedEntry{
			rate: 2400, freq: (400.0 / 3.0) * 9.0, tCK: (3.0 / 0.4) / 9.0,
			nBL: 4, nCCDS: 4, nCCDL: 6, nRTRS: 2,
			nCL: 18, nRCD: 18, nRP: 18, nCWL: 12, nRAS: 39, nRC: 57,
			nRTP: 9, nWTRS: 3, nWTRL: 9, nWR: 18,
			nRRDS: 0, nRRDL: 0, nFAW: 0, nRFC: 0, nREFI: 0,
			nPD: 6, nXP: 8, nXPDLL: 0, nCKESR: 7, nXS: 0, nXSDLL: 0,
		}
	case Speed3200:
		return speedEntry{
			rate: 3200, freq: 1600.0, tCK: 0.625,
			nBL: 4, nCCDS: 4, nCCDL: 10, nRTRS: 2,
			nCL: 22, nRCD: 22, nRP: 22, nCWL: 16, nRAS: 56, nRC: 78,
			nRTP: 12, nWTRS: 4, nWTRL: 12, nWR: 24,
			nRRDS: 8, nRRDL: 10, nFAW: 40, nRFC: 0, nREFI: 0,
			nPD: 8, nXP: 10, nXPDLL: 0, nCKESR: 8, nXS: 0, nXSDLL: 0,
		}
	default:
		panic("dram: unknown speed bin")
	}
}
