package dram

import "testing"

func TestSpeedEntriesPositive(t *testing.T) {
	speeds := []Speed{
		Speed1600K, Speed1600L, Speed1866M, Speed1866N,
		Speed2133P, Speed2133R, Speed2400R, Speed2400U, Speed3200,
	}
	for _, s := range speeds {
		e := s.entry()
		if e.nCL == 0 || e.nRCD == 0 || e.nRP == 0 || e.nRAS == 0 {
			t.Errorf("%s: core CAS/RAS timings must be positive, got %+v", s, e)
		}
		if e.nBL == 0 {
			t.Errorf("%s: nBL must be positive", s)
		}
	}
}

func TestOnly3200HasActivateWindowConstraints(t *testing.T) {
	for s := Speed1600K; s < Speed3200; s++ {
		e := s.entry()
		if e.nFAW != 0 {
			t.Errorf("%s: expected nFAW == 0 for this reference speed table, got %d", s, e.nFAW)
		}
	}
	if Speed3200.entry().nFAW == 0 {
		t.Error("Speed3200: expected a non-zero four-activate window")
	}
}

func TestSpeedTextRoundTrip(t *testing.T) {
	for s := Speed1600K; s <= Speed3200; s++ {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("%v: MarshalText: %v", s, err)
		}
		var got Speed
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("%v: UnmarshalText(%q): %v", s, text, err)
		}
		if got != s {
			t.Errorf("round trip of %v produced %v", s, got)
		}
	}
}
