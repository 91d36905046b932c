package dram

import "testing"

func TestOrgSizesAllDefined(t *testing.T) {
	orgs := []Org{
		Org2Gb_x4, Org2Gb_x8, Org2Gb_x16,
		Org4Gb_x4, Org4Gb_x8, Org4Gb_x16,
		Org8Gb_x4, Org8Gb_x8, Org8Gb_x16,
	}
	for _, o := range orgs {
		sizes := o.sizes(1, 1)
		for lvl, n := range sizes {
			if n <= 0 {
				t.Errorf("%s: level %d has non-positive size %d", o, lvl, n)
			}
		}
		if o.String() == "unknown_org" {
			t.Errorf("%v: missing String() case", o)
		}
	}
}

func TestOrgTextRoundTrip(t *testing.T) {
	for o := Org2Gb_x4; o <= Org8Gb_x16; o++ {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatalf("%v: MarshalText: %v", o, err)
		}
		var got Org
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("%v: UnmarshalText(%q): %v", o, text, err)
		}
		if got != o {
			t.Errorf("round trip of %v produced %v", o, got)
		}
	}
}
