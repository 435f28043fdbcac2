package text

import "testing"

func TestPackUnpackRoundtrip(t *testing.T) {
	c := Pack(Top, Right, Bottom, HCenter, 130, 100)
	by, bx, ay, ax, oy, ox := Unpack(c)
	if by != Top || bx != Right || ay != Bottom || ax != HCenter || oy != 130 || ox != 100 {
		t.Fatalf("roundtrip mismatch: %v %v %v %v %v %v", by, bx, ay, ax, oy, ox)
	}
}

func TestFromClassTableRows(t *testing.T) {
	cases := []uint8{200, 202, 204, 208, 210, 212, 214, 216, 218, 220, 222, 224, 226, 228, 230, 232, 233, 234, 240, 7}
	for _, class := range cases {
		c := FromClass(class)
		if c == 0 {
			t.Errorf("class %d: expected non-zero combining code", class)
		}
		if !c.IsByClass() {
			t.Errorf("class %d: expected byClass sentinel set", class)
		}
	}
}

func TestFromClassZero(t *testing.T) {
	if FromClass(0) != 0 {
		t.Fatalf("class 0 must yield CombiningCode(0) (base, not mark)")
	}
}

func TestGenericAboveCenterForUnknownClass(t *testing.T) {
	c := FromClass(199)
	by, bx, ay, ax, _, _ := Unpack(c)
	if by != Top || bx != HCenter || ay != Bottom || ax != HCenter {
		t.Fatalf("unknown class should map to generic above-center, got %v/%v %v/%v", by, bx, ay, ax)
	}
}
