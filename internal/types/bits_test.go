package types

import "testing"

func TestSetTestBit(t *testing.T) {
	var b uint8 = 0
	b = SetBit(b, Bit3)
	if !TestBit(b, Bit3) {
		t.Fatalf("expected bit 3 set, got %08b", b)
	}
	if TestBit(b, Bit4) {
		t.Fatalf("expected bit 4 clear, got %08b", b)
	}
}

func TestMergeSplitRoundTrip(t *testing.T) {
	for hi := 0; hi < 256; hi++ {
		for _, lo := range []uint8{0x00, 0x01, 0x7F, 0x80, 0xFF, uint8(hi)} {
			word := Merge(uint8(hi), lo)
			gotHi, gotLo := Split(word)
			if gotHi != uint8(hi) || gotLo != lo {
				t.Fatalf("Split(Merge(%02X,%02X)) = (%02X,%02X)", hi, lo, gotHi, gotLo)
			}
		}
	}

	for w := 0; w < 0x10000; w += 0x101 {
		hi, lo := Split(uint16(w))
		if Merge(hi, lo) != uint16(w) {
			t.Fatalf("Merge(Split(%04X)) != %04X", w, w)
		}
	}
}
