package cpu

import "testing"

func TestRegisterPairPacking(t *testing.T) {
	// Scenario: set_joined(B, C, 0xBEEF) then (read(B), read(C)) ==
	// (0xBE, 0xEF) and get_joined(B, C) == 0xBEEF.
	r := NewRegisters()
	r.BC.SetUint16(0xBEEF)

	if r.B != 0xBE || r.C != 0xEF {
		t.Fatalf("B=%#02x C=%#02x, want B=0xBE C=0xEF", r.B, r.C)
	}
	if r.BC.Uint16() != 0xBEEF {
		t.Fatalf("BC.Uint16() = %#04x, want 0xBEEF", r.BC.Uint16())
	}
}

func TestFlagBitsNeverSetBelowBit4(t *testing.T) {
	r := NewRegisters()
	r.F = 0xFF
	r.F &= FlagZero | FlagSubtract | FlagHalfCarry | FlagCarry
	if r.F&0x0F != 0 {
		t.Fatalf("F low nibble = %#02x, want 0", r.F&0x0F)
	}
}
