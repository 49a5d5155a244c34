package mbc

// mbc2RAMSize is the fixed size of MBC2's built-in 4-bit RAM array,
// stored one nibble per byte with the high nibble left as 0.
const mbc2RAMSize = 512

// MBC2 supports up to 16 ROM banks through a single 4-bit register and
// carries its own 512x4-bit RAM array rather than external cartridge
// RAM.
type MBC2 struct {
	rom        *BankedRom
	ram        [mbc2RAMSize]uint8
	ramEnabled bool
	hasBattery bool
}

// NewMBC2 returns an MBC2 mapper over rom. hasBattery gates whether its
// built-in RAM can be saved/loaded at all.
func NewMBC2(rom []byte, hasBattery bool) *MBC2 {
	return &MBC2{rom: NewBankedRom(rom, 0, false), hasBattery: hasBattery}
}

func (m *MBC2) WriteROM(addr uint16, data uint8) error {
	if addr > 0x7FFF {
		return &WriteError{Addr: addr}
	}
	if addr >= RomBankSize {
		return nil
	}
	// bit 8 of the address selects RAM-enable vs. ROM-bank-select.
	if addr&0x0100 == 0 {
		m.ramEnabled = data == 0x0A
		return nil
	}
	bank := data & 0x0F
	if bank == 0 {
		bank = 1
	}
	m.rom.SetROMBank(int(bank))
	return nil
}

func (m *MBC2) ReadROM(addr uint16) (uint8, bool) {
	return m.rom.ReadROM(addr)
}

func (m *MBC2) ReadMem(addr uint16) (uint8, bool) {
	if !m.ramEnabled {
		return 0xFF, true
	}
	return m.ram[addr&0x01FF], true
}

func (m *MBC2) WriteMem(addr uint16, data uint8) (uint8, error) {
	if !m.ramEnabled {
		return 0xFF, nil
	}
	idx := addr & 0x01FF
	old := m.ram[idx]
	m.ram[idx] = data & 0x0F
	return old, nil
}

func (m *MBC2) Save() ([]byte, error) {
	if !m.hasBattery {
		return nil, ErrSavesNotSupported
	}
	out := make([]byte, mbc2RAMSize)
	copy(out, m.ram[:])
	return out, nil
}

func (m *MBC2) LoadSave(data []byte) error {
	if !m.hasBattery {
		return ErrSavesNotSupported
	}
	if len(data) > mbc2RAMSize {
		return ErrSaveFileTooBig
	}
	for i, v := range data {
		m.ram[i] = v & 0x0F
	}
	return nil
}
