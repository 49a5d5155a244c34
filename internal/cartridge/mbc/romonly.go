package mbc

// RomOnly is the simplest cartridge variant: a fixed 32 KiB ROM with no
// bank switching and at most one bank of optional RAM.
type RomOnly struct {
	rom        *BankedRom
	hasBattery bool
}

// NewRomOnly returns a RomOnly mapper. hasRAM selects whether the
// cartridge exposes the optional 8 KiB external RAM bank; hasBattery
// gates whether that RAM can be saved/loaded at all.
func NewRomOnly(rom []byte, hasRAM, hasBattery bool) *RomOnly {
	ramBanks := 0
	if hasRAM {
		ramBanks = 1
	}
	return &RomOnly{rom: NewBankedRom(rom, ramBanks, false), hasBattery: hasBattery}
}

func (m *RomOnly) ReadROM(addr uint16) (uint8, bool) {
	return m.rom.ReadROM(addr)
}

// WriteROM rejects every write: RomOnly has no bank-control registers.
func (m *RomOnly) WriteROM(addr uint16, _ uint8) error {
	return &WriteError{Addr: addr}
}

func (m *RomOnly) ReadMem(addr uint16) (uint8, bool) {
	if m.rom.RAMBanks() == 0 {
		return 0xFF, true
	}
	return m.rom.ReadMem(addr)
}

func (m *RomOnly) WriteMem(addr uint16, data uint8) (uint8, error) {
	if m.rom.RAMBanks() == 0 {
		return 0, nil
	}
	return m.rom.WriteMem(addr, data)
}

func (m *RomOnly) Save() ([]byte, error) {
	if !m.hasBattery {
		return nil, ErrSavesNotSupported
	}
	return m.rom.SaveRAM(), nil
}

func (m *RomOnly) LoadSave(data []byte) error {
	if !m.hasBattery {
		return ErrSavesNotSupported
	}
	return m.rom.LoadSaveRAM(data)
}
