package mbc

// MBC3 supports up to 128 ROM banks (7-bit register, no forced-1 rule)
// and 4 banks of cartridge RAM, plus an optional real-time clock
// addressed through the same RAM-bank-select register.
type MBC3 struct {
	rom *BankedRom
	rtc *RTC // nil when the cartridge has no RTC

	ramEnabled bool
	ramBank    uint8 // 4 bits: 0x00-0x03 select RAM, 0x08-0x0C select an RTC register
	latching   bool
	hasBattery bool
}

// NewMBC3 returns an MBC3 mapper over rom with ramBanks banks of 8 KiB
// cartridge RAM. withRTC wires in a fresh RTC for the 0x0F/0x10
// cartridge-type variants. hasBattery gates whether the RAM and RTC can
// be saved/loaded at all.
func NewMBC3(rom []byte, ramBanks int, withRTC, hasBattery bool) *MBC3 {
	m := &MBC3{rom: NewBankedRom(rom, ramBanks, false), hasBattery: hasBattery}
	if withRTC {
		m.rtc = NewRTC()
	}
	return m
}

func (m *MBC3) WriteROM(addr uint16, data uint8) error {
	switch {
	case addr <= 0x1FFF:
		// This codebase enables RAM on the literal byte 0xA0, not the
		// `data & 0x0F == 0x0A` check some hardware references use —
		// see the design notes on why that divergence is preserved.
		m.ramEnabled = data == 0xA0
	case addr <= 0x3FFF:
		m.rom.SetROMBank(int(data & 0x7F))
	case addr <= 0x5FFF:
		m.ramBank = data & 0x0F
		if m.ramBank <= 0x03 {
			m.rom.SetRAMBank(int(m.ramBank))
		}
	case addr <= 0x7FFF:
		switch {
		case data == 0:
			m.latching = true
		case data == 1 && m.latching:
			if m.rtc != nil {
				m.rtc.Latch()
			}
			m.latching = false
		default:
			m.latching = false
		}
	default:
		return &WriteError{Addr: addr}
	}
	return nil
}

func (m *MBC3) ReadROM(addr uint16) (uint8, bool) {
	return m.rom.ReadROM(addr)
}

func (m *MBC3) ReadMem(addr uint16) (uint8, bool) {
	if !m.ramEnabled {
		return 0xFF, true
	}
	switch {
	case m.ramBank <= 0x03:
		return m.rom.ReadMem(addr)
	case m.rtc != nil:
		return m.rtc.ReadRegister(m.ramBank)
	default:
		return 0, false
	}
}

func (m *MBC3) WriteMem(addr uint16, data uint8) (uint8, error) {
	if !m.ramEnabled {
		return 0, nil
	}
	switch {
	case m.ramBank <= 0x03:
		return m.rom.WriteMem(addr, data)
	case m.rtc != nil:
		if !m.rtc.WriteRegister(m.ramBank, data) {
			return 0, &WriteError{Addr: addr}
		}
		return 0, nil
	default:
		return 0, &WriteError{Addr: addr}
	}
}

func (m *MBC3) Save() ([]byte, error) {
	if !m.hasBattery {
		return nil, ErrSavesNotSupported
	}
	out := m.rom.SaveRAM()
	if m.rtc != nil {
		if rtcBytes, err := m.rtc.MarshalBinary(); err == nil {
			out = append(out, rtcBytes...)
		}
	}
	return out, nil
}

// LoadSave accepts a save of at most the cartridge's RAM capacity (plus,
// when the cartridge has an RTC, the 10-byte RTC tail Save appends) — a
// short save is padded, not rejected; any other save exceeding capacity
// is ErrSaveFileTooBig.
func (m *MBC3) LoadSave(data []byte) error {
	if !m.hasBattery {
		return ErrSavesNotSupported
	}
	ramSize := RamBankSize * m.rom.RAMBanks()
	ramPart, rtcPart := data, []byte(nil)
	if m.rtc != nil && len(data) == ramSize+10 {
		ramPart, rtcPart = data[:ramSize], data[ramSize:]
	}
	if err := m.rom.LoadSaveRAM(ramPart); err != nil {
		return err
	}
	if m.rtc != nil && len(rtcPart) > 0 {
		return m.rtc.UnmarshalBinary(rtcPart)
	}
	return nil
}
