package cartridge

import "fmt"

// Type identifies the cartridge hardware declared at header byte
// 0x147. Only the values §6 recognises are named; anything else is
// rejected by the factory.
type Type uint8

const (
	TypeROM                 Type = 0x00
	TypeROMRAM              Type = 0x08
	TypeROMRAMBattery       Type = 0x09
	TypeMBC1                Type = 0x01
	TypeMBC1RAM             Type = 0x02
	TypeMBC1RAMBattery      Type = 0x03
	TypeMBC2                Type = 0x05
	TypeMBC2Battery         Type = 0x06
	TypeMBC3TimerBattery    Type = 0x0F
	TypeMBC3TimerRAMBattery Type = 0x10
	TypeMBC3                Type = 0x11
	TypeMBC3RAM             Type = 0x12
	TypeMBC3RAMBattery      Type = 0x13
)

// ramBankCounts maps the header's RAM size code (byte 0x149) to a bank
// count, per the §6 table.
var ramBankCounts = map[uint8]int{
	0x00: 0,
	0x01: 1,
	0x02: 1,
	0x03: 4,
	0x04: 16,
	0x05: 8,
}

// Header is the parsed contents of a cartridge's 0x0100-0x014F header
// region.
type Header struct {
	Title            string
	ManufacturerCode string
	CGBFlag          uint8
	NewLicenseeCode  string
	SGBFlag          bool
	CartridgeType    Type
	ROMBanks         int
	RAMBanks         int
	CountryCode      uint8
	OldLicenseeCode  uint8
	MaskROMVersion   uint8
	HeaderChecksum   uint8
	GlobalChecksum   uint16
}

// ParseHeader parses the 0x0100-0x014F header region out of rom. rom
// must be at least 0x150 bytes; shorter ROMs are a caller error (the
// factory zero-pads before this is ever called with real cartridge
// data).
func ParseHeader(rom []byte) (Header, error) {
	if len(rom) < 0x150 {
		return Header{}, fmt.Errorf("cartridge: ROM too short to contain a header (%d bytes)", len(rom))
	}

	h := Header{}
	h.CGBFlag = rom[0x143]
	if h.CGBFlag == 0x80 || h.CGBFlag == 0xC0 {
		h.Title = string(rom[0x134:0x143])
	} else {
		h.Title = string(rom[0x134:0x144])
	}
	h.ManufacturerCode = string(rom[0x13F:0x143])
	h.NewLicenseeCode = string(rom[0x144:0x146])
	h.SGBFlag = rom[0x146] == 0x03
	h.CartridgeType = Type(rom[0x147])
	h.ROMBanks = 2 << rom[0x148]

	ramCode := rom[0x149]
	banks, ok := ramBankCounts[ramCode]
	if !ok {
		return Header{}, fmt.Errorf("cartridge: invalid RAM size code %#02x", ramCode)
	}
	h.RAMBanks = banks

	h.CountryCode = rom[0x14A]
	h.OldLicenseeCode = rom[0x14B]
	h.MaskROMVersion = rom[0x14C]
	h.HeaderChecksum = rom[0x14D]
	h.GlobalChecksum = uint16(rom[0x14E])<<8 | uint16(rom[0x14F])

	return h, nil
}

// GameboyColor reports whether the header declares CGB support or
// CGB-exclusivity.
func (h Header) GameboyColor() bool {
	return h.CGBFlag == 0x80 || h.CGBFlag == 0xC0
}

func (h Header) String() string {
	return fmt.Sprintf("%s (type=%#02x, rom_banks=%d, ram_banks=%d)", h.Title, h.CartridgeType, h.ROMBanks, h.RAMBanks)
}

// HasRAM reports whether the cartridge type declares external RAM.
func (h Header) HasRAM() bool {
	switch h.CartridgeType {
	case TypeROMRAM, TypeROMRAMBattery,
		TypeMBC1RAM, TypeMBC1RAMBattery,
		TypeMBC3RAM, TypeMBC3RAMBattery, TypeMBC3TimerRAMBattery:
		return true
	case TypeMBC2, TypeMBC2Battery:
		return true // MBC2's built-in 512x4-bit RAM, not header-sized
	default:
		return false
	}
}

// HasBattery reports whether the cartridge type persists RAM (or RTC
// state) across power cycles.
func (h Header) HasBattery() bool {
	switch h.CartridgeType {
	case TypeROMRAMBattery, TypeMBC1RAMBattery, TypeMBC2Battery,
		TypeMBC3TimerBattery, TypeMBC3TimerRAMBattery, TypeMBC3RAMBattery:
		return true
	default:
		return false
	}
}

// HasRTC reports whether the cartridge type includes MBC3's real-time
// clock.
func (h Header) HasRTC() bool {
	return h.CartridgeType == TypeMBC3TimerBattery || h.CartridgeType == TypeMBC3TimerRAMBattery
}
