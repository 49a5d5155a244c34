// Package cartridge builds a mapper-backed Cartridge from raw ROM
// bytes, dispatching on the header's declared cartridge type to
// construct the right internal/cartridge/mbc variant.
package cartridge

import (
	"fmt"

	"github.com/cespare/xxhash"

	"github.com/PHenegan/gbcore/internal/cartridge/mbc"
)

// Cartridge pairs a parsed header with the mapper that actually
// services ROM/RAM reads and writes. It satisfies internal/bus.Cartridge.
type Cartridge struct {
	mbc.Mapper
	header Header
	rom    []byte
}

// Header returns the cartridge's parsed header.
func (c *Cartridge) Header() Header { return c.header }

// Checksum returns the xxhash64 digest of the cartridge's raw ROM
// bytes, used as a content-addressed save-file key.
func (c *Cartridge) Checksum() uint64 {
	return xxhash.Sum64(c.rom)
}

// New parses rom's header and constructs the mapper its cartridge type
// calls for.
func New(rom []byte) (*Cartridge, error) {
	if len(rom) < 0x150 {
		padded := make([]byte, 0x150)
		copy(padded, rom)
		rom = padded
	}

	header, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	mapper, err := newMapper(rom, header)
	if err != nil {
		return nil, err
	}

	return &Cartridge{Mapper: mapper, header: header, rom: rom}, nil
}

func newMapper(rom []byte, header Header) (mbc.Mapper, error) {
	switch header.CartridgeType {
	case TypeROM, TypeROMRAM, TypeROMRAMBattery:
		return mbc.NewRomOnly(rom, header.HasRAM(), header.HasBattery()), nil
	case TypeMBC1, TypeMBC1RAM, TypeMBC1RAMBattery:
		return mbc.NewMBC1(rom, header.RAMBanks, header.HasBattery()), nil
	case TypeMBC2, TypeMBC2Battery:
		return mbc.NewMBC2(rom, header.HasBattery()), nil
	case TypeMBC3, TypeMBC3RAM, TypeMBC3RAMBattery,
		TypeMBC3TimerBattery, TypeMBC3TimerRAMBattery:
		return mbc.NewMBC3(rom, header.RAMBanks, header.HasRTC(), header.HasBattery()), nil
	default:
		return nil, &UnsupportedTypeError{Type: header.CartridgeType}
	}
}
