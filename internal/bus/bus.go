// Package bus routes the Game Boy's 16-bit address space to the cartridge,
// video RAM, work RAM, and the system/IO region.
package bus

import (
	"github.com/PHenegan/gbcore/internal/types"
	"github.com/PHenegan/gbcore/pkg/log"
)

const (
	romEnd       = 0x7FFF
	vramStart    = 0x8000
	vramEnd      = 0x9FFF
	cartRAMStart = 0xA000
	cartRAMEnd   = 0xBFFF
	wramStart    = 0xC000
	wramEnd      = 0xDFFF
	echoStart    = 0xE000
	echoEnd      = 0xFDFF
	sysStart     = 0xFE00
)

const (
	vramSize = vramEnd - vramStart + 1
	wramSize = wramEnd - wramStart + 1
	sysSize  = 0x10000 - sysStart
)

// Cartridge is the read/write contract every mapper variant implements
// (§4.3). The bus treats it as an opaque owned component: bank-control
// writes to ROM space are routed here, never interpreted by the bus itself.
type Cartridge interface {
	ReadROM(addr uint16) (uint8, bool)
	WriteROM(addr uint16, value uint8) error
	ReadMem(addr uint16) (uint8, bool)
	WriteMem(addr uint16, value uint8) (uint8, error)
}

// Bus owns the active cartridge plus the video RAM, work RAM, and
// system/IO regions and dispatches every address in 0x0000-0xFFFF to
// exactly one of them.
type Bus struct {
	Cartridge Cartridge
	Log       log.Logger

	vram [vramSize]uint8
	wram [wramSize]uint8
	sys  [sysSize]uint8
}

// New returns a Bus over the given cartridge with the VRAM/WRAM/system
// regions owned as flat byte arrays, immediately usable by the decoder
// without any further wiring.
func New(cart Cartridge) *Bus {
	return &Bus{Cartridge: cart, Log: log.NewNullLogger()}
}

// LoadByte implements cpu.Memory plus the unmapped-address contract of
// §4.5/§6: ok is false for addresses this bus cannot route at all (the
// echo region, per the "implementation may treat as invalid" allowance)
// and for cartridge ROM/RAM reads the cartridge itself reports as
// unmapped.
func (b *Bus) LoadByte(addr uint16) (uint8, bool) {
	switch {
	case addr <= romEnd:
		return b.Cartridge.ReadROM(addr)
	case addr <= vramEnd:
		return b.vram[addr-vramStart], true
	case addr <= cartRAMEnd:
		return b.Cartridge.ReadMem(addr - cartRAMStart)
	case addr <= wramEnd:
		return b.wram[addr-wramStart], true
	case addr <= echoEnd:
		b.Log.Debugf("bus: read from echo region %#04x treated as invalid", addr)
		return 0, false
	default:
		return b.sys[addr-sysStart], true
	}
}

// LoadHalfWord returns the little-endian word at addr: load_byte(addr) |
// (load_byte(addr+1) << 8).
func (b *Bus) LoadHalfWord(addr uint16) (uint16, bool) {
	lo, ok := b.LoadByte(addr)
	if !ok {
		return 0, false
	}
	hi, ok := b.LoadByte(addr + 1)
	if !ok {
		return 0, false
	}
	return types.Merge(hi, lo), true
}

// StoreByte writes a single byte, returning a *WriteError for any address
// this bus cannot route (echo region) or any write the cartridge rejects.
func (b *Bus) StoreByte(addr uint16, value uint8) error {
	switch {
	case addr <= romEnd:
		if err := b.Cartridge.WriteROM(addr, value); err != nil {
			return &WriteError{Addr: addr, Value: value, Cause: err}
		}
		return nil
	case addr <= vramEnd:
		b.vram[addr-vramStart] = value
		return nil
	case addr <= cartRAMEnd:
		if _, err := b.Cartridge.WriteMem(addr-cartRAMStart, value); err != nil {
			return &WriteError{Addr: addr, Value: value, Cause: err}
		}
		return nil
	case addr <= wramEnd:
		b.wram[addr-wramStart] = value
		return nil
	case addr <= echoEnd:
		return &WriteError{Addr: addr, Value: value}
	default:
		b.sys[addr-sysStart] = value
		return nil
	}
}

// StoreHalfWord writes the low byte then the high byte; if the high-byte
// write fails, the low byte is rolled back to its previous value so the
// store is atomic.
func (b *Bus) StoreHalfWord(addr uint16, value uint16) error {
	prevLow, hadLow := b.LoadByte(addr)

	hi, lo := types.Split(value)

	if err := b.StoreByte(addr, lo); err != nil {
		return err
	}
	if err := b.StoreByte(addr+1, hi); err != nil {
		if hadLow {
			_ = b.StoreByte(addr, prevLow)
		}
		return err
	}
	return nil
}
