// Package mbc implements the Game Boy cartridge memory bank controllers:
// RomOnly, MBC1, MBC2, and MBC3 (with its optional real-time clock).
package mbc

import "fmt"

// Mapper is the read/write contract every cartridge variant implements
// (§4.3). ReadROM/ReadMem never mutate banking state beyond what a prior
// WriteROM call has already set up; WriteROM is interpreted purely as a
// bank-control write and never touches ROM bytes.
type Mapper interface {
	ReadROM(addr uint16) (uint8, bool)
	WriteROM(addr uint16, data uint8) error
	ReadMem(addr uint16) (uint8, bool)
	WriteMem(addr uint16, data uint8) (uint8, error)
	// Save and LoadSave both return ErrSavesNotSupported when the
	// cartridge has no battery-backed RAM (§3/§7): has_battery gates
	// persistence, not just ReadMem/WriteMem.
	Save() ([]byte, error)
	LoadSave(data []byte) error
}

// WriteError reports a WriteROM/WriteMem call made against an address
// the mapper has no register or RAM cell for.
type WriteError struct {
	Addr uint16
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("mbc: write to unmapped address %#04x", e.Addr)
}

// SaveError reports a rejected LoadSave call.
type SaveError struct {
	Reason string
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("mbc: %s", e.Reason)
}

var (
	ErrSavesNotSupported = &SaveError{Reason: "cartridge has no battery-backed RAM"}
	ErrSaveFileTooBig    = &SaveError{Reason: "save data exceeds cartridge RAM capacity"}
)
