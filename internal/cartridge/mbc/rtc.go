package mbc

import (
	"time"

	"github.com/PHenegan/gbcore/internal/types"
)

// dayUpperWriteMask keeps only the carry (bit 7), halt (bit 6), and
// day-bit-9 (bit 0) when a program writes the day-upper register; the
// rest of the byte is reserved.
const dayUpperWriteMask = 0xC1

// RTC is the MBC3 real-time clock: five latched registers visible to
// the program, reconciled against a wall-clock baseline only when the
// program explicitly calls Latch.
type RTC struct {
	seconds  uint8
	minutes  uint8
	hours    uint8
	dayLower uint8
	dayUpper uint8

	lastModified      time.Time
	secondsSinceLatch uint64
	halted            bool
}

// NewRTC returns a fresh RTC with all registers zeroed and its wall
// baseline set to now.
func NewRTC() *RTC {
	return &RTC{lastModified: time.Now()}
}

func (r *RTC) currentTotalSeconds() uint64 {
	days := (uint64(r.dayUpper&1) << 8) | uint64(r.dayLower)
	return days*86400 + uint64(r.hours)*3600 + uint64(r.minutes)*60 + uint64(r.seconds)
}

// Latch snapshots the live elapsed wall time into the five registers,
// per §4.4: the current register value plus any time banked across a
// halt/resume cycle plus the elapsed wall delta since last reconciled.
func (r *RTC) Latch() {
	now := time.Now()
	current := r.currentTotalSeconds()

	var delta uint64
	if !r.halted {
		delta = uint64(now.Sub(r.lastModified).Seconds())
	}

	total := current + r.secondsSinceLatch + delta
	r.secondsSinceLatch = 0

	r.seconds = uint8(total % 60)
	r.minutes = uint8((total / 60) % 60)
	r.hours = uint8((total / 3600) % 24)
	totalDays := total / 86400
	r.dayLower = uint8(totalDays & 0xFF)
	r.dayUpper = r.composeDayUpper(totalDays)

	r.lastModified = now
}

// composeDayUpper derives the day-upper byte for a given total day
// count, preserving the sticky carry bit once it has been set.
func (r *RTC) composeDayUpper(totalDays uint64) uint8 {
	var out uint8
	if types.TestBit(r.dayUpper, types.Bit7) || totalDays >= 0x200 {
		out = types.SetBit(out, types.Bit7)
	}
	if r.halted {
		out = types.SetBit(out, types.Bit6)
	}
	if totalDays>>8&1 != 0 {
		out = types.SetBit(out, types.Bit0)
	}
	return out
}

// ReadRegister reads one of the five latched registers by RTC bank
// index (0x08 seconds .. 0x0C day-upper), the layout MBC3 exposes
// through its RAM-bank-select register.
func (r *RTC) ReadRegister(bank uint8) (uint8, bool) {
	switch bank {
	case 0x08:
		return r.seconds, true
	case 0x09:
		return r.minutes, true
	case 0x0A:
		return r.hours, true
	case 0x0B:
		return r.dayLower, true
	case 0x0C:
		return r.dayUpper, true
	default:
		return 0, false
	}
}

// WriteRegister writes one of the five latched registers, applying the
// per-register width mask and the halt-transition side effects of
// writing day-upper.
func (r *RTC) WriteRegister(bank uint8, value uint8) bool {
	switch bank {
	case 0x08:
		r.seconds = value & 0x3F
	case 0x09:
		r.minutes = value & 0x3F
	case 0x0A:
		r.hours = value & 0x1F
	case 0x0B:
		r.dayLower = value
	case 0x0C:
		r.writeDayUpper(value)
	default:
		return false
	}
	return true
}

func (r *RTC) writeDayUpper(value uint8) {
	wasHalted := r.halted
	nowHalted := types.TestBit(value, types.Bit6)

	if !wasHalted && nowHalted {
		r.secondsSinceLatch += uint64(time.Now().Sub(r.lastModified).Seconds())
	} else if wasHalted && !nowHalted {
		r.lastModified = time.Now()
	}

	r.halted = nowHalted
	r.dayUpper = value & dayUpperWriteMask
}

// MarshalBinary encodes the RTC as a fixed 10-byte record (five
// registers as uint16 each, matching the standard MBC3 save-file RTC
// tail) so it can be appended after the cartridge RAM in a save file.
func (r *RTC) MarshalBinary() ([]byte, error) {
	out := make([]byte, 10)
	out[0], out[1] = r.seconds, 0
	out[2], out[3] = r.minutes, 0
	out[4], out[5] = r.hours, 0
	out[6], out[7] = r.dayLower, 0
	out[8], out[9] = r.dayUpper, 0
	return out, nil
}

// UnmarshalBinary restores the RTC from the layout MarshalBinary
// writes, resetting the wall-clock baseline to now so elapsed time
// resumes counting from the moment of load rather than the moment of
// save.
func (r *RTC) UnmarshalBinary(data []byte) error {
	if len(data) < 10 {
		return &SaveError{Reason: "RTC save data is shorter than 10 bytes"}
	}
	r.seconds = data[0] & 0x3F
	r.minutes = data[2] & 0x3F
	r.hours = data[4] & 0x1F
	r.dayLower = data[6]
	r.dayUpper = data[8] & (dayUpperWriteMask | 0x3E)
	r.halted = types.TestBit(r.dayUpper, types.Bit6)
	r.secondsSinceLatch = 0
	r.lastModified = time.Now()
	return nil
}
