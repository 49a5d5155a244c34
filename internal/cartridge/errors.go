package cartridge

import "fmt"

// UnsupportedTypeError reports a cartridge header declaring a type
// byte this factory has no mapper for.
type UnsupportedTypeError struct {
	Type Type
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cartridge: unsupported cartridge type %#02x", uint8(e.Type))
}
