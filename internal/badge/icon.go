package badge

import (
	"fmt"
	"image"
)

// BuildIcon generates the identity icon for a host in an operating context.
//
// machineHex optionally pins the machine color to an explicit 6-hex-digit
// value (with or without a leading '#'); when empty, the color is derived
// from the host identifier. An empty or whitespace-only host is normalized
// to a fixed sentinel, never rejected. The only failure mode is a supplied
// machineHex that does not parse, reported as ErrInvalidColorFormat before
// any pixel is produced.
func BuildIcon(ctx Context, machineHex string, host string) (*image.NRGBA, error) {
	machine, err := MachineColor(machineHex, host)
	if err != nil {
		return nil, fmt.Errorf("resolve machine color: %w", err)
	}
	return Render(NewPalette(ctx, machine), Walk(host)), nil
}

// Label returns a short text label suitable for a tray tooltip, built from
// the (sentinel-normalized) host identifier and the context name.
func Label(ctx Context, host string) string {
	return fmt.Sprintf("%s (%s)", normalizeHost(host), ctx)
}
