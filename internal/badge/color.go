package badge

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat reports an explicit machine color string that is not
// exactly six hex digits after stripping an optional leading '#'.
var ErrInvalidColorFormat = errors.New("invalid color format")

// Context identifies the operating context a badge represents.
//
// It is a closed enum with exactly two cases; no third context is expected.
// Adding one would only require a new profile-color lookup case.
type Context int

const (
	// Corp marks a corporate/managed session context.
	Corp Context = iota
	// Personal marks a personal session context.
	Personal
)

// String returns the human-readable context name.
func (c Context) String() string {
	switch c {
	case Corp:
		return "corp"
	case Personal:
		return "personal"
	default:
		return fmt.Sprintf("context(%d)", int(c))
	}
}

// RGBColor represents an opaque color with 8-bit components.
//
// Badges are always fully opaque; alpha is applied at render time.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Hex returns the color in "#RRGGBB" form.
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Profile colors are fixed literals, never computed, so the context strip
// looks identical on every machine.
var (
	corpProfileColor     = RGBColor{R: 0, G: 70, B: 140}  // dark blue
	personalProfileColor = RGBColor{R: 255, G: 140, B: 0} // orange
)

// Contrast marking colors, selected by machine-color luminance.
var (
	highOnDark = RGBColor{R: 255, G: 255, B: 255}
	midOnDark  = RGBColor{R: 200, G: 200, B: 200}
	highOnLite = RGBColor{R: 0, G: 0, B: 0}
	midOnLite  = RGBColor{R: 64, G: 64, B: 64}
)

// Palette bundles every color a single render needs.
//
// It is computed once per generation call and not mutated afterward.
// Endpoint always equals Profile: the walk's final cell is recolored with
// the context color, tying the context into the body of the badge.
type Palette struct {
	Profile      RGBColor `json:"profile"`       // context strip color
	Machine      RGBColor `json:"machine"`       // machine-area base color
	HighContrast RGBColor `json:"high_contrast"` // cells visited more than once
	MidContrast  RGBColor `json:"mid_contrast"`  // cells visited exactly once
	Endpoint     RGBColor `json:"endpoint"`      // walk endpoint marker (== Profile)
}

// ProfileColor returns the fixed color for an operating context.
func ProfileColor(ctx Context) RGBColor {
	if ctx == Personal {
		return personalProfileColor
	}
	return corpProfileColor
}

// MachineColor resolves the base color representing a host's identity.
//
// If hex is non-empty it must be exactly six hex digits, with or without a
// leading '#'; anything else fails with ErrInvalidColorFormat. If hex is
// empty, a color is derived deterministically from the host identifier so
// that every channel lands in the mid-brightness band [50,205], which keeps
// the contrast selection in ContrastColors reliable.
func MachineColor(hex string, host string) (RGBColor, error) {
	if hex != "" {
		return parseHexColor(hex)
	}
	return deriveMachineColor(host), nil
}

// parseHexColor parses a 6-hex-digit color like "#0A84FF" or "0a84ff".
func parseHexColor(hex string) (RGBColor, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return RGBColor{}, fmt.Errorf("%w: %q is not 6 hex digits", ErrInvalidColorFormat, hex)
	}
	val, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGBColor{}, fmt.Errorf("%w: %q is not 6 hex digits", ErrInvalidColorFormat, hex)
	}
	return RGBColor{
		R: uint8(val >> 16),
		G: uint8(val >> 8),
		B: uint8(val),
	}, nil
}

// deriveMachineColor maps a host identifier to a stable mid-brightness color.
//
// The formula is part of the badge format and must stay bit-exact: take the
// SHA-256 digest of the (sentinel-normalized) identifier, read the first
// eight bytes as a big-endian uint64 h, then
//
//	R = (h>>40)%156 + 50
//	G = (h>>20)%156 + 50
//	B = h%156 + 50
//
// Three distinct shifts decorrelate the channels; the modulo-plus-offset
// keeps each channel inside [50,205].
func deriveMachineColor(host string) RGBColor {
	sum := sha256.Sum256([]byte(normalizeHost(host)))
	h := binary.BigEndian.Uint64(sum[:8])
	return RGBColor{
		R: uint8((h>>40)%156 + 50),
		G: uint8((h>>20)%156 + 50),
		B: uint8(h%156 + 50),
	}
}

// Luminance returns the perceptual luminance of c using ITU-R BT.601
// weights, computed in integer arithmetic: (299R + 587G + 114B) / 1000.
func Luminance(c RGBColor) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// ContrastColors picks the high/mid marking pair for a machine color.
//
// Dark machine colors (luminance < 128) get white and light gray; light
// ones get black and dark gray. Markings therefore remain visible no matter
// how bright the machine color is.
func ContrastColors(machine RGBColor) (high, mid RGBColor) {
	if Luminance(machine) < 128 {
		return highOnDark, midOnDark
	}
	return highOnLite, midOnLite
}

// NewPalette resolves the full color bundle for one generation call.
func NewPalette(ctx Context, machine RGBColor) Palette {
	profile := ProfileColor(ctx)
	high, mid := ContrastColors(machine)
	return Palette{
		Profile:      profile,
		Machine:      machine,
		HighContrast: high,
		MidContrast:  mid,
		Endpoint:     profile,
	}
}

// PerceptualDistance returns the CIE-Lab distance between two colors.
//
// Used to check that the contrast markings are visually distinguishable
// from the machine color they sit on.
func PerceptualDistance(a, b RGBColor) float64 {
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	return ca.DistanceLab(cb)
}
