package badge

import (
	"errors"
	"testing"
)

func TestMachineColor_ExplicitHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBColor
	}{
		{"lowercase with hash", "#0a84ff", RGBColor{10, 132, 255}},
		{"uppercase with hash", "#0A84FF", RGBColor{10, 132, 255}},
		{"no hash", "0a84ff", RGBColor{10, 132, 255}},
		{"black", "000000", RGBColor{0, 0, 0}},
		{"white", "#FFFFFF", RGBColor{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MachineColor(tt.hex, "ignored")
			if err != nil {
				t.Fatalf("MachineColor(%q) failed: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("MachineColor(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestMachineColor_InvalidHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{"five digits", "12345"},
		{"seven digits", "1234567"},
		{"non-hex digits", "GGGGGG"},
		{"hash only", "#"},
		{"hash plus five", "#12345"},
		{"double hash", "##12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MachineColor(tt.hex, "host")
			if !errors.Is(err, ErrInvalidColorFormat) {
				t.Errorf("MachineColor(%q) error = %v, want ErrInvalidColorFormat", tt.hex, err)
			}
		})
	}
}

func TestMachineColor_Derived(t *testing.T) {
	// Known values pin the derivation formula: SHA-256 of the identifier,
	// first 8 bytes big-endian, channel = (h>>shift)%156 + 50.
	tests := []struct {
		host string
		want RGBColor
	}{
		{"ALPHA", RGBColor{60, 166, 54}},
		{"unknown-host", RGBColor{194, 131, 117}},
		{"web-prod-03", RGBColor{163, 65, 91}},
	}

	for _, tt := range tests {
		got, err := MachineColor("", tt.host)
		if err != nil {
			t.Fatalf("MachineColor(\"\", %q) failed: %v", tt.host, err)
		}
		if got != tt.want {
			t.Errorf("MachineColor(\"\", %q) = %+v, want %+v", tt.host, got, tt.want)
		}
	}
}

func TestMachineColor_DerivedStaysMidBrightness(t *testing.T) {
	hosts := []string{"", "a", "ALPHA", "web-prod-03", "some.very.long.fqdn.example.com", "ZZZZZZ"}
	for _, host := range hosts {
		c, err := MachineColor("", host)
		if err != nil {
			t.Fatalf("MachineColor(\"\", %q) failed: %v", host, err)
		}
		for name, ch := range map[string]uint8{"R": c.R, "G": c.G, "B": c.B} {
			if ch < 50 || ch > 205 {
				t.Errorf("host %q: channel %s = %d outside [50,205]", host, name, ch)
			}
		}
	}
}

func TestMachineColor_SentinelEquivalence(t *testing.T) {
	want, _ := MachineColor("", "unknown-host")
	for _, host := range []string{"", "   ", "\t\n"} {
		got, err := MachineColor("", host)
		if err != nil {
			t.Fatalf("MachineColor(\"\", %q) failed: %v", host, err)
		}
		if got != want {
			t.Errorf("MachineColor(\"\", %q) = %+v, want sentinel color %+v", host, got, want)
		}
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		c    RGBColor
		want int
	}{
		{RGBColor{0, 0, 0}, 0},
		{RGBColor{255, 255, 255}, 255},
		{RGBColor{10, 132, 255}, 109},
		{RGBColor{255, 0, 0}, 76},
	}
	for _, tt := range tests {
		if got := Luminance(tt.c); got != tt.want {
			t.Errorf("Luminance(%+v) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestContrastColors(t *testing.T) {
	high, mid := ContrastColors(RGBColor{0, 0, 0})
	if high != (RGBColor{255, 255, 255}) {
		t.Errorf("high contrast on black = %+v, want white", high)
	}
	if mid != (RGBColor{200, 200, 200}) {
		t.Errorf("mid contrast on black = %+v, want light gray", mid)
	}

	high, mid = ContrastColors(RGBColor{255, 255, 255})
	if high != (RGBColor{0, 0, 0}) {
		t.Errorf("high contrast on white = %+v, want black", high)
	}
	if mid != (RGBColor{64, 64, 64}) {
		t.Errorf("mid contrast on white = %+v, want dark gray", mid)
	}
}

func TestContrastColors_AlwaysDistinguishable(t *testing.T) {
	// The markings must stay visible on any machine color the model can
	// produce, including the extremes. Perceptual CIE-Lab distance below
	// ~0.1 is hard to tell apart at tray-icon sizes.
	const minDistance = 0.1

	machines := []RGBColor{
		{0, 0, 0}, {255, 255, 255}, {127, 127, 127}, {128, 128, 128},
		{10, 132, 255}, {50, 50, 50}, {205, 205, 205},
	}
	for _, m := range machines {
		high, mid := ContrastColors(m)
		if d := PerceptualDistance(high, m); d < minDistance {
			t.Errorf("high contrast %s on machine %s: distance %f too small", high.Hex(), m.Hex(), d)
		}
		if d := PerceptualDistance(mid, m); d < minDistance {
			t.Errorf("mid contrast %s on machine %s: distance %f too small", mid.Hex(), m.Hex(), d)
		}
	}
}

func TestProfileColor(t *testing.T) {
	if got := ProfileColor(Corp); got != (RGBColor{0, 70, 140}) {
		t.Errorf("ProfileColor(Corp) = %+v", got)
	}
	if got := ProfileColor(Personal); got != (RGBColor{255, 140, 0}) {
		t.Errorf("ProfileColor(Personal) = %+v", got)
	}
}

func TestNewPalette(t *testing.T) {
	p := NewPalette(Corp, RGBColor{10, 132, 255})

	if p.Endpoint != p.Profile {
		t.Errorf("Endpoint = %+v, want Profile %+v", p.Endpoint, p.Profile)
	}
	if p.Profile != ProfileColor(Corp) {
		t.Errorf("Profile = %+v, want %+v", p.Profile, ProfileColor(Corp))
	}
	if p.HighContrast != (RGBColor{255, 255, 255}) {
		t.Errorf("HighContrast = %+v, want white for dark machine color", p.HighContrast)
	}
}

func TestRGBColorHex(t *testing.T) {
	if got := (RGBColor{10, 132, 255}).Hex(); got != "#0A84FF" {
		t.Errorf("Hex() = %q, want #0A84FF", got)
	}
}

func TestContextString(t *testing.T) {
	if Corp.String() != "corp" || Personal.String() != "personal" {
		t.Errorf("context names: got %q/%q", Corp.String(), Personal.String())
	}
}
