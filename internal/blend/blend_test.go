package blend

import "testing"

func TestMulDiv255(t *testing.T) {
	tests := []struct {
		name string
		a, b byte
		want byte
	}{
		{"zero * zero", 0, 0, 0},
		{"zero * max", 0, 255, 0},
		{"max * max", 255, 255, 255},
		{"half * half", 128, 128, 64},
		{"255 * 128", 255, 128, 128},
		{"1 * 1", 1, 1, 0},
		{"100 * 100", 100, 100, 39},
		{"200 * 200", 200, 200, 157},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mulDiv255(tt.a, tt.b); got != tt.want {
				t.Errorf("mulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNormalOpaqueSourceReplaces(t *testing.T) {
	r, g, b, a := FuncFor(ModeNormal)(255, 0, 0, 255, 0, 0, 255, 255)
	if r != 255 || g != 0 || b != 0 || a != 255 {
		t.Errorf("normal(opaque red, blue) = (%d,%d,%d,%d), want (255,0,0,255)", r, g, b, a)
	}
}

func TestNormalTransparentSourceKeepsDestination(t *testing.T) {
	r, g, b, a := FuncFor(ModeNormal)(0, 0, 0, 0, 10, 20, 30, 40)
	if r != 10 || g != 20 || b != 30 || a != 40 {
		t.Errorf("normal(transparent, D) = (%d,%d,%d,%d), want (10,20,30,40)", r, g, b, a)
	}
}

func TestNormalAccumulatesAlpha(t *testing.T) {
	_, _, _, a1 := FuncFor(ModeNormal)(64, 0, 0, 128, 0, 0, 0, 0)
	_, _, _, a2 := FuncFor(ModeNormal)(64, 0, 0, 128, 64, 0, 0, a1)
	if a2 <= a1 {
		t.Errorf("second half-alpha dab alpha = %d, want > %d", a2, a1)
	}
}

func TestEraseRemovesAlpha(t *testing.T) {
	_, _, _, a := FuncFor(ModeErase)(0, 0, 0, 255, 100, 100, 100, 255)
	if a != 0 {
		t.Errorf("erase with opaque source alpha = %d, want 0", a)
	}
	_, _, _, a = FuncFor(ModeErase)(0, 0, 0, 128, 100, 100, 100, 255)
	if a != 127 {
		t.Errorf("erase with half source alpha = %d, want 127", a)
	}
}

func TestBehindOnlyFillsTransparent(t *testing.T) {
	r, _, _, a := FuncFor(ModeBehind)(255, 0, 0, 255, 0, 0, 200, 255)
	if r != 0 || a != 255 {
		t.Errorf("behind over opaque = (r=%d, a=%d), want (0, 255)", r, a)
	}
	r, _, _, a = FuncFor(ModeBehind)(255, 0, 0, 255, 0, 0, 0, 0)
	if r != 255 || a != 255 {
		t.Errorf("behind over transparent = (r=%d, a=%d), want (255, 255)", r, a)
	}
}

func TestSeparableModes(t *testing.T) {
	tests := []struct {
		mode  Mode
		s, d  byte
		wantC byte
	}{
		{ModeMultiply, 128, 128, 64},
		{ModeScreen, 0, 100, 100},
		{ModeDarken, 50, 200, 50},
		{ModeLighten, 50, 200, 200},
		{ModeDifference, 50, 200, 150},
		{ModeColorDodge, 0, 77, 77},
		{ModeColorBurn, 255, 77, 77},
		{ModeHardLight, 255, 10, 255},
		{ModeOverlay, 10, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			r, _, _, a := FuncFor(tt.mode)(tt.s, 0, 0, 255, tt.d, 0, 0, 255)
			if r != tt.wantC {
				t.Errorf("%v(%d, %d) = %d, want %d", tt.mode, tt.s, tt.d, r, tt.wantC)
			}
			if a != 255 {
				t.Errorf("%v alpha = %d, want 255", tt.mode, a)
			}
		})
	}
}

func TestReplace(t *testing.T) {
	r, g, b, a := Replace(200, 100, 0, 255, 0, 100, 200, 255, 255)
	if r != 200 || g != 100 || b != 0 || a != 255 {
		t.Errorf("Replace(full) = (%d,%d,%d,%d), want source", r, g, b, a)
	}
	r, _, b, _ = Replace(200, 100, 0, 255, 0, 100, 200, 255, 0)
	if r != 0 || b != 200 {
		t.Errorf("Replace(zero) = (r=%d, b=%d), want destination", r, b)
	}
	r, _, _, _ = Replace(200, 100, 0, 255, 0, 100, 200, 255, 128)
	if r != 100 {
		t.Errorf("Replace(half) r = %d, want 100", r)
	}
}

func TestParseMode(t *testing.T) {
	for m := range modeCount {
		got, err := ParseMode(m.String())
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", m.String(), err)
		}
		if got != m {
			t.Errorf("ParseMode(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if _, err := ParseMode("dissolve-ish"); err == nil {
		t.Error("ParseMode(unknown) returned nil error")
	}
	if got, _ := ParseMode("  Multiply "); got != ModeMultiply {
		t.Errorf("ParseMode is not case-insensitive: got %v", got)
	}
}

func TestFuncForUnknownFallsBackToNormal(t *testing.T) {
	r, _, _, _ := FuncFor(Mode(200))(255, 0, 0, 255, 0, 0, 0, 255)
	if r != 255 {
		t.Errorf("unknown mode r = %d, want normal result 255", r)
	}
}
