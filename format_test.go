package paintcore

import "testing"

func TestFormatInfo(t *testing.T) {
	tests := []struct {
		f      Format
		bpp    int
		alpha  bool
		premul bool
		name   string
	}{
		{FormatGray8, 1, false, false, "gray8"},
		{FormatGrayA8, 2, true, false, "graya8"},
		{FormatRGBA8, 4, true, false, "rgba8"},
		{FormatRGBAPremul, 4, true, true, "rgba8-premul"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.BytesPerPixel(); got != tt.bpp {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bpp)
			}
			if got := tt.f.HasAlpha(); got != tt.alpha {
				t.Errorf("HasAlpha() = %v, want %v", got, tt.alpha)
			}
			if got := tt.f.IsPremultiplied(); got != tt.premul {
				t.Errorf("IsPremultiplied() = %v, want %v", got, tt.premul)
			}
			if got := tt.f.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			parsed, err := ParseFormat(tt.name)
			if err != nil || parsed != tt.f {
				t.Errorf("ParseFormat(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}

	if Format(99).IsValid() {
		t.Error("Format(99).IsValid() = true")
	}
	if _, err := ParseFormat("cmyk"); err == nil {
		t.Error("ParseFormat(cmyk) returned nil error")
	}
}

func TestFormatDecodeEncodeOpaque(t *testing.T) {
	for _, f := range []Format{FormatGrayA8, FormatRGBA8, FormatRGBAPremul} {
		px := make([]byte, f.BytesPerPixel())
		f.encode(px, 200, 200, 200, 255)
		r, g, b, a := f.decode(px)
		if r != 200 || g != 200 || b != 200 || a != 255 {
			t.Errorf("%v: decode(encode(200,200,200,255)) = %d,%d,%d,%d", f, r, g, b, a)
		}
	}
}

func TestFormatGrayDropsAlpha(t *testing.T) {
	px := []byte{0}
	FormatGray8.encode(px, 255, 255, 255, 255)
	if px[0] != 255 {
		t.Errorf("encode(white) = %d, want 255", px[0])
	}
	r, g, b, a := FormatGray8.decode(px)
	if r != 255 || g != 255 || b != 255 || a != 255 {
		t.Errorf("decode() = %d,%d,%d,%d, want opaque white", r, g, b, a)
	}
}

func TestFormatStraightAlpha(t *testing.T) {
	px := []byte{255, 0, 0, 128}
	r, _, _, a := FormatRGBA8.decode(px)
	if r != 128 || a != 128 {
		t.Errorf("decode() r=%d a=%d, want 128 128", r, a)
	}
	FormatRGBA8.encode(px, 128, 0, 0, 128)
	if px[0] != 255 || px[3] != 128 {
		t.Errorf("encode() = %v, want [255 0 0 128]", px)
	}
}
