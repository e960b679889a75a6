package window

import (
	"image/color"
	"testing"

	"github.com/vovakirdan/fruitslice/internal/core"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#87CEEB", color.RGBA{0x87, 0xce, 0xeb, 0xff}, false},
		{"87ceeb", color.RGBA{0x87, 0xce, 0xeb, 0xff}, false},
		{" #000000 ", color.RGBA{0, 0, 0, 0xff}, false},
		{"#fff", color.RGBA{}, true},
		{"#zzzzzz", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextureColor(t *testing.T) {
	if textureColor("fruit1") == textureColor("fruit4") {
		t.Error("fruit textures share a color")
	}
	if textureColor("unknown") != fallbackColor {
		t.Error("unknown texture should use the fallback")
	}
}

func TestPointerTracker(t *testing.T) {
	var p pointerTracker
	frame := core.NewInputFrame()

	if !p.observe(0, 0, &frame) {
		t.Error("first poll should count as a move")
	}
	if p.observe(0, 0, &frame) {
		t.Error("unchanged cursor reported a move")
	}
	if !p.observe(10, 20, &frame) {
		t.Error("cursor move not reported")
	}
	if len(frame.Pointer) != 2 || frame.Pointer[1] != (core.PointerMove{X: 10, Y: 20}) {
		t.Errorf("pointer moves = %v", frame.Pointer)
	}
}
