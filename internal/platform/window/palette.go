package window

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/vovakirdan/fruitslice/internal/games/fruit"
)

// Fallback colors for textures without an image.
var textureColors = map[string]color.RGBA{
	"fruit1":          {0xe5, 0x39, 0x35, 0xff}, // Red
	"fruit2":          {0xfb, 0x8c, 0x00, 0xff}, // Orange
	"fruit3":          {0xfd, 0xd8, 0x35, 0xff}, // Yellow
	"fruit4":          {0x43, 0xa0, 0x47, 0xff}, // Green
	fruit.TextureBomb: {0x26, 0x26, 0x26, 0xff},
}

var (
	fallbackColor = color.RGBA{0xd8, 0x1b, 0x60, 0xff}
	bladeColor    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	fuseColor     = color.RGBA{0xff, 0xd5, 0x4f, 0xff}
	cutColor      = color.RGBA{0xff, 0xf8, 0xe1, 0xff}
	skyColor      = color.RGBA{0x87, 0xce, 0xeb, 0xff}
)

// textureColor returns the fallback fill for a texture.
func textureColor(texture string) color.RGBA {
	if c, ok := textureColors[texture]; ok {
		return c
	}
	return fallbackColor
}

// parseHexColor parses "#RRGGBB" or "RRGGBB".
func parseHexColor(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("window: bad color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("window: bad color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
