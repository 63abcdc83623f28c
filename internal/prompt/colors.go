package prompt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PaletteVariations derives count palettes from the base palette. The first
// entry is the base itself; each following palette rotates every hue by a
// tenth of the color wheel, so variations stay related but distinct.
func PaletteVariations(base []string, count int) [][]string {
	variations := make([][]string, 0, count)
	current := base
	for i := 0; i < count; i++ {
		variations = append(variations, current)
		next := make([]string, len(current))
		for j, c := range current {
			next[j] = rotateHue(c)
		}
		current = next
	}
	return variations
}

func rotateHue(hex string) string {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return hex
	}
	h, s, v := rgbToHSV(r, g, b)
	h = math.Mod(h+0.1, 1.0)
	nr, ng, nb := hsvToRGB(h, s, v)
	return fmt.Sprintf("#%02x%02x%02x", nr, ng, nb)
}

func parseHex(hex string) (r, g, b uint8, err error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color: %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, err
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

func rgbToHSV(r, g, b uint8) (h, s, v float64) {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255
	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	v = max

	d := max - min
	if max > 0 {
		s = d / max
	}
	if d == 0 {
		return 0, s, v
	}

	switch max {
	case rf:
		h = math.Mod((gf-bf)/d, 6)
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6
	if h < 0 {
		h++
	}
	return h, s, v
}

func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return uint8(math.Round(rf * 255)), uint8(math.Round(gf * 255)), uint8(math.Round(bf * 255))
}
