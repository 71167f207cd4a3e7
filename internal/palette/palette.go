// Package palette implements player color tagging and the banded
// background gradient derived from the tags.
package palette

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/countermtg/internal/models"
)

// DefaultBands is the number of horizontal bands in a player background
const DefaultBands = 24

// ErrInvalidColor is returned for strings that are not #rrggbb colors
var ErrInvalidColor = errors.New("invalid hex color")

// SeatColors are the default seed colors, one per seat
var SeatColors = []string{"#1e40af", "#b91c1c", "#0f766e", "#7e22ce", "#b45309", "#2563eb"}

// Fixed is the palette shown first
var Fixed = []string{
	"#f8fafc", // white
	"#1d4ed8", // blue
	"#111827", // black
	"#dc2626", // red
	"#16a34a", // green
}

// Extended is the additional palette behind "more colors"
var Extended = []string{
	"#f59e0b",
	"#7c3aed",
	"#db2777",
	"#0891b2",
	"#65a30d",
	"#78716c",
	"#ea580c",
	"#0d9488",
	"#4f46e5",
	"#be123c",
}

// All returns the fixed palette followed by the extended palette
func All() []string {
	all := make([]string, 0, len(Fixed)+len(Extended))
	all = append(all, Fixed...)
	return append(all, Extended...)
}

// SeatColor returns the seed color for seat
func SeatColor(seat int) string {
	if seat < 0 {
		seat = -seat
	}
	return SeatColors[seat%len(SeatColors)]
}

// Seed returns tags holding only the seed color
func Seed(color string) models.ColorTags {
	return models.ColorTags{
		Tags:   []string{color},
		Seed:   color,
		Seeded: true,
	}
}

// Toggle selects or deselects color.
//
// Selecting while only the seed is present replaces the seed. Selecting
// while MaxColorTags colors are present changes nothing. Deselecting a
// present color removes it; removing the last tag restores the seed.
func Toggle(tags models.ColorTags, color string) (models.ColorTags, error) {
	c, err := Normalize(color)
	if err != nil {
		return tags, err
	}

	if !tags.Seeded {
		for i, existing := range tags.Tags {
			if existing != c {
				continue
			}
			next := make([]string, 0, len(tags.Tags)-1)
			next = append(next, tags.Tags[:i]...)
			next = append(next, tags.Tags[i+1:]...)
			if len(next) == 0 {
				return Seed(tags.Seed), nil
			}
			return models.ColorTags{Tags: next, Seed: tags.Seed}, nil
		}
	}

	if tags.Seeded || len(tags.Tags) == 0 {
		return models.ColorTags{Tags: []string{c}, Seed: tags.Seed}, nil
	}

	if len(tags.Tags) >= models.MaxColorTags {
		return tags, nil
	}

	next := make([]string, 0, len(tags.Tags)+1)
	next = append(next, tags.Tags...)
	next = append(next, c)
	return models.ColorTags{Tags: next, Seed: tags.Seed}, nil
}

// Normalize lowercases a #rrggbb color and validates it
func Normalize(color string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(color))
	if !strings.HasPrefix(c, "#") {
		c = "#" + c
	}
	if _, err := parse(c); err != nil {
		return "", err
	}
	return c, nil
}

// Bands spreads 1 to 3 color stops over n horizontal bands.
//
// Two stops interpolate linearly with t = i/(n-1). Three stops split the
// bands: the first ceil(n/2) go stop0 to stop1, the rest stop1 to stop2.
func Bands(stops []string, n int) ([]string, error) {
	if n < 1 {
		return nil, fmt.Errorf("band count must be positive, got %d", n)
	}
	if len(stops) == 0 || len(stops) > models.MaxColorTags {
		return nil, fmt.Errorf("need 1 to %d color stops, got %d", models.MaxColorTags, len(stops))
	}

	rgbs := make([]rgb, 0, len(stops))
	for _, s := range stops {
		c, err := parse(strings.ToLower(s))
		if err != nil {
			return nil, err
		}
		rgbs = append(rgbs, c)
	}

	bands := make([]string, 0, n)
	switch len(rgbs) {
	case 1:
		for i := 0; i < n; i++ {
			bands = append(bands, rgbs[0].hex())
		}
	case 2:
		bands = appendRamp(bands, rgbs[0], rgbs[1], n)
	default:
		first := (n + 1) / 2
		bands = appendRamp(bands, rgbs[0], rgbs[1], first)
		bands = appendRamp(bands, rgbs[1], rgbs[2], n-first)
	}
	return bands, nil
}

// BandsFor returns the background bands for a player's tags
func BandsFor(tags models.ColorTags, n int) ([]string, error) {
	if len(tags.Tags) == 0 {
		return Bands([]string{tags.Seed}, n)
	}
	return Bands(tags.Tags, n)
}

func appendRamp(dst []string, from, to rgb, n int) []string {
	for i := 0; i < n; i++ {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		dst = append(dst, lerp(from, to, t).hex())
	}
	return dst
}

type rgb struct {
	r, g, b uint8
}

func parse(s string) (rgb, error) {
	if len(s) != 7 || s[0] != '#' {
		return rgb{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rgb{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return rgb{r: uint8(v >> 16), g: uint8(v >> 8), b: uint8(v)}, nil
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

func lerp(a, b rgb, t float64) rgb {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return rgb{r: mix(a.r, b.r), g: mix(a.g, b.g), b: mix(a.b, b.b)}
}
