package main

import (
	"fmt"
	"strings"

	css "github.com/mazznoer/csscolorparser"
)

// DiskPalette is the three-stop color ramp of the accretion disk,
// innermost first. Components are linear-ish [0,1] floats handed
// straight to the disk shader as vec3 uniforms.
type DiskPalette struct {
	Hot  [3]float64
	Warm [3]float64
	Cool [3]float64
}

var DefaultDiskPalette = DiskPalette{
	Hot:  [3]float64{1.0, 0.98, 0.92},
	Warm: [3]float64{1.0, 0.6, 0.2},
	Cool: [3]float64{0.8, 0.15, 0.05},
}

// ParseDiskPalette parses "hot,warm,cool" where each entry is a CSS
// color without embedded commas ("#fff8e7", "orange", "hsl(20 80% 50%)", ...).
func ParseDiskPalette(s string) (DiskPalette, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return DiskPalette{}, fmt.Errorf("palette needs 3 colors, got %d", len(parts))
	}

	var stops [3][3]float64

	for i, part := range parts {
		clr, err := css.Parse(strings.TrimSpace(part))
		if err != nil {
			return DiskPalette{}, fmt.Errorf("palette color %d: %w", i+1, err)
		}
		stops[i] = [3]float64{clr.R, clr.G, clr.B}
	}

	return DiskPalette{Hot: stops[0], Warm: stops[1], Cool: stops[2]}, nil
}
