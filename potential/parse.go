package potential

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSources parses a source coordinate string of the form
// "x1,y1,z1;x2,y2,z2". A single source needs no semicolon.
func ParseSources(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty source string")
	}
	var coords [][]float64
	for _, group := range strings.Split(s, ";") {
		fields := strings.Split(group, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("source %q must have 3 coordinates (x,y,z), found %d", group, len(fields))
		}
		coord := make([]float64, 3)
		for d, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("source %q: %v", group, err)
			}
			coord[d] = v
		}
		coords = append(coords, coord)
	}
	return coords, nil
}

// ParseCharges parses a charge list such as "1.0,-0.8" or "1.0;-0.8"
func ParseCharges(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty charge string")
	}
	sep := ","
	if strings.Contains(s, ";") {
		sep = ";"
	}
	var charges []float64
	for _, f := range strings.Split(s, sep) {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("charge %q: %v", f, err)
		}
		charges = append(charges, v)
	}
	return charges, nil
}
