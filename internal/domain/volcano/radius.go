package volcano

import "strings"

type Radius string

const (
	Radius5km   Radius = "5km"
	Radius10km  Radius = "10km"
	Radius30km  Radius = "30km"
	Radius100km Radius = "100km"
)

var radii = []Radius{Radius5km, Radius10km, Radius30km, Radius100km}

func ParseRadius(s string) (Radius, bool) {
	for _, r := range radii {
		if string(r) == s {
			return r, true
		}
	}
	return "", false
}

// Column is the dataset column holding the population counter for r.
func (r Radius) Column() string {
	return "population_" + string(r)
}

// ValidRadii lists the accepted populatedWithin values, comma separated.
func ValidRadii() string {
	out := make([]string, len(radii))
	for i, r := range radii {
		out[i] = string(r)
	}
	return strings.Join(out, ",")
}
