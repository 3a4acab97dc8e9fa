// Package catalog holds the fixed table of reference black holes.
// The catalog is initialized once and never mutated; iteration order is
// the presentation order below.
package catalog

// BlackHole is one reference entry, mass in solar masses.
type BlackHole struct {
	Name        string
	SolarMasses float64
}

var known = []BlackHole{
	{Name: "Cygnus X-1", SolarMasses: 21.0},
	{Name: "Sagittarius A*", SolarMasses: 4.3e6},
	{Name: "M87*", SolarMasses: 6.5e9},
	{Name: "GW150914 remnant", SolarMasses: 62.0},
}

var index = func() map[string]int {
	m := make(map[string]int, len(known))
	for i, bh := range known {
		m[bh.Name] = i
	}
	return m
}()

// All returns the catalog entries in presentation order. The slice is a copy;
// callers cannot mutate the catalog through it.
func All() []BlackHole {
	out := make([]BlackHole, len(known))
	copy(out, known)
	return out
}

// Names returns the entry names in presentation order.
func Names() []string {
	names := make([]string, len(known))
	for i, bh := range known {
		names[i] = bh.Name
	}
	return names
}

// Lookup finds a catalog entry by exact name.
func Lookup(name string) (BlackHole, bool) {
	i, ok := index[name]
	if !ok {
		return BlackHole{}, false
	}
	return known[i], true
}
