package catalog

import "testing"

func TestOrderIsStable(t *testing.T) {
	expected := []string{"Cygnus X-1", "Sagittarius A*", "M87*", "GW150914 remnant"}

	names := Names()
	if len(names) != len(expected) {
		t.Fatalf("expected %d entries, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("position %d: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestLookup(t *testing.T) {
	bh, ok := Lookup("Cygnus X-1")
	if !ok {
		t.Fatal("expected Cygnus X-1 in catalog")
	}
	if bh.SolarMasses != 21.0 {
		t.Errorf("expected 21 solar masses, got %f", bh.SolarMasses)
	}

	if _, ok := Lookup("TON 618"); ok {
		t.Error("expected miss for name outside the catalog")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].SolarMasses = -1

	again := All()
	if again[0].SolarMasses != 21.0 {
		t.Error("mutating All()'s result must not affect the catalog")
	}
}
