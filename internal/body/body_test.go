package body

import (
	"testing"
)

func TestDefaultSystem(t *testing.T) {
	planets := DefaultSystem()

	if len(planets) != 8 {
		t.Fatalf("expected 8 planets, got %d", len(planets))
	}
	if err := Validate(planets); err != nil {
		t.Errorf("default table should validate: %v", err)
	}

	earth, ok := Find(planets, "Earth")
	if !ok {
		t.Fatal("expected Earth in default table")
	}
	if len(earth.Moons) != 1 {
		t.Errorf("expected 1 moon for Earth, got %d", len(earth.Moons))
	}
}

func TestFindCaseInsensitive(t *testing.T) {
	planets := DefaultSystem()

	if _, ok := Find(planets, "jupiter"); !ok {
		t.Error("expected case-insensitive lookup to find jupiter")
	}
	if _, ok := Find(planets, "Pluto"); ok {
		t.Error("did not expect to find Pluto")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		planets []Planet
		wantErr bool
	}{
		{"empty table", nil, true},
		{"valid", []Planet{{Name: "A", Radius: 1, Distance: 5}}, false},
		{"empty name", []Planet{{Radius: 1, Distance: 5}}, true},
		{"zero radius", []Planet{{Name: "A", Distance: 5}}, true},
		{"zero distance", []Planet{{Name: "A", Radius: 1}}, true},
		{"duplicate name", []Planet{
			{Name: "A", Radius: 1, Distance: 5},
			{Name: "a", Radius: 1, Distance: 8},
		}, true},
		{"moon with empty name", []Planet{
			{Name: "A", Radius: 1, Distance: 5, Moons: []Moon{{Radius: 0.1, Distance: 2}}},
		}, true},
		{"moon inside planet", []Planet{
			{Name: "A", Radius: 1, Distance: 5, Moons: []Moon{{Name: "m", Radius: 0.1, Distance: 0.5}}},
		}, true},
		{"valid moon", []Planet{
			{Name: "A", Radius: 1, Distance: 5, Moons: []Moon{{Name: "m", Radius: 0.1, Distance: 2}}},
		}, false},
	}

	for _, tt := range tests {
		err := Validate(tt.planets)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
