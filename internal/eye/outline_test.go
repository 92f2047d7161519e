package eye

import "testing"

func TestOutlineHalfHeight(t *testing.T) {
	o := Outline{HalfWidth: 20, Aperture: 10}

	tests := []struct {
		x    float64
		want float64
	}{
		{0, 5},
		{10, 3.75},
		{-10, 3.75},
		{20, 0},
		{25, 0},
	}
	for _, tt := range tests {
		if got := o.HalfHeightAt(tt.x); got != tt.want {
			t.Errorf("HalfHeightAt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestOutlineContains(t *testing.T) {
	o := Outline{HalfWidth: 20, Aperture: 10}
	if !o.Contains(0, 4.9) || !o.Contains(0, -4.9) {
		t.Fatal("expected points near the midline peak inside")
	}
	if o.Contains(0, 5.1) || o.Contains(19.9, 1) {
		t.Fatal("expected points past the lids outside")
	}

	closed := Outline{HalfWidth: 20}
	if closed.Contains(0, 0) {
		t.Fatal("expected a closed eye to contain nothing")
	}
}

func TestOutlineTracksAperture(t *testing.T) {
	e := New(0, 0, 0, 40, Palette[1], nil)
	if e.Outline().Bulge() != 0 {
		t.Fatal("expected flat outline on a closed eye")
	}
	e.Activate()
	e.Update()
	cur, _ := e.Aperture()
	if got := e.Outline().Bulge(); got != cur {
		t.Fatalf("expected bulge %v to follow aperture %v", got, cur)
	}
}
