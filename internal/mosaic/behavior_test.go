package mosaic

import "testing"

func TestChooseHorizontal(t *testing.T) {
	tests := []struct {
		r    float64
		want Behavior
	}{
		{0, LookLeft},
		{0.169, LookLeft},
		{0.17, LookCenterHorizontal},
		{0.329, LookCenterHorizontal},
		{0.33, LookRight},
		{0.499, LookRight},
		{0.50, Blink},
		{0.999, Blink},
	}
	for _, tt := range tests {
		if got := Choose(HorizontalBands, tt.r); got != tt.want {
			t.Errorf("Choose(horizontal, %v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestChooseVertical(t *testing.T) {
	tests := []struct {
		r    float64
		want Behavior
	}{
		{0.1, LookUp},
		{0.2, LookCenterVertical},
		{0.4, LookDown},
		{0.5, NoBehavior},
		{0.9, NoBehavior},
	}
	for _, tt := range tests {
		if got := Choose(VerticalBands, tt.r); got != tt.want {
			t.Errorf("Choose(vertical, %v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestBandsAreCumulative(t *testing.T) {
	for name, bands := range map[string][]Band{"horizontal": HorizontalBands, "vertical": VerticalBands} {
		prev := 0.0
		for _, b := range bands {
			if b.UpTo <= prev || b.UpTo > 1 {
				t.Fatalf("%s: band bound %v does not follow %v", name, b.UpTo, prev)
			}
			prev = b.UpTo
		}
	}
}

func TestBehaviorString(t *testing.T) {
	if Blink.String() != "blink" || NoBehavior.String() != "none" || LookCenterVertical.String() != "look-center-v" {
		t.Fatalf("unexpected names: %v %v %v", Blink, NoBehavior, LookCenterVertical)
	}
}
