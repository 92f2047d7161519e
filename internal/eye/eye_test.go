package eye

import "testing"

type recordingWorklist struct {
	ids []int
}

func (w *recordingWorklist) Register(id int) {
	w.ids = append(w.ids, id)
}

func newTestEye(width float64) (*Eye, *recordingWorklist) {
	w := &recordingWorklist{}
	return New(3, 100, 50, width, Palette[0], w), w
}

// settle runs Update until the eye unregisters, failing after limit steps.
func settle(t *testing.T, e *Eye, limit int) int {
	t.Helper()
	steps := 0
	for e.Update() {
		steps++
		if steps > limit {
			t.Fatalf("eye did not settle within %d updates", limit)
		}
	}
	return steps
}

func TestNewDerivesGeometry(t *testing.T) {
	e, _ := newTestEye(50)

	if e.Height() != 25 {
		t.Fatalf("expected height 25, got %v", e.Height())
	}
	if e.IrisRadius() != 10 {
		t.Fatalf("expected iris radius 10, got %v", e.IrisRadius())
	}
	if e.BasePupil() != 5.5 {
		t.Fatalf("expected base pupil 5.5, got %v", e.BasePupil())
	}
	if e.Active() || e.NeedsUpdate() || e.Blinking() || e.WideOpen() {
		t.Fatal("expected a fresh eye to be idle and inactive")
	}
	cur, target := e.Aperture()
	if cur != 0 || target != 25 {
		t.Fatalf("expected closed aperture primed to open, got %v -> %v", cur, target)
	}
}

func TestActivateOpensEye(t *testing.T) {
	e, w := newTestEye(49)
	e.Activate()

	if !e.Active() || !e.NeedsUpdate() {
		t.Fatal("expected active eye registered for update")
	}
	if len(w.ids) != 1 || w.ids[0] != 3 {
		t.Fatalf("expected registration of id 3, got %v", w.ids)
	}

	settle(t, e, 50)
	cur, target := e.Aperture()
	if cur != e.Height() || target != e.Height() {
		t.Fatalf("expected fully open at %v, got %v -> %v", e.Height(), cur, target)
	}
	if !e.Settled() {
		t.Fatal("expected settled eye")
	}
}

func TestBlinkCycleReopensAutomatically(t *testing.T) {
	e, _ := newTestEye(49)
	e.Activate()
	settle(t, e, 50)

	e.Blink()
	if !e.Blinking() {
		t.Fatal("expected blinking after Blink")
	}
	_, _, r := e.PupilTarget()
	if r != PupilDilation*e.BasePupil() {
		t.Fatalf("expected dilated pupil target, got %v", r)
	}

	sawClosed := false
	steps := 0
	for e.Update() {
		if cur, _ := e.Aperture(); cur == 0 {
			sawClosed = true
		}
		steps++
		if steps > 100 {
			t.Fatal("blink cycle did not finish")
		}
	}

	if !sawClosed {
		t.Fatal("expected aperture to reach 0 during the blink")
	}
	if e.Blinking() {
		t.Fatal("expected blinking cleared after the cycle")
	}
	cur, target := e.Aperture()
	if cur != e.Height() || target != e.Height() {
		t.Fatalf("expected reopened to %v, got %v -> %v", e.Height(), cur, target)
	}
	if _, _, r := e.Pupil(); r != e.BasePupil() {
		t.Fatalf("expected base pupil after blink, got %v", r)
	}
}

func TestBlinkAgainMidReopenRestartsClose(t *testing.T) {
	e, _ := newTestEye(49)
	e.Activate()
	settle(t, e, 50)

	e.Blink()
	for {
		e.Update()
		if _, target := e.Aperture(); target == e.Height() {
			break
		}
	}

	e.Blink()
	if _, target := e.Aperture(); target != 0 {
		t.Fatalf("expected close target after second blink, got %v", target)
	}
	settle(t, e, 100)
	if e.Blinking() {
		t.Fatal("expected blink flag cleared")
	}
	if cur, _ := e.Aperture(); cur != e.Height() {
		t.Fatalf("expected open after restarted blink, got %v", cur)
	}
}

func TestOpenWide(t *testing.T) {
	e, _ := newTestEye(72)
	e.Activate()
	e.LookCenter()
	e.OpenWide()

	if !e.WideOpen() {
		t.Fatal("expected wide open flag")
	}
	settle(t, e, 100)

	cur, _ := e.Aperture()
	if want := WideOpenRatio * e.Width(); cur != want {
		t.Fatalf("expected aperture %v, got %v", want, cur)
	}
	if _, _, r := e.Pupil(); r != PupilContraction*e.BasePupil() {
		t.Fatalf("expected contracted pupil, got %v", r)
	}

	e.ClearWideOpen()
	e.Open()
	settle(t, e, 100)
	if cur, _ := e.Aperture(); cur != e.Height() {
		t.Fatalf("expected normal open after clearing, got %v", cur)
	}
}

func TestLookTargets(t *testing.T) {
	tests := []struct {
		name  string
		look  func(*Eye)
		wantX float64
		wantY float64
		wantH Horizontal
		wantV Vertical
	}{
		{"left", (*Eye).LookLeft, -0.225 * 80, 0, Left, CenterV},
		{"right", (*Eye).LookRight, 0.225 * 80, 0, Right, CenterV},
		{"up", (*Eye).LookUp, 0, -0.15 * 40, CenterH, Up},
		{"down", (*Eye).LookDown, 0, 0.15 * 40, CenterH, Down},
		{"center", (*Eye).LookCenter, 0, 0, CenterH, CenterV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, w := newTestEye(80)
			tt.look(e)
			x, y, _ := e.PupilTarget()
			if x != tt.wantX || y != tt.wantY {
				t.Fatalf("expected target (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, x, y)
			}
			if e.Horizontal() != tt.wantH || e.Vertical() != tt.wantV {
				t.Fatalf("expected positions %v/%v, got %v/%v", tt.wantH, tt.wantV, e.Horizontal(), e.Vertical())
			}
			if !e.NeedsUpdate() || len(w.ids) == 0 {
				t.Fatal("expected look to register for update")
			}
		})
	}
}

func TestDeactivateHardResets(t *testing.T) {
	e, _ := newTestEye(49)
	e.Activate()
	e.LookLeft()
	e.LookDown()
	e.OpenWide()
	e.Update()

	e.Deactivate()
	if e.Active() || e.NeedsUpdate() || e.Blinking() || e.WideOpen() {
		t.Fatal("expected idle inactive eye")
	}
	cur, target := e.Aperture()
	if cur != 0 || target != e.Height() {
		t.Fatalf("expected closed aperture primed open, got %v -> %v", cur, target)
	}
	x, y, r := e.Pupil()
	if x != 0 || y != 0 || r != e.BasePupil() {
		t.Fatalf("expected centered base pupil, got (%v, %v, %v)", x, y, r)
	}

	e.Deactivate()
	if e.Active() {
		t.Fatal("expected repeated Deactivate to stay inactive")
	}
}

func TestReactivationAnimatesOpen(t *testing.T) {
	e, _ := newTestEye(49)
	e.Activate()
	settle(t, e, 50)
	e.Deactivate()

	e.Activate()
	if cur, _ := e.Aperture(); cur != 0 {
		t.Fatalf("expected reactivated eye to start closed, got %v", cur)
	}
	settle(t, e, 50)
	if cur, _ := e.Aperture(); cur != e.Height() {
		t.Fatalf("expected eye open, got %v", cur)
	}
}

func TestResetHardReopens(t *testing.T) {
	e, _ := newTestEye(49)
	e.Blink()
	e.Reset()

	if !e.Active() || e.Blinking() {
		t.Fatal("expected active non-blinking eye after reset")
	}
	if cur, target := e.Aperture(); cur != e.Height() || target != e.Height() {
		t.Fatalf("expected fully open, got %v -> %v", cur, target)
	}
	if !e.Settled() {
		t.Fatal("expected nothing left to animate")
	}
}

func TestUpdateOnSettledEyeIsIdempotent(t *testing.T) {
	e, _ := newTestEye(49)
	e.Reset()
	for range 3 {
		if e.Update() {
			t.Fatal("expected settled eye to report no update needed")
		}
	}
	if cur, _ := e.Aperture(); cur != e.Height() {
		t.Fatalf("expected aperture unchanged, got %v", cur)
	}
}

func TestZeroWidthBlinkEnds(t *testing.T) {
	e, _ := newTestEye(0)
	e.Activate()
	e.Blink()
	settle(t, e, 5)
	if e.Blinking() || e.NeedsUpdate() {
		t.Fatal("expected a zero-width eye to finish its blink")
	}
}
