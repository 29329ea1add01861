package collide

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := buildOptions(nil)
	if o.exhaustive {
		t.Error("exhaustive should default to false")
	}
	if o.arrowOffset != 0 {
		t.Errorf("arrowOffset = %v, want 0", o.arrowOffset)
	}
	if o.diagonalMargin != defaultDiagonalMargin {
		t.Errorf("diagonalMargin = %v, want %v", o.diagonalMargin, defaultDiagonalMargin)
	}
}

func TestBuildOptions(t *testing.T) {
	o := buildOptions([]Option{
		WithExhaustive(),
		nil,
		WithArrowOffset(12),
		WithDiagonalMargin(3),
	})
	if !o.exhaustive {
		t.Error("WithExhaustive was not applied")
	}
	if o.arrowOffset != 12 {
		t.Errorf("arrowOffset = %v, want 12", o.arrowOffset)
	}
	if o.diagonalMargin != 3 {
		t.Errorf("diagonalMargin = %v, want 3", o.diagonalMargin)
	}
}

func TestBuildOptions_LastWins(t *testing.T) {
	o := buildOptions([]Option{WithArrowOffset(1), WithArrowOffset(-4)})
	if o.arrowOffset != -4 {
		t.Errorf("arrowOffset = %v, want -4", o.arrowOffset)
	}
}
