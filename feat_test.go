package termstyle

import (
	"errors"
	"testing"
)

func TestFeatKnownName(t *testing.T) {
	seq, err := Feat(Colors, "red")
	if err != nil {
		t.Fatalf("feat: %v", err)
	}
	if seq != "\x1b[31m" {
		t.Errorf("expected red escape, got %q", seq)
	}
}

func TestFeatUnknownName(t *testing.T) {
	_, err := Feat(Colors, "ultraviolet")
	if !errors.Is(err, ErrUnsupportedFeature) {
		t.Errorf("expected ErrUnsupportedFeature, got %v", err)
	}
}

func TestFeatStyles(t *testing.T) {
	seq, err := Feat(Styles, "underline")
	if err != nil {
		t.Fatalf("feat: %v", err)
	}
	if seq != "\x1b[4m" {
		t.Errorf("expected underline escape, got %q", seq)
	}
}

func TestMustFeatPanicsOnUnknown(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustFeat to panic")
		}
	}()
	MustFeat(Styles, "nonexistent")
}

func TestResetsUndoStyles(t *testing.T) {
	for name := range Styles {
		if _, err := Feat(Resets, name); err != nil {
			t.Errorf("expected a reset for style %q", name)
		}
	}
}

func TestColor256(t *testing.T) {
	if got := Color256(82); got != "\x1b[38;5;82m" {
		t.Errorf("expected indexed escape, got %q", got)
	}
	if got := Color256Bg(82); got != "\x1b[48;5;82m" {
		t.Errorf("expected indexed bg escape, got %q", got)
	}
}

func TestTrueColor(t *testing.T) {
	if got := TrueColor(1, 2, 3); got != "\x1b[38;2;1;2;3m" {
		t.Errorf("expected true-color escape, got %q", got)
	}
	if got := TrueColorBg(1, 2, 3); got != "\x1b[48;2;1;2;3m" {
		t.Errorf("expected true-color bg escape, got %q", got)
	}
}

func TestBlendEndpoints(t *testing.T) {
	got, err := Blend("#ff0000", "#0000ff", 0)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	if got != "\x1b[38;2;255;0;0m" {
		t.Errorf("expected pure red at t=0, got %q", got)
	}

	got, err = Blend("#ff0000", "#0000ff", 1)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	if got != "\x1b[38;2;0;0;255m" {
		t.Errorf("expected pure blue at t=1, got %q", got)
	}
}

func TestBlendClampsT(t *testing.T) {
	low, err := Blend("#ff0000", "#0000ff", -3)
	if err != nil {
		t.Fatalf("blend: %v", err)
	}
	zero, _ := Blend("#ff0000", "#0000ff", 0)
	if low != zero {
		t.Errorf("expected t=-3 to clamp to t=0, got %q", low)
	}
}

func TestBlendInvalidHex(t *testing.T) {
	if _, err := Blend("not-a-color", "#0000ff", 0.5); err == nil {
		t.Error("expected an error for an invalid hex color")
	}
}
