package termstyle

import (
	"bytes"
	"strings"
	"testing"
)

func TestProgressBarUpdate(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 100, WithProgressWriter(&out), WithProgressWidth(10))

	if err := bar.Update(50); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := out.String()
	if !strings.HasPrefix(got, "\r") {
		t.Errorf("expected update to rewrite the line, got %q", got)
	}
	if !strings.Contains(got, "[#####     ]") {
		t.Errorf("expected half-filled bar, got %q", got)
	}
	if !strings.Contains(got, "50%") {
		t.Errorf("expected percentage, got %q", got)
	}
}

func TestProgressBarClampsRange(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 100, WithProgressWriter(&out), WithProgressWidth(4))

	if err := bar.Update(250); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(out.String(), "[####] 100%") {
		t.Errorf("expected full bar at clamped value, got %q", out.String())
	}

	out.Reset()
	if err := bar.Update(-10); err != nil {
		t.Fatalf("update: %v", err)
	}
	if !strings.Contains(out.String(), "[    ]   0%") {
		t.Errorf("expected empty bar at clamped value, got %q", out.String())
	}
}

func TestProgressBarMessageAndFeat(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 10,
		WithProgressWriter(&out),
		WithProgressWidth(2),
		WithProgressMessage("copying"),
		WithProgressFeat(MustFeat(Colors, "green")),
	)

	if err := bar.Update(10); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "copying ") {
		t.Errorf("expected message before the bar, got %q", got)
	}
	if !strings.Contains(got, "\x1b[32m##\x1b[0m") {
		t.Errorf("expected styled fill, got %q", got)
	}
}

func TestProgressBarReset(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 10,
		WithProgressWriter(&out),
		WithProgressWidth(2),
		WithProgressMessage("first run"),
		WithProgressFeat(MustFeat(Colors, "green")),
	)

	if err := bar.Update(10); err != nil {
		t.Fatalf("update: %v", err)
	}

	bar.Reset()
	bar.SetMessage("second run")
	out.Reset()

	if err := bar.Update(5); err != nil {
		t.Fatalf("update: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "second run ") {
		t.Errorf("expected the new message, got %q", got)
	}
	if strings.Contains(got, "first run") || strings.Contains(got, "\x1b[32m") {
		t.Errorf("expected reset to drop the old message and style, got %q", got)
	}
}

func TestProgressBarFinish(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 100, WithProgressWriter(&out), WithProgressWidth(4))

	if err := bar.Finish(); err != nil {
		t.Fatalf("finish: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "100%") {
		t.Errorf("expected completed bar, got %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("expected finish to end the line, got %q", got)
	}
}

func TestProgressBarWithoutPercentage(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 100,
		WithProgressWriter(&out),
		WithProgressWidth(4),
		WithoutPercentage(),
	)

	if err := bar.Update(100); err != nil {
		t.Fatalf("update: %v", err)
	}
	if strings.Contains(out.String(), "%") {
		t.Errorf("expected no percentage, got %q", out.String())
	}
}

func TestProgressBarCollapsesUnderPlainText(t *testing.T) {
	var out bytes.Buffer
	bar := NewProgressBar(0, 100, WithProgressWriter(&out), WithProgressWidth(10))

	for _, v := range []float64{10, 50, 100} {
		if err := bar.Update(v); err != nil {
			t.Fatalf("update: %v", err)
		}
	}

	collapsed, err := PlainText().Format(out.String())
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if !strings.Contains(collapsed, "[##########] 100%") {
		t.Errorf("expected only the final state to survive, got %q", collapsed)
	}
	if strings.Contains(collapsed, "\r") {
		t.Errorf("expected no carriage returns in the collapsed text, got %q", collapsed)
	}
}

func TestSpinner(t *testing.T) {
	var out bytes.Buffer
	s := NewSpinner(&out)
	s.SetMessage("working")

	for i := 0; i < 5; i++ {
		if err := s.Spin(); err != nil {
			t.Fatalf("spin: %v", err)
		}
	}

	got := out.String()
	for _, frame := range []string{"|", "/", "-", "\\"} {
		if !strings.Contains(got, "\r"+frame+" working") {
			t.Errorf("expected frame %q, got %q", frame, got)
		}
	}

	out.Reset()
	if err := s.Done(); err != nil {
		t.Fatalf("done: %v", err)
	}
	if !strings.Contains(out.String(), "\r") {
		t.Errorf("expected done to clear the line, got %q", out.String())
	}
}
