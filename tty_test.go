package termstyle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsTerminalOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f) {
		t.Error("expected a regular file not to be a terminal")
	}
}

func TestTerminalSizeOnRegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, _, err := TerminalSize(f); err == nil {
		t.Error("expected an error querying the size of a regular file")
	}
}
