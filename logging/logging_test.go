package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func restoreLogger(t *testing.T) {
	out, flags := log.Writer(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})
}

func TestSetupDisabledByDefault(t *testing.T) {
	restoreLogger(t)

	f, err := Setup(false, t.TempDir())
	if err != nil || f != nil {
		t.Fatalf("Setup(false) = %v, %v", f, err)
	}
	if log.Writer() != io.Discard {
		t.Errorf("expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupWritesFile(t *testing.T) {
	restoreLogger(t)
	dir := filepath.Join(t.TempDir(), "nested")

	f, err := Setup(true, dir)
	if err != nil {
		t.Fatal(err)
	}
	log.Println("test log message")
	f.Close()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "test log message") {
		t.Fatalf("log file missing message: %q", data)
	}
}
