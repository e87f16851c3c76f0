// Package logging routes the standard logger for the game binaries.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const FileName = "snake.log"

// Setup discards log output unless debug is set, in which case it appends to
// dir/snake.log. The caller closes the returned file; it is nil when disabled.
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(filepath.Join(dir, FileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Println("logging started")
	return f, nil
}
