// Package sink provides the output destinations entity display lines are
// written to: the console, or a file with an owned handle that must be
// closed after the last write.
package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Sink is a destination for rendered text, one line at a time.
type Sink interface {
	WriteLine(text string) error
}

// Console writes lines straight to a writer, stdout by default.
type Console struct {
	w io.Writer
}

// NewConsole creates a console sink writing to stdout.
func NewConsole() *Console {
	return &Console{w: os.Stdout}
}

// NewConsoleWriter creates a console sink writing to w.
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{w: w}
}

// WriteLine writes text followed by a newline, unbuffered.
func (c *Console) WriteLine(text string) error {
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// File writes lines to a file it owns. The path is opened in truncate-create
// mode at construction; Close flushes buffered lines and releases the handle.
// Writing after Close is not allowed.
type File struct {
	f   *os.File
	buf *bufio.Writer
}

// NewFile creates a file sink at path, truncating any existing content.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open output file: %w", err)
	}
	return &File{f: f, buf: bufio.NewWriter(f)}, nil
}

// WriteLine writes text followed by a newline.
func (s *File) WriteLine(text string) error {
	if _, err := fmt.Fprintln(s.buf, text); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// Close flushes buffered output and closes the file.
func (s *File) Close() error {
	if err := s.buf.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	if err := s.f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
