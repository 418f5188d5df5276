// Package input reads puzzle input as whole text.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinPath selects standard input instead of a file.
const StdinPath = "-"

// ErrUnavailable means the input could not be obtained at all.
var ErrUnavailable = errors.New("could not obtain input")

// Open returns the full text at path, or of stdin when path is StdinPath.
// Reading stdin stops early when ctx is cancelled; a stdin that is an
// io.Closer is closed then so the pending read returns.
func Open(ctx context.Context, path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return "", fmt.Errorf("%w: no input path given", ErrUnavailable)
	case StdinPath:
		if stdin == nil {
			return "", fmt.Errorf("%w: stdin not available", ErrUnavailable)
		}
		return readAll(ctx, stdin)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return string(data), nil
}

func readAll(ctx context.Context, r io.Reader) (string, error) {
	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(r)
		done <- result{data, err}
	}()

	select {
	case <-ctx.Done():
		// Unblocks the reader goroutine. A reader that cannot be closed keeps
		// it parked until the process exits.
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
		return "", fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("%w: read stdin: %w", ErrUnavailable, res.err)
		}
		return string(res.data), nil
	}
}

// Lines splits text on newlines, drops carriage returns and ignores the
// empty element produced by a trailing newline.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
