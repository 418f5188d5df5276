package input

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("ab\ncd\n"), 0o644))

	text, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", text)
}

func TestOpen_Stdin(t *testing.T) {
	text, err := Open(context.Background(), StdinPath, strings.NewReader("xy\n"))
	require.NoError(t, err)
	assert.Equal(t, "xy\n", text)
}

func TestOpen_Unavailable(t *testing.T) {
	ctx := context.Background()

	_, err := Open(ctx, "", nil)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = Open(ctx, filepath.Join(t.TempDir(), "missing.txt"), nil)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Open(ctx, StdinPath, nil)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestOpen_StdinCancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Open(ctx, StdinPath, pr)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.Canceled)

	// the reader side was closed, so nothing is left waiting on it
	_, err = pw.Write([]byte("late"))
	assert.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"inner blank kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"lone newline", "\n", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lines(tt.text))
		})
	}
}
