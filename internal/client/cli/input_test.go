package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "line", in: "hello world\n", want: "hello world"},
		{name: "last line without newline", in: "lastline", want: "lastline"},
		{name: "padded", in: "  demo \r\n", want: "demo"},
		{name: "closed input", in: "", wantErr: ErrNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := GetSimpleText(reader(tt.in), "Name?", &out)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Name?\n> ", out.String())
		})
	}
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer

	got, err := GetMultiline(reader("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = GetMultiline(reader("a\r\nb"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func stubTerminal(t *testing.T, tty bool, read func(int) ([]byte, error)) {
	t.Helper()
	origRead, origTTY, origFd := readPassword, isTerminal, stdinFd
	readPassword = read
	isTerminal = func(int) bool { return tty }
	stdinFd = func() int { return 0 }
	t.Cleanup(func() {
		readPassword, isTerminal, stdinFd = origRead, origTTY, origFd
	})
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return []byte("s3cret"), nil })

	var out bytes.Buffer
	pw, err := GetPassword(reader("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.True(t, strings.HasPrefix(out.String(), "Enter password: "))
}

func TestGetPassword_TerminalError(t *testing.T) {
	stubTerminal(t, true, func(int) ([]byte, error) { return nil, errors.New("boom") })

	var out bytes.Buffer
	_, err := GetPassword(reader(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, func(int) ([]byte, error) {
		t.Fatal("terminal must not be touched for piped input")
		return nil, nil
	})

	in := reader("demo123\nnext\n")
	var out bytes.Buffer
	pw, err := GetPassword(in, &out)
	require.NoError(t, err)
	assert.Equal(t, "demo123", string(pw))

	rest, err := in.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "next\n", rest)

	_, err = GetPassword(reader(""), &out)
	require.ErrorIs(t, err, ErrNoInput)
}
