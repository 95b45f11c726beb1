package core

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedLineReader(t *testing.T) {
	out := &bytes.Buffer{}
	reader := NewBufferedLineReader(strings.NewReader("first\n\nthird line\r\nlast"), out, 4)

	for _, want := range []string{"first", "", "third line\r", "last"} {
		line, err := reader.ReadLine("> ")
		require.Nil(t, err)
		assert.Equal(t, want, line)
	}

	line, err := reader.ReadLine("> ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "", line)

	// Still at the end.
	_, err = reader.ReadLine("> ")
	assert.Equal(t, io.EOF, err)

	assert.Equal(t, strings.Repeat("> ", 6), out.String())
}

func TestBufferedLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("abcdefghij", 1000)
	reader := NewBufferedLineReader(strings.NewReader(long+"\nnext\n"), io.Discard, 3)

	line, err := reader.ReadLine("")
	require.Nil(t, err)
	assert.Equal(t, long, line)

	line, err = reader.ReadLine("")
	require.Nil(t, err)
	assert.Equal(t, "next", line)
}

func TestBufferedLineReader_Empty(t *testing.T) {
	reader := NewBufferedLineReader(strings.NewReader(""), io.Discard, 0)

	_, err := reader.ReadLine(">>")
	assert.Equal(t, io.EOF, err)
}

func TestGrowBy(t *testing.T) {
	s := make([]byte, 0, 2)
	s = append(s, 'a', 'b')

	grown := growBy(s, 2)
	assert.Equal(t, []byte("ab"), grown)
	assert.Equal(t, 4, cap(grown))

	assert.Equal(t, 3, cap(growBy(s, 0)))
}

func TestInputGate(t *testing.T) {
	pr, pw := io.Pipe()
	defer pr.Close()
	gate := newInputGate(pr)

	type result struct {
		data string
		err  error
	}
	readGate := func() <-chan result {
		done := make(chan result, 1)
		go func() {
			buf := make([]byte, 16)
			n, err := gate.Read(buf)
			done <- result{string(buf[:n]), err}
		}()
		return done
	}

	// Shut: input goes to whoever else reads the stream.
	pending := readGate()
	go pw.Write([]byte("x"))
	buf := make([]byte, 1)
	_, err := io.ReadFull(pr, buf)
	require.Nil(t, err)
	assert.Equal(t, "x", string(buf))

	select {
	case got := <-pending:
		t.Fatalf("read through shut gate: %q", got.data)
	case <-time.After(50 * time.Millisecond):
	}

	// Open: the pending read gets the next input.
	gate.open()
	go pw.Write([]byte("ls\r"))
	got := <-pending
	require.Nil(t, got.err)
	assert.Equal(t, "ls\r", got.data)

	// The line terminator shut the gate again.
	pending = readGate()
	go pw.Write([]byte("y"))
	_, err = io.ReadFull(pr, buf)
	require.Nil(t, err)
	assert.Equal(t, "y", string(buf))

	select {
	case got := <-pending:
		t.Fatalf("read after line terminator: %q", got.data)
	case <-time.After(50 * time.Millisecond):
	}

	gate.open()
	pw.Close()
	got = <-pending
	assert.Equal(t, io.EOF, got.err)
}
