package core

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/abiosoft/readline"
	"github.com/josephlewis42/minish/core/vos"
)

// DefaultLineBuffer is the initial size and growth increment of the line
// buffer.
const DefaultLineBuffer = 1024

// LineReader reads one line of input after displaying prompt. It returns
// io.EOF if the input ended before any character was read.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// BufferedLineReader reads lines a byte at a time from a stream.
type BufferedLineReader struct {
	r    *bufio.Reader
	w    io.Writer
	unit int
}

var _ LineReader = (*BufferedLineReader)(nil)

// NewBufferedLineReader reads lines from in and writes prompts to out. The
// line buffer starts at unit bytes and grows unit bytes at a time.
func NewBufferedLineReader(in io.Reader, out io.Writer, unit int) *BufferedLineReader {
	if unit <= 0 {
		unit = DefaultLineBuffer
	}
	return &BufferedLineReader{
		r:    bufio.NewReader(in),
		w:    out,
		unit: unit,
	}
}

// ReadLine implements LineReader.ReadLine. The terminating newline isn't
// included in the result. A final line without a newline is returned as-is.
func (b *BufferedLineReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(b.w, prompt)

	buf := make([]byte, 0, b.unit)
	for {
		c, err := b.r.ReadByte()
		switch {
		case err == io.EOF && len(buf) == 0:
			return "", io.EOF
		case err == io.EOF:
			return string(buf), nil
		case err != nil:
			return "", err
		case c == '\n':
			return string(buf), nil
		}

		if len(buf) == cap(buf) {
			buf = growBy(buf, b.unit)
		}
		buf = append(buf, c)
	}
}

// InteractiveLineReader reads lines from a terminal with line editing. Lines
// are kept in memory for arrow-key recall only; nothing is written to disk.
type InteractiveLineReader struct {
	rl   *readline.Instance
	gate *inputGate
}

var _ LineReader = (*InteractiveLineReader)(nil)

func NewInteractiveLineReader(vio vos.VIO, historyLimit int) (*InteractiveLineReader, error) {
	gate := newInputGate(vio.Stdin())
	cfg := &readline.Config{
		Stdin:                  readline.NewCancelableStdin(gate),
		Stdout:                 vio.Stdout(),
		Stderr:                 vio.Stderr(),
		HistoryLimit:           historyLimit,
		DisableAutoSaveHistory: true,
	}

	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &InteractiveLineReader{rl: rl, gate: gate}, nil
}

// ReadLine implements LineReader.ReadLine. An interrupt (Ctrl-C) discards
// the line being edited and returns an empty line.
func (i *InteractiveLineReader) ReadLine(prompt string) (string, error) {
	i.rl.SetPrompt(prompt)
	i.gate.open()
	line, err := i.rl.Readline()
	i.gate.shut()

	switch {
	case err == readline.ErrInterrupt:
		return "", nil
	case err != nil:
		return line, err
	}

	if strings.TrimSpace(line) != "" {
		i.rl.SaveHistory(line)
	}
	return line, nil
}

func (i *InteractiveLineReader) Close() error {
	return i.rl.Close()
}

// inputGate passes reads through to the terminal only while a line is being
// edited. readline keeps a read pending between lines, without the gate it
// would take the first keystroke typed into a child program.
type inputGate struct {
	r io.Reader

	mu      sync.Mutex
	changed *sync.Cond
	isOpen  bool
}

func newInputGate(r io.Reader) *inputGate {
	g := &inputGate{r: r}
	g.changed = sync.NewCond(&g.mu)
	return g
}

func (g *inputGate) open() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.isOpen = true
	g.changed.Broadcast()
}

func (g *inputGate) shut() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.isOpen = false
}

// Read blocks until the gate is open. A read that delivers a line terminator
// shuts the gate so the next read waits for the next prompt.
func (g *inputGate) Read(p []byte) (int, error) {
	g.mu.Lock()
	for !g.isOpen {
		g.changed.Wait()
	}
	g.mu.Unlock()

	n, err := g.r.Read(p)
	if bytes.ContainsAny(p[:n], "\r\n") {
		g.shut()
	}
	return n, err
}
