package core

import (
	"strings"

	"github.com/anmitsu/go-shlex"
)

const (
	// Delimiters separate tokens on a line: space, tab, carriage return,
	// newline and bell.
	Delimiters = " \t\r\n\a"

	// DefaultTokenBuffer is the initial size and growth increment of the
	// token array.
	DefaultTokenBuffer = 128
)

// Tokenizer splits raw lines into arguments.
type Tokenizer struct {
	// Unit is the initial capacity and growth increment of the token array.
	Unit int
	// Quoting enables POSIX-style quotes and escapes.
	Quoting bool
}

// Tokenize splits line into tokens. Runs of delimiters never produce empty
// tokens, so a blank line has no tokens. Tokens don't share memory with
// line.
//
// An error is only possible when Quoting is enabled.
func (t *Tokenizer) Tokenize(line string) ([]string, error) {
	if t.Quoting {
		return shlex.Split(line, true)
	}
	return t.fields(line), nil
}

func (t *Tokenizer) fields(line string) []string {
	unit := t.Unit
	if unit <= 0 {
		unit = DefaultTokenBuffer
	}

	tokens := make([]string, 0, unit)
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && !isDelimiter(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start < 0 {
			continue
		}

		if len(tokens) == cap(tokens) {
			tokens = growBy(tokens, unit)
		}
		tokens = append(tokens, strings.Clone(line[start:i]))
		start = -1
	}
	return tokens
}

func isDelimiter(c byte) bool {
	return strings.IndexByte(Delimiters, c) >= 0
}
