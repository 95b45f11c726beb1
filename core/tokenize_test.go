package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleTokenizer_Tokenize() {
	tokens, _ := (&Tokenizer{}).Tokenize("  ls   -la  ")
	fmt.Printf("%q\n", tokens)

	// Output: ["ls" "-la"]
}

func TestTokenizer_Tokenize(t *testing.T) {
	cases := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{" \t\r\n\a ", nil},
		{"ls", []string{"ls"}},
		{"  ls   -la  ", []string{"ls", "-la"}},
		{"echo\ta\rb\nc\ad", []string{"echo", "a", "b", "c", "d"}},
		{"exit now", []string{"exit", "now"}},
		{`echo "a b"`, []string{"echo", `"a`, `b"`}},
		{"cd ~/dir", []string{"cd", "~/dir"}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.line), func(t *testing.T) {
			tokens, err := (&Tokenizer{}).Tokenize(tc.line)
			require.Nil(t, err)

			if len(tc.want) == 0 {
				assert.Empty(t, tokens)
				return
			}
			assert.Equal(t, tc.want, tokens)
		})
	}
}

func TestTokenizer_Growth(t *testing.T) {
	var words []string
	for i := 0; i < 1000; i++ {
		words = append(words, fmt.Sprintf("arg%d", i))
	}

	for _, unit := range []int{1, 3, 128} {
		t.Run(fmt.Sprint(unit), func(t *testing.T) {
			tokens, err := (&Tokenizer{Unit: unit}).Tokenize(strings.Join(words, " "))
			require.Nil(t, err)

			assert.Equal(t, words, tokens)
			assert.Zero(t, cap(tokens)%unit, "capacity should grow in units")
		})
	}
}

func TestTokenizer_Quoting(t *testing.T) {
	tokenizer := &Tokenizer{Quoting: true}

	tokens, err := tokenizer.Tokenize(`echo "a b" 'c d' e\ f`)
	require.Nil(t, err)
	assert.Equal(t, []string{"echo", "a b", "c d", "e f"}, tokens)

	tokens, err = tokenizer.Tokenize("   ")
	require.Nil(t, err)
	assert.Empty(t, tokens)

	_, err = tokenizer.Tokenize(`echo "unterminated`)
	assert.Error(t, err)
}
