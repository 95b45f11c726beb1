package vos

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleNewVIOAdapter() {
	out := &bytes.Buffer{}
	vio := NewVIOAdapter(nil, out, nil)

	fmt.Fprint(vio.Stdout(), "to stdout")
	fmt.Fprint(vio.Stderr(), "discarded")

	fmt.Println(out.String())

	// Output: to stdout
}

func TestNewNullIO(t *testing.T) {
	vio := NewNullIO()

	_, err := vio.Stdin().Read(make([]byte, 1))
	assert.Equal(t, io.EOF, err)

	n, err := vio.Stdout().Write([]byte("abc"))
	assert.Nil(t, err)
	assert.Equal(t, 3, n)
	assert.Nil(t, vio.Stderr().Close())
}
