package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_PreservesSentinel(t *testing.T) {
	sentinel := New("boom")

	wrapped := Wrap(Wrapf(sentinel, "layer %d", 1), "layer 2")

	assert.True(t, Is(wrapped, sentinel))
	assert.Equal(t, "layer 2: layer 1: boom", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "errors_test.go")
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, WithStack(nil))
}

func TestIsAny(t *testing.T) {
	a := New("a")
	b := New("b")
	c := New("c")

	assert.True(t, IsAny(Wrap(b, "ctx"), a, b))
	assert.False(t, IsAny(c, a, b))
	assert.False(t, IsAny(c))
}
