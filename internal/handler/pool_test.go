package handler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPutBuffer(t *testing.T) {
	buf := getBuffer()
	buf.WriteString(`{"decision":"DEEPER"}`)
	assert.True(t, putBuffer(buf))
	assert.Zero(t, buf.Len())

	huge := bytes.NewBuffer(make([]byte, 0, maxPooledBuffer+1))
	assert.False(t, putBuffer(huge))
}

func TestGetBuffer_StartsEmpty(t *testing.T) {
	buf := getBuffer()
	defer putBuffer(buf)

	assert.Zero(t, buf.Len())
	assert.LessOrEqual(t, buf.Cap(), maxPooledBuffer)
}
