// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMappingASCII(t *testing.T) {
	m := NewMapping("This is a test.")
	assert.Equal(t, 15, m.NumUnits())
	start, end, err := m.ByteRange(Range{Start: 10, End: 14})
	assert.NoError(t, err)
	assert.Equal(t, 10, start)
	assert.Equal(t, 14, end)
	assert.Equal(t, "test", m.NativeText(Range{Start: 10, End: 14}))
}

func TestMappingMultiByte(t *testing.T) {
	// é is 2 bytes but 1 UTF-16 unit, so byte offsets diverge
	// from unit offsets after it
	m := NewMapping("héllo wörld")
	assert.Equal(t, 11, m.NumUnits())
	start, end, err := m.ByteRange(Range{Start: 6, End: 11})
	assert.NoError(t, err)
	assert.Equal(t, "wörld", m.Text()[start:end])
	assert.Equal(t, "wörld", m.NativeText(Range{Start: 6, End: 11}))
}

func TestMappingCurlyQuotes(t *testing.T) {
	text := "“quoted” word"
	m := NewMapping(text)
	// each curly quote is 3 bytes but 1 unit
	assert.Equal(t, 13, m.NumUnits())
	start, end, err := m.ByteRange(Range{Start: 9, End: 13})
	assert.NoError(t, err)
	assert.Equal(t, "word", text[start:end])
	assert.Equal(t, 13, start)
	assert.Equal(t, 17, end)
}

func TestMappingSurrogatePair(t *testing.T) {
	// U+1F600 is 4 bytes and 2 UTF-16 units
	text := "a😀b"
	m := NewMapping(text)
	assert.Equal(t, 4, m.NumUnits())

	start, end, err := m.ByteRange(Range{Start: 1, End: 3})
	assert.NoError(t, err)
	assert.Equal(t, "😀", text[start:end])

	// an extent ending inside the surrogate pair is clamped to the
	// end of the character, never splitting its bytes
	start, end, err = m.ByteRange(Range{Start: 1, End: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 5, end)

	// an extent starting inside the pair excludes the character
	start, end, err = m.ByteRange(Range{Start: 2, End: 3})
	assert.NoError(t, err)
	assert.Equal(t, 5, start)
	assert.Equal(t, 5, end)

	start, end, err = m.ByteRange(Range{Start: 3, End: 4})
	assert.NoError(t, err)
	assert.Equal(t, "b", text[start:end])
}

func TestMappingCombining(t *testing.T) {
	// e + combining acute: 2 codepoints, 2 units, 3 bytes
	text := "e\u0301x"
	m := NewMapping(text)
	assert.Equal(t, 3, m.NumUnits())
	start, end, err := m.ByteRange(Range{Start: 0, End: 2})
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 3, end)
}

func TestMappingInvalidUTF8(t *testing.T) {
	// an invalid byte decodes to the replacement character but
	// occupies only one byte; boundaries after it must still index
	// the actual bytes of the text
	text := "a\xffb"
	m := NewMapping(text)
	assert.Equal(t, 3, m.NumUnits())

	start, end, err := m.ByteRange(Range{Start: 2, End: 3})
	assert.NoError(t, err)
	assert.Equal(t, 2, start)
	assert.Equal(t, 3, end)
	assert.Equal(t, "b", text[start:end])

	start, end, err = m.ByteRange(Range{Start: 0, End: 3})
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, len(text), end)

	// trailing invalid byte
	m = NewMapping("x\xff")
	assert.Equal(t, 2, m.NumUnits())
	start, end, err = m.ByteRange(Range{Start: 1, End: 2})
	assert.NoError(t, err)
	assert.Equal(t, 1, start)
	assert.Equal(t, 2, end)
}

func TestMappingOutOfRange(t *testing.T) {
	m := NewMapping("short")
	_, _, err := m.ByteRange(Range{Start: 0, End: 6})
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
	_, _, err = m.ByteRange(Range{Start: -1, End: 2})
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)
	_, _, err = m.ByteRange(Range{Start: 3, End: 2})
	assert.ErrorIs(t, err, ErrOffsetOutOfRange)

	start, end, err := m.ByteRange(Range{Start: 0, End: 5})
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}

func TestMappingEmpty(t *testing.T) {
	m := NewMapping("")
	assert.Equal(t, 0, m.NumUnits())
	start, end, err := m.ByteRange(Range{})
	assert.NoError(t, err)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, UTF16Len(""))
	assert.Equal(t, 5, UTF16Len("hello"))
	assert.Equal(t, 5, UTF16Len("héllo"))
	assert.Equal(t, 4, UTF16Len("a😀b"))
}
