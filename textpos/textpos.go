// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos converts native spell checker text positions,
// which are reported in UTF-16 code units on the real OS backends,
// into byte offsets within the canonical UTF-8 text.
package textpos

import (
	"errors"
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// ErrOffsetOutOfRange is returned when a native extent references
// positions beyond the mapped text. It indicates an inconsistency
// between the backend tokenizer and the text actually checked.
var ErrOffsetOutOfRange = errors.New("text offset out of range")

// Range is a half-open [Start, End) extent in native UTF-16 code units,
// identifying one word-like token as segmented by a backend tokenizer.
type Range struct {
	Start int
	End   int
}

// Len returns the number of code units covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Mapping is a per-call index from UTF-16 code unit boundaries of a
// string to byte offsets in its UTF-8 encoding. A boundary that falls
// inside a surrogate pair is mapped to the end of that character, so
// converted offsets never split a multi-byte character.
type Mapping struct {
	text  string
	units []uint16
	bytes []int // byte offset at each code unit boundary; len(units)+1 entries
}

// NewMapping builds the offset table for given text.
// Building is O(n) in the length of the text; lookups are O(1).
func NewMapping(text string) *Mapping {
	m := &Mapping{text: text}
	m.units = utf16.Encode([]rune(text))
	m.bytes = make([]int, 1, len(m.units)+1)
	m.bytes[0] = 0
	for bi := 0; bi < len(text); {
		// decode explicitly for the true encoded width: an invalid
		// byte decodes to the replacement character but occupies
		// only its own bytes in the text
		r, sz := utf8.DecodeRuneInString(text[bi:])
		end := bi + sz
		if r > 0xFFFF {
			// surrogate pair: the mid-pair boundary is not a valid
			// character boundary, clamp it to the end of the character
			m.bytes = append(m.bytes, end)
		}
		m.bytes = append(m.bytes, end)
		bi = end
	}
	return m
}

// Text returns the canonical UTF-8 text this mapping was built from.
func (m *Mapping) Text() string {
	return m.text
}

// NumUnits returns the length of the text in UTF-16 code units.
func (m *Mapping) NumUnits() int {
	return len(m.units)
}

// ByteRange converts a native extent into [start, end) byte offsets
// within the canonical UTF-8 text. It returns a wrapped
// [ErrOffsetOutOfRange] if the extent is inverted or references
// positions beyond the end of the text.
func (m *Mapping) ByteRange(r Range) (start, end int, err error) {
	if r.Start < 0 || r.Start > r.End || r.End >= len(m.bytes) {
		return 0, 0, fmt.Errorf("%w: [%d, %d) in %d units", ErrOffsetOutOfRange, r.Start, r.End, m.NumUnits())
	}
	return m.bytes[r.Start], m.bytes[r.End], nil
}

// NativeText returns the text covered by given extent, decoded from
// the native UTF-16 representation. Unpaired surrogate halves decode
// to the replacement character, per [utf16.Decode]. It returns an
// empty string for extents out of range.
func (m *Mapping) NativeText(r Range) string {
	if r.Start < 0 || r.Start > r.End || r.End > len(m.units) {
		return ""
	}
	return string(utf16.Decode(m.units[r.Start:r.End]))
}

// UTF16Len returns the length of the string in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		n++
		if r > 0xFFFF {
			n++
		}
	}
	return n
}
