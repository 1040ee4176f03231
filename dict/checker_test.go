// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"testing"

	"cogentcore.org/spell"
	"cogentcore.org/spell/textpos"
	"github.com/stretchr/testify/assert"
)

var _ spell.Checker = (*Checker)(nil)

func tokens(ck *Checker, text string) []textpos.Range {
	var rgs []textpos.Range
	for rg, err := range ck.Tokenize(text) {
		if err != nil {
			panic(err)
		}
		rgs = append(rgs, rg)
	}
	return rgs
}

func TestTokenize(t *testing.T) {
	ck, err := New("en-US")
	assert.NoError(t, err)

	rgs := tokens(ck, "This is a test sentence.")
	assert.Len(t, rgs, 5)
	assert.Equal(t, textpos.Range{Start: 0, End: 4}, rgs[0])
	assert.Equal(t, textpos.Range{Start: 15, End: 23}, rgs[4])

	// punctuation and whitespace only spans are never yielded
	assert.Empty(t, tokens(ck, "  ... 123 !?"))
	assert.Empty(t, tokens(ck, ""))
}

func TestTokenizeUnits(t *testing.T) {
	ck, err := New("en-US")
	assert.NoError(t, err)

	// the emoji is two UTF-16 units and not word-like
	rgs := tokens(ck, "a😀 bb")
	assert.Equal(t, []textpos.Range{{Start: 0, End: 1}, {Start: 4, End: 6}}, rgs)
}

func TestCheckerWords(t *testing.T) {
	ck, err := New("en-US")
	assert.NoError(t, err)

	correct, err := ck.IsCorrect("sentence")
	assert.NoError(t, err)
	assert.True(t, correct)

	correct, err = ck.IsCorrect("Sentence") // case insensitive
	assert.NoError(t, err)
	assert.True(t, correct)

	correct, err = ck.IsCorrect("snetences")
	assert.NoError(t, err)
	assert.False(t, correct)

	// words of one or two letters are never flagged
	correct, err = ck.IsCorrect("xq")
	assert.NoError(t, err)
	assert.True(t, correct)

	sugg, err := ck.Suggest("Snetences")
	assert.NoError(t, err)
	assert.Contains(t, sugg, "Sentences") // case matched to input
}

func TestCheckerSessionWords(t *testing.T) {
	ck, err := New("en-US")
	assert.NoError(t, err)

	correct, _ := ck.IsCorrect("broekn")
	assert.False(t, correct)

	ck.AddWords("broekn")
	correct, _ = ck.IsCorrect("broekn")
	assert.True(t, correct)

	ck.AddWords("broekn") // idempotent
	ck.RemoveWords("broekn")
	correct, _ = ck.IsCorrect("broekn")
	assert.False(t, correct)

	// removing a word that was never added is a no-op
	ck.RemoveWords("sentence")
	correct, _ = ck.IsCorrect("sentence")
	assert.True(t, correct)
}

func TestCheckerLanguages(t *testing.T) {
	ck, err := New("en-US")
	assert.NoError(t, err)
	assert.Equal(t, []string{"en", "en-US"}, ck.Languages())
	assert.Equal(t, "en-US", ck.Language())

	assert.False(t, ck.SetLanguage("tlh"))
	assert.Equal(t, "en-US", ck.Language())

	assert.True(t, ck.SetLanguage("en"))
	assert.Equal(t, "en", ck.Language())

	// underscore locale forms are accepted
	assert.True(t, ck.SetLanguage("en_US"))
}

func TestCheckerUnsupportedLanguage(t *testing.T) {
	_, err := New("tlh")
	assert.ErrorIs(t, err, spell.ErrLanguageInit)
}
