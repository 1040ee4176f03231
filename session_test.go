// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell_test

import (
	"strings"
	"testing"

	"cogentcore.org/spell"
	"cogentcore.org/spell/dict"
	"github.com/stretchr/testify/assert"
)

// newSession returns a session backed by the bundled dictionary
// checker, which behaves the same on every platform.
func newSession(t *testing.T) *spell.Session {
	ck, err := dict.New("en-US")
	assert.NoError(t, err)
	return spell.NewSession(ck)
}

func TestCheckAndSuggestClean(t *testing.T) {
	ss := newSession(t)
	res, err := ss.CheckAndSuggest("This is a valid sentences.")
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestCheckAndSuggestEmpty(t *testing.T) {
	ss := newSession(t)
	res, err := ss.CheckAndSuggest("")
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)
}

func TestCheckAndSuggestMisspelling(t *testing.T) {
	ss := newSession(t)
	text := "This is a invalid snetences."
	res, err := ss.CheckAndSuggest(text)
	assert.NoError(t, err)
	assert.Len(t, res, 1)

	ms := res[0]
	assert.Equal(t, "snetences", ms.Word)
	assert.Equal(t, 18, ms.Start)
	assert.Equal(t, 27, ms.End)
	assert.Equal(t, ms.Word, text[ms.Start:ms.End])
	assert.NotEmpty(t, ms.Suggestions)
	assert.Contains(t, ms.Suggestions, "sentences")
}

func TestCheckAndSuggestUnicodeOffsets(t *testing.T) {
	ss := newSession(t)
	// the curly quotes are one UTF-16 unit but three UTF-8 bytes
	// each, so byte offsets past them diverge from native units
	text := "“Typographic quotes” are tricky with a mistake snetences."
	res, err := ss.CheckAndSuggest(text)
	assert.NoError(t, err)
	assert.Len(t, res, 1)

	ms := res[0]
	assert.Equal(t, "snetences", ms.Word)
	assert.Equal(t, strings.Index(text, "snetences"), ms.Start)
	assert.Equal(t, ms.Start+len("snetences"), ms.End)
	assert.Equal(t, ms.Word, text[ms.Start:ms.End])
}

func TestCheckAndSuggestOrder(t *testing.T) {
	ss := newSession(t)
	text := "one snetences then mistaek words"
	res, err := ss.CheckAndSuggest(text)
	assert.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, "snetences", res[0].Word)
	assert.Equal(t, "mistaek", res[1].Word)
	for i, ms := range res {
		assert.Equal(t, ms.Word, text[ms.Start:ms.End])
		if i > 0 {
			assert.GreaterOrEqual(t, ms.Start, res[i-1].End)
		}
	}
}

func TestAddRemoveWord(t *testing.T) {
	ss := newSession(t)
	text := "is this broekn for you"

	res, err := ss.CheckAndSuggest(text)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "broekn", res[0].Word)

	ss.AddWord("broekn")
	res, err = ss.CheckAndSuggest(text)
	assert.NoError(t, err)
	assert.Empty(t, res)

	ss.RemoveWord("broekn")
	res, err = ss.CheckAndSuggest(text)
	assert.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestCheckWord(t *testing.T) {
	ss := newSession(t)

	correct, err := ss.CheckWord("sentence")
	assert.NoError(t, err)
	assert.True(t, correct)

	correct, err = ss.CheckWord("snetence")
	assert.NoError(t, err)
	assert.False(t, correct)

	sugg, err := ss.Suggest("snetence")
	assert.NoError(t, err)
	assert.Contains(t, sugg, "sentence")
}

func TestSetLanguage(t *testing.T) {
	ss := newSession(t)
	assert.Equal(t, "en-US", ss.Language())
	assert.Equal(t, []string{"en", "en-US"}, ss.Languages())

	assert.False(t, ss.SetLanguage("tlh"))
	assert.Equal(t, "en-US", ss.Language())

	assert.True(t, ss.SetLanguage("en"))
	assert.Equal(t, "en", ss.Language())
}

func TestSessionClose(t *testing.T) {
	ss := newSession(t)
	assert.NoError(t, ss.Close())
	assert.NoError(t, ss.Close())
}
