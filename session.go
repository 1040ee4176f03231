// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"fmt"
	"log/slog"

	"cogentcore.org/spell/textpos"
)

// Misspelling reports one misspelled word found in checked text.
// Start and End are byte offsets into the UTF-8 text, half-open,
// so that text[Start:End] == Word always holds.
type Misspelling struct {

	// Word is the misspelled word, exactly as it appears in the text.
	Word string `json:"word"`

	// Start is the byte offset of the word in the UTF-8 text.
	Start int `json:"start"`

	// End is the byte offset just past the word in the UTF-8 text.
	End int `json:"end"`

	// Suggestions are candidate corrections in backend ranking order.
	// It can be empty.
	Suggestions []string `json:"suggestions"`
}

// Session is a stateful spell checking session bound to one backend
// [Checker] instance. It owns the active language and the session
// word list; both live and die with the session. A Session is not
// internally synchronized: use it from one goroutine, or serialize
// access externally. Independent Sessions can run concurrently.
type Session struct {
	checker Checker
}

// New returns a Session backed by the native spell checker of the
// host operating system, or by [Stub] on platforms without one.
// If a language tag is given, the backend is initialized to that
// language; otherwise it auto-detects from the system locale.
// It fails with an error wrapping [ErrLanguageInit] if the backend
// cannot establish an active language.
func New(language ...string) (*Session, error) {
	tag := ""
	if len(language) > 0 {
		tag = language[0]
	}
	ck, err := newOSChecker(tag)
	if err != nil {
		return nil, err
	}
	return &Session{checker: ck}, nil
}

// NewSession returns a Session bound to the given backend,
// which the session then exclusively owns until [Session.Close].
func NewSession(ck Checker) *Session {
	return &Session{checker: ck}
}

// CheckAndSuggest checks the spelling of the text and returns the
// misspelled words in text order, each with its byte offsets into
// the UTF-8 text and the backend's suggested corrections.
// Correctly spelled text yields an empty, non-nil slice.
//
// The whole call fails if the backend is unreachable; it never
// returns a silently partial result. A single token whose native
// extent cannot be mapped back into the text is dropped, and
// scanning continues.
func (ss *Session) CheckAndSuggest(text string) ([]Misspelling, error) {
	res := []Misspelling{}
	if text == "" {
		return res, nil
	}
	mp := textpos.NewMapping(text)
	for rg, err := range ss.checker.Tokenize(text) {
		if err != nil {
			return nil, fmt.Errorf("spell: scanning text: %w", err)
		}
		start, end, err := mp.ByteRange(rg)
		if err != nil {
			// inconsistency between the backend tokenizer and the
			// text actually checked: drop the token, keep scanning
			slog.Error("spell: dropping token with stale extent", "extent", rg, "err", err)
			continue
		}
		word := mp.NativeText(rg)
		if word == "" {
			continue
		}
		correct, err := ss.checker.IsCorrect(word)
		if err != nil {
			return nil, fmt.Errorf("spell: checking %q: %w", word, err)
		}
		if correct {
			continue
		}
		sugg, err := ss.checker.Suggest(word)
		if err != nil {
			return nil, fmt.Errorf("spell: suggesting for %q: %w", word, err)
		}
		res = append(res, Misspelling{
			Word:        text[start:end],
			Start:       start,
			End:         end,
			Suggestions: sugg,
		})
	}
	return res, nil
}

// CheckWord reports whether a single word is spelled correctly.
func (ss *Session) CheckWord(word string) (bool, error) {
	return ss.checker.IsCorrect(word)
}

// Suggest returns the backend's candidate corrections for a word,
// in backend ranking order, possibly empty.
func (ss *Session) Suggest(word string) ([]string, error) {
	return ss.checker.Suggest(word)
}

// AddWord adds one word to the session word list so it is no longer
// reported as misspelled. Adding an already-added word is a no-op.
func (ss *Session) AddWord(word string) {
	ss.checker.AddWords(word)
}

// AddWords adds words to the session word list.
func (ss *Session) AddWords(words ...string) {
	ss.checker.AddWords(words...)
}

// RemoveWord undoes [Session.AddWord]. Removing a word that was
// never added is a no-op.
func (ss *Session) RemoveWord(word string) {
	ss.checker.RemoveWords(word)
}

// RemoveWords undoes [Session.AddWords].
func (ss *Session) RemoveWords(words ...string) {
	ss.checker.RemoveWords(words...)
}

// Languages returns the languages available to the backend.
func (ss *Session) Languages() []string {
	return ss.checker.Languages()
}

// Language returns the active language tag.
func (ss *Session) Language() string {
	return ss.checker.Language()
}

// SetLanguage switches the active language, returning false, not an
// error, if the tag is not among [Session.Languages]. The active
// language is unchanged when it returns false.
func (ss *Session) SetLanguage(tag string) bool {
	return ss.checker.SetLanguage(tag)
}

// Close releases the native backend handle. The session must not be
// used after Close. It is safe to call more than once.
func (ss *Session) Close() error {
	return ss.checker.Close()
}
