// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spell checks the spelling of text using the native
// operating system spell checker (Windows Spell Checking API,
// macOS NSSpellChecker), reporting misspelled words with
// backend-provided suggested corrections, at byte offsets into
// the UTF-8 text regardless of the position units the backend
// natively reports.
package spell

import (
	"iter"

	"cogentcore.org/spell/textpos"
)

// Checker is the capability implemented by each concrete spell
// checking backend. The real backends wrap a native OS facility;
// [Stub] stands in on platforms without one, and
// [cogentcore.org/spell/dict.Checker] provides a portable
// dictionary-model implementation.
//
// Backends report token positions in their own native units
// (UTF-16 code units on the OS backends); only [textpos] and the
// backend itself ever interpret those units.
type Checker interface {

	// IsCorrect reports whether the given word is spelled correctly.
	// It fails with an error wrapping [ErrBackendUnavailable] if the
	// native facility could not be reached; an unreachable backend is
	// never silently treated as "correct".
	IsCorrect(word string) (bool, error)

	// Suggest returns candidate corrections for a misspelled word,
	// in backend ranking order. It can be empty even for a
	// misspelled word.
	Suggest(word string) ([]string, error)

	// Tokenize returns the word-like token extents of the text, in
	// the backend's native units, using the backend's own native
	// segmentation facility. Extents are strictly left-to-right,
	// non-overlapping, and never cover whitespace or punctuation
	// only spans. A non-nil error terminates the sequence and means
	// the backend could not scan the text.
	Tokenize(text string) iter.Seq2[textpos.Range, error]

	// Languages returns the languages available to this backend.
	Languages() []string

	// Language returns the active language tag.
	Language() string

	// SetLanguage switches the active language, returning false,
	// not an error, if the tag is not among [Checker.Languages].
	SetLanguage(tag string) bool

	// AddWords adds words to the backend's session word list so they
	// are no longer reported as misspelled. Adding an already-added
	// word is a no-op.
	AddWords(words ...string)

	// RemoveWords undoes AddWords. Removing a word that was never
	// added is a no-op.
	RemoveWords(words ...string)

	// Close releases any native handle held by the backend.
	// It is safe to call more than once.
	Close() error
}
