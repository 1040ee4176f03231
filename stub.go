// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"iter"

	"cogentcore.org/spell/textpos"
)

// Stub is the no-op [Checker] used on platforms without a native
// spell checking facility. It never flags anything, has no languages,
// and ignores word list mutations, so that spell checking degrades to
// disabled instead of failing outright.
type Stub struct{}

func (Stub) IsCorrect(word string) (bool, error) { return true, nil }

func (Stub) Suggest(word string) ([]string, error) { return nil, nil }

func (Stub) Tokenize(text string) iter.Seq2[textpos.Range, error] {
	return func(yield func(textpos.Range, error) bool) {}
}

func (Stub) Languages() []string { return nil }

func (Stub) Language() string { return "" }

func (Stub) SetLanguage(tag string) bool { return false }

func (Stub) AddWords(words ...string) {}

func (Stub) RemoveWords(words ...string) {}

func (Stub) Close() error { return nil }
