// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"embed"
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"cogentcore.org/spell"
	"cogentcore.org/spell/textpos"
	"github.com/jeandeaual/go-locale"
	"github.com/rivo/uniseg"
	"golang.org/x/text/language"
)

//go:embed dict_en_us
var embedded embed.FS

// supported are the languages with a bundled dictionary.
var supported = []language.Tag{language.AmericanEnglish, language.English}

var matcher = language.NewMatcher(supported)

// Checker is a [spell.Checker] backed by the bundled dictionary
// model instead of a native OS facility. Its native tokenizer is
// Unicode UAX#29 word segmentation, and like the OS backends it
// reports token extents in UTF-16 code units.
type Checker struct {

	// UserFile is an optional path to the user's dictionary,
	// where added words are saved by [Checker.Close].
	UserFile string

	model *Model
	lang  string

	// session words added via AddWords, so RemoveWords only ever
	// undoes additions made in this session
	session Dict
}

// New returns a Checker for the given language tag, or for the
// system locale if the tag is empty. It fails with an error wrapping
// [spell.ErrLanguageInit] if no bundled dictionary matches.
func New(lang string) (*Checker, error) {
	if lang == "" {
		loc, err := locale.GetLocale()
		if err != nil || loc == "" {
			loc = "en-US"
		}
		lang = loc
	}
	if !langSupported(lang) {
		return nil, fmt.Errorf("dict: no dictionary for language %q: %w", lang, spell.ErrLanguageInit)
	}
	base, err := OpenFS(embedded, "dict_en_us")
	if err != nil {
		return nil, fmt.Errorf("dict: opening bundled dictionary: %w", err)
	}
	md := NewModel()
	md.SetDicts(base, make(Dict))
	return &Checker{model: md, lang: lang, session: make(Dict)}, nil
}

// langSupported returns whether the tag resolves to a bundled
// dictionary. Tags are parsed leniently, accepting both en-US and
// en_US forms.
func langSupported(lang string) bool {
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return false
	}
	_, _, conf := matcher.Match(tag)
	return conf >= language.High
}

// OpenUser loads the user dictionary from [Checker.UserFile] into
// the model.
func (ck *Checker) OpenUser() error {
	if ck.UserFile == "" {
		return nil
	}
	d, err := Open(ck.UserFile)
	if err != nil {
		return err
	}
	ck.model.SetDicts(ck.model.Dict, d)
	return nil
}

func (ck *Checker) IsCorrect(word string) (bool, error) {
	w := FirstWordApostrophe(word)
	if utf8.RuneCountInString(w) <= 2 {
		return true, nil
	}
	return ck.model.Exists(strings.ToLower(w)), nil
}

func (ck *Checker) Suggest(word string) ([]string, error) {
	orig := FirstWordApostrophe(word)
	w := strings.ToLower(orig)
	sugg := ck.model.Suggestions(w, 10)
	if len(sugg) == 1 && sugg[0] == w {
		return nil, nil
	}
	for i, s := range sugg {
		sugg[i] = MatchCase(orig, s)
	}
	return sugg, nil
}

// Tokenize yields UAX#29 word segments containing at least one
// letter, as [start, end) extents in UTF-16 code units.
func (ck *Checker) Tokenize(text string) iter.Seq2[textpos.Range, error] {
	return func(yield func(textpos.Range, error) bool) {
		pos := 0
		state := -1
		rest := text
		for len(rest) > 0 {
			var word string
			word, rest, state = uniseg.FirstWordInString(rest, state)
			n := textpos.UTF16Len(word)
			if hasLetter(word) {
				if !yield(textpos.Range{Start: pos, End: pos + n}, nil) {
					return
				}
			}
			pos += n
		}
	}
}

func (ck *Checker) Languages() []string {
	return []string{"en", "en-US"}
}

func (ck *Checker) Language() string {
	return ck.lang
}

func (ck *Checker) SetLanguage(tag string) bool {
	if !langSupported(tag) {
		return false
	}
	ck.lang = tag
	return true
}

func (ck *Checker) AddWords(words ...string) {
	for _, w := range words {
		lw := strings.ToLower(w)
		if ck.model.Exists(lw) {
			continue
		}
		ck.session.Add(lw)
		ck.model.AddWord(lw)
	}
}

func (ck *Checker) RemoveWords(words ...string) {
	for _, w := range words {
		lw := strings.ToLower(w)
		if !ck.session.Exists(lw) {
			continue
		}
		ck.session.Delete(lw)
		ck.model.Delete(lw)
	}
}

// Close saves added words to [Checker.UserFile] if one is set.
func (ck *Checker) Close() error {
	if ck.UserFile == "" || len(ck.model.UserDict) == 0 {
		return nil
	}
	return ck.model.UserDict.Save(ck.UserFile)
}
