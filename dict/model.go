// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// this code is adapted from: https://github.com/sajari/fuzzy
// https://www.sajari.com/
// Most of which seems to have been written by Hamish @sajari
// it does not have a copyright notice in the code itself but does have
// an MIT license file.

package dict

import (
	"strings"
	"sync"

	"golang.org/x/exp/maps"
)

// Model is the dictionary spelling model: the combined word list
// plus a map of partially-deleted lookup keys used to generate
// correction suggestions.
type Model struct {

	// Dict is the list of all words, combining Base and User dictionaries.
	Dict Dict

	// UserDict is the user dictionary of additional words.
	UserDict Dict

	// Suggest maps a partially-deleted key to the dictionary words
	// it could have come from.
	Suggest map[string][]string

	// Depth is the number of character deletions to index in Suggest
	// (2 is the only sensible value).
	Depth int

	sync.RWMutex
}

// NewModel returns a new, empty spelling model.
func NewModel() *Model {
	md := &Model{}
	md.Suggest = make(map[string][]string)
	md.Depth = 2
	return md
}

// SetDicts sets the base and user dictionaries and indexes the
// combined word list for suggestions.
func (md *Model) SetDicts(base, user Dict) {
	md.Lock()
	defer md.Unlock()
	md.Dict = base
	md.UserDict = user
	maps.Copy(md.Dict, md.UserDict)
	// about 500 msec for 32k words
	for w := range md.Dict {
		md.createSuggestKeys(w)
	}
}

// Exists returns whether the word is in the combined dictionary.
func (md *Model) Exists(word string) bool {
	md.RLock()
	defer md.RUnlock()
	return md.Dict.Exists(word)
}

// AddWord adds a new word to the user dictionary and generates new
// suggestion keys for it. Adding an existing word is a no-op.
func (md *Model) AddWord(term string) {
	md.Lock()
	defer md.Unlock()
	if md.Dict.Exists(term) {
		return
	}
	md.UserDict.Add(term)
	md.Dict.Add(term)
	md.createSuggestKeys(term)
}

// Delete removes the given word from the dictionary, undoing learning.
// Suggest keys are cleaned at the same depth they were indexed at, so
// a deleted word can never resurface as a suggestion.
func (md *Model) Delete(term string) {
	md.Lock()
	defer md.Unlock()
	edits := md.editsMulti(term, md.Depth)
	for _, edit := range edits {
		sug := md.Suggest[edit]
		for i := len(sug) - 1; i >= 0; i-- {
			if sug[i] == term {
				sug = append(sug[:i], sug[i+1:]...)
			}
		}
		if len(sug) == 0 {
			delete(md.Suggest, edit)
		} else {
			md.Suggest[edit] = sug
		}
	}
	md.Dict.Delete(term)
	md.UserDict.Delete(term)
}

// createSuggestKeys creates the partially-deleted lookup keys
// for the given term.
func (md *Model) createSuggestKeys(term string) {
	edits := md.editsMulti(term, md.Depth)
	for _, edit := range edits {
		skip := false
		for _, hit := range md.Suggest[edit] {
			if hit == term {
				skip = true
				break
			}
		}
		if !skip && len(edit) > 1 {
			md.Suggest[edit] = append(md.Suggest[edit], term)
		}
	}
}

// editsMulti produces edits at any depth for the given term.
func (md *Model) editsMulti(term string, depth int) []string {
	edits := edits1(term)
	for {
		depth--
		if depth <= 0 {
			break
		}
		for _, edit := range edits {
			edits = append(edits, edits1(edit)...)
		}
	}
	return edits
}

// edits1 creates the set of terms that are one character deletion
// away from the input term.
func edits1(word string) []string {
	set := make([]string, 0, len(word)+3)
	for i := 0; i <= len(word); i++ {
		if i < len(word) {
			set = append(set, word[:i]+word[i+1:])
		} else {
			set = append(set, word)
		}
	}
	// special case ending in "ies" or "ys"
	if strings.HasSuffix(word, "ies") {
		set = append(set, word[:len(word)-3]+"ys")
	}
	if strings.HasSuffix(word, "ys") {
		set = append(set, word[:len(word)-2]+"ies")
	}
	return set
}

// suggestPotential suggests alternatives for the given input term.
// If the input is in the dictionary, it is the only item returned.
func (md *Model) suggestPotential(input string) []string {
	input = strings.ToLower(input)

	// 0 - if this is a dictionary term we're all good, no need to go further
	if md.Dict.Exists(input) {
		return []string{input}
	}

	seen := make(Dict)
	var sord []string

	// 1 - see if the input matches a suggest key
	for _, pot := range md.Suggest[input] {
		if !seen.Exists(pot) {
			sord = append(sord, pot)
			seen.Add(pot)
		}
	}

	// 2 - see if an edit of the input is a dictionary word
	edits := md.editsMulti(input, md.Depth)
	got := false
	for _, edit := range edits {
		if len(edit) > 2 && md.Dict.Exists(edit) {
			got = true
			if !seen.Exists(edit) {
				sord = append(sord, edit)
				seen.Add(edit)
			}
		}
	}
	if got {
		return sord
	}

	// 3 - no hits on edit1 distance, look for transposes and replaces.
	// these need checking against the input, e.g. levals=[valves] in a
	// raw sense, which is incorrect.
	for _, edit := range edits {
		for _, pot := range md.Suggest[edit] {
			if seen.Exists(pot) {
				continue
			}
			// the +1 has greater coverage when the depth is not
			// sufficient to make suggestions
			if Levenshtein(input, pot) <= md.Depth+1 {
				sord = append(sord, pot)
				seen.Add(pot)
			}
		}
	}
	return sord
}

// Suggestions returns the most likely corrections for the input,
// in order from best to worst, up to n of them. If the input is a
// dictionary word, it is the only suggestion.
func (md *Model) Suggestions(input string, n int) []string {
	md.RLock()
	suggestions := md.suggestPotential(input)
	md.RUnlock()
	if n > 0 && len(suggestions) > n {
		suggestions = suggestions[:n]
	}
	return suggestions
}

// Levenshtein computes the Levenshtein edit distance between two strings.
func Levenshtein(a, b string) int {
	la := len(a)
	lb := len(b)
	d := make([]int, la+1)
	var lastdiag, olddiag int
	for i := 1; i <= la; i++ {
		d[i] = i
	}
	for i := 1; i <= lb; i++ {
		d[0] = i
		lastdiag = i - 1
		for j := 1; j <= la; j++ {
			olddiag = d[j]
			mn := d[j] + 1
			if d[j-1]+1 < mn {
				mn = d[j-1] + 1
			}
			cost := 1
			if a[j-1] == b[i-1] {
				cost = 0
			}
			if lastdiag+cost < mn {
				mn = lastdiag + cost
			}
			d[j] = mn
			lastdiag = olddiag
		}
	}
	return d[la]
}
