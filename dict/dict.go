// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict is a portable dictionary-model spell checking backend
// implementing the [cogentcore.org/spell.Checker] capability. It is
// never selected as the platform backend automatically; it exists for
// platforms and tests that need deterministic spell checking without
// a native OS facility.
package dict

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"slices"
)

// Dict is a dictionary of words, in a map for efficient checking.
type Dict map[string]struct{}

// NewDict returns a dictionary of the given words.
func NewDict(words ...string) Dict {
	d := make(Dict, len(words))
	for _, w := range words {
		d.Add(w)
	}
	return d
}

// Add adds a word to the dictionary.
func (d Dict) Add(word string) {
	d[word] = struct{}{}
}

// Exists returns whether the word is in the dictionary.
func (d Dict) Exists(word string) bool {
	_, ok := d[word]
	return ok
}

// Delete removes the word from the dictionary. It is a no-op if the
// word is not present.
func (d Dict) Delete(word string) {
	delete(d, word)
}

// List returns a sorted list of the words in the dictionary.
func (d Dict) List() []string {
	wl := make([]string, 0, len(d))
	for w := range d {
		wl = append(wl, w)
	}
	slices.Sort(wl)
	return wl
}

// Read reads a dictionary from the given reader, with one word per
// line, ignoring blank lines.
func Read(r io.Reader) (Dict, error) {
	d := make(Dict)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w := sc.Text(); w != "" {
			d.Add(w)
		}
	}
	return d, sc.Err()
}

// Open opens a dictionary from the given file, with one word per line.
func Open(fname string) (Dict, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// OpenFS opens a dictionary from the given filesystem,
// such as an embedded dictionary.
func OpenFS(fsys fs.FS, fname string) (Dict, error) {
	f, err := fsys.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Save writes the dictionary to the given file, one word per line,
// overwriting any existing file.
func (d Dict) Save(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, word := range d.List() {
		w.WriteString(word)
		w.WriteByte('\n')
	}
	return w.Flush()
}
