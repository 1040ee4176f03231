// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"strings"
	"unicode"
)

// FirstWordApostrophe returns the first contiguous sequence of purely
// unicode.IsLetter runes within the given string, which can also
// contain an apostrophe within the word but not at the end.
func FirstWordApostrophe(str string) string {
	var sb strings.Builder
	for _, r := range str {
		if !(unicode.IsLetter(r) || r == '\'' || r == '’') {
			if sb.Len() == 0 {
				continue
			}
			break
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), "'’")
}

// MatchCase uses the source string case (upper / lower) to set
// corresponding case in the target string, returning that string.
func MatchCase(src, trg string) string {
	rsc := []rune(src)
	rtg := []rune(trg)
	mx := min(len(rsc), len(rtg))
	for i := 0; i < mx; i++ {
		t := rtg[i]
		if unicode.IsUpper(rsc[i]) {
			if !unicode.IsUpper(t) {
				rtg[i] = unicode.ToUpper(t)
			}
		} else {
			if !unicode.IsLower(t) {
				rtg[i] = unicode.ToLower(t)
			}
		}
	}
	return string(rtg)
}

// hasLetter returns whether the string contains any letter rune,
// which is what makes a segment word-like.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
