// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin

package spell

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreFoundation

#include <stdbool.h>
#include <stdlib.h>
#include <string.h>
#import <AppKit/AppKit.h>
#import <CoreFoundation/CoreFoundation.h>

// NSSpellChecker positions are in UTF-16 code units (NSString indexes).
// Session words are scoped to a per-session spell document tag, so they
// never touch the user's persistent custom dictionary and die with the
// session.

static long spellNewTag(void) {
	@autoreleasepool {
		return [NSSpellChecker uniqueSpellDocumentTag];
	}
}

static void spellCloseTag(long tag) {
	@autoreleasepool {
		[[NSSpellChecker sharedSpellChecker] closeSpellDocumentWithTag:tag];
	}
}

static void spellSetup(void) {
	@autoreleasepool {
		[[NSSpellChecker sharedSpellChecker] setAutomaticallyIdentifiesLanguages:YES];
	}
}

static bool spellCheckWord(const char *word, long tag) {
	@autoreleasepool {
		NSString *s = [NSString stringWithUTF8String:word];
		NSRange r = [[NSSpellChecker sharedSpellChecker] checkSpellingOfString:s
		                                                           startingAt:0
		                                                             language:nil
		                                                                 wrap:NO
		                                               inSpellDocumentWithTag:tag
		                                                            wordCount:NULL];
		return r.length == 0;
	}
}

static char **spellGuesses(const char *word, long tag, int *count) {
	@autoreleasepool {
		NSSpellChecker *sc = [NSSpellChecker sharedSpellChecker];
		NSString *s = [NSString stringWithUTF8String:word];
		NSArray<NSString *> *gs = [sc guessesForWordRange:NSMakeRange(0, [s length])
		                                         inString:s
		                                         language:[sc language]
		                           inSpellDocumentWithTag:tag];
		*count = (int)[gs count];
		if (*count == 0) {
			return NULL;
		}
		char **out = (char **)malloc(sizeof(char *) * (*count));
		for (int i = 0; i < *count; i++) {
			out[i] = strdup([[gs objectAtIndex:i] UTF8String]);
		}
		return out;
	}
}

static char **spellLanguages(int *count) {
	@autoreleasepool {
		NSArray<NSString *> *ls = [[NSSpellChecker sharedSpellChecker] availableLanguages];
		*count = (int)[ls count];
		if (*count == 0) {
			return NULL;
		}
		char **out = (char **)malloc(sizeof(char *) * (*count));
		for (int i = 0; i < *count; i++) {
			out[i] = strdup([[ls objectAtIndex:i] UTF8String]);
		}
		return out;
	}
}

static char *spellLanguage(void) {
	@autoreleasepool {
		NSString *l = [[NSSpellChecker sharedSpellChecker] language];
		return l == nil ? NULL : strdup([l UTF8String]);
	}
}

static bool spellSetLanguage(const char *lang) {
	@autoreleasepool {
		return [[NSSpellChecker sharedSpellChecker] setLanguage:[NSString stringWithUTF8String:lang]];
	}
}

static void spellIgnore(const char *word, long tag) {
	@autoreleasepool {
		NSString *s = [NSString stringWithUTF8String:word];
		[[NSSpellChecker sharedSpellChecker] ignoreWord:s inSpellDocumentWithTag:tag];
	}
}

// spellSetIgnored replaces the whole ignored word list for the tag,
// which is how an individual ignored word is removed.
static void spellSetIgnored(const char **words, int n, long tag) {
	@autoreleasepool {
		NSMutableArray<NSString *> *ws = [NSMutableArray arrayWithCapacity:n];
		for (int i = 0; i < n; i++) {
			[ws addObject:[NSString stringWithUTF8String:words[i]]];
		}
		[[NSSpellChecker sharedSpellChecker] setIgnoredWords:ws inSpellDocumentWithTag:tag];
	}
}

// spellTokenize segments text into word tokens with CFStringTokenizer,
// returning [start, end) extents in UTF-16 code units. The returned
// array is malloc'd; *count is -1 if the tokenizer could not be made.
static long *spellTokenize(const char *text, int *count) {
	CFStringRef cf = CFStringCreateWithCString(NULL, text, kCFStringEncodingUTF8);
	if (cf == NULL) {
		*count = -1;
		return NULL;
	}
	CFStringTokenizerRef tk = CFStringTokenizerCreate(NULL, cf,
		CFRangeMake(0, CFStringGetLength(cf)), kCFStringTokenizerUnitWord, NULL);
	if (tk == NULL) {
		CFRelease(cf);
		*count = -1;
		return NULL;
	}
	int cap = 16;
	int n = 0;
	long *out = (long *)malloc(sizeof(long) * 2 * cap);
	while (CFStringTokenizerAdvanceToNextToken(tk) != kCFStringTokenizerTokenNone) {
		CFRange r = CFStringTokenizerGetCurrentTokenRange(tk);
		if (n == cap) {
			cap *= 2;
			out = (long *)realloc(out, sizeof(long) * 2 * cap);
		}
		out[2*n] = r.location;
		out[2*n+1] = r.location + r.length;
		n++;
	}
	CFRelease(tk);
	CFRelease(cf);
	*count = n;
	return out;
}
*/
import "C"

import (
	"fmt"
	"iter"
	"unsafe"

	"cogentcore.org/spell/textpos"
)

// darwinChecker wraps the shared NSSpellChecker instance. Session
// words live in the ignored word list of a per-session spell document
// tag, which is closed with the session, so they are never persisted.
type darwinChecker struct {
	tag     C.long
	ignored map[string]bool
}

func newOSChecker(tag string) (Checker, error) {
	C.spellSetup()
	ck := &darwinChecker{tag: C.spellNewTag(), ignored: map[string]bool{}}
	if tag != "" {
		if !ck.SetLanguage(tag) {
			return nil, fmt.Errorf("spell: no checker for language %q: %w", tag, ErrLanguageInit)
		}
	}
	return ck, nil
}

// goStrings converts and frees a malloc'd array of C strings.
func goStrings(arr **C.char, n C.int) []string {
	if arr == nil || n <= 0 {
		return nil
	}
	out := make([]string, int(n))
	cs := unsafe.Slice(arr, int(n))
	for i, p := range cs {
		out[i] = C.GoString(p)
		C.free(unsafe.Pointer(p))
	}
	C.free(unsafe.Pointer(arr))
	return out
}

func (ck *darwinChecker) IsCorrect(word string) (bool, error) {
	cw := C.CString(word)
	defer C.free(unsafe.Pointer(cw))
	return bool(C.spellCheckWord(cw, ck.tag)), nil
}

func (ck *darwinChecker) Suggest(word string) ([]string, error) {
	cw := C.CString(word)
	defer C.free(unsafe.Pointer(cw))
	var n C.int
	arr := C.spellGuesses(cw, ck.tag, &n)
	return goStrings(arr, n), nil
}

func (ck *darwinChecker) Tokenize(text string) iter.Seq2[textpos.Range, error] {
	return func(yield func(textpos.Range, error) bool) {
		ct := C.CString(text)
		defer C.free(unsafe.Pointer(ct))
		var n C.int
		arr := C.spellTokenize(ct, &n)
		if n < 0 {
			yield(textpos.Range{}, fmt.Errorf("spell: creating text tokenizer: %w", ErrBackendUnavailable))
			return
		}
		if arr == nil {
			return
		}
		defer C.free(unsafe.Pointer(arr))
		ext := unsafe.Slice(arr, 2*int(n))
		for i := range int(n) {
			rg := textpos.Range{Start: int(ext[2*i]), End: int(ext[2*i+1])}
			if !yield(rg, nil) {
				return
			}
		}
	}
}

func (ck *darwinChecker) Languages() []string {
	var n C.int
	arr := C.spellLanguages(&n)
	return goStrings(arr, n)
}

func (ck *darwinChecker) Language() string {
	p := C.spellLanguage()
	if p == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

func (ck *darwinChecker) SetLanguage(tag string) bool {
	ct := C.CString(tag)
	defer C.free(unsafe.Pointer(ct))
	return bool(C.spellSetLanguage(ct))
}

func (ck *darwinChecker) AddWords(words ...string) {
	for _, w := range words {
		if ck.ignored[w] {
			continue
		}
		ck.ignored[w] = true
		cw := C.CString(w)
		C.spellIgnore(cw, ck.tag)
		C.free(unsafe.Pointer(cw))
	}
}

// RemoveWords removes words from the session word list by replacing
// the whole ignored list for this session's document tag, since the
// ignored list has no per-word removal.
func (ck *darwinChecker) RemoveWords(words ...string) {
	changed := false
	for _, w := range words {
		if ck.ignored[w] {
			delete(ck.ignored, w)
			changed = true
		}
	}
	if !changed {
		return
	}
	rem := make([]*C.char, 0, len(ck.ignored))
	for w := range ck.ignored {
		rem = append(rem, C.CString(w))
	}
	var p **C.char
	if len(rem) > 0 {
		p = &rem[0]
	}
	C.spellSetIgnored(p, C.int(len(rem)), ck.tag)
	for _, cw := range rem {
		C.free(unsafe.Pointer(cw))
	}
}

// Close closes this session's spell document, discarding its ignored
// word list. The shared NSSpellChecker instance itself is owned by
// the process.
func (ck *darwinChecker) Close() error {
	if ck.tag != 0 {
		C.spellCloseTag(ck.tag)
		ck.tag = 0
	}
	ck.ignored = nil
	return nil
}
