// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows

package spell

import (
	"fmt"
	"iter"
	"syscall"
	"unsafe"

	"cogentcore.org/spell/textpos"
	"golang.org/x/sys/windows"
)

// Windows Spell Checking API (msspellcheck.h), reached through COM.
// Positions reported by ISpellingError are UTF-16 code unit offsets
// into the checked string.

var (
	clsidSpellCheckerFactory = windows.GUID{Data1: 0x7AB36653, Data2: 0x1796, Data3: 0x484B, Data4: [8]byte{0xBD, 0xFA, 0xE7, 0x4F, 0x1D, 0xB7, 0xC1, 0xDC}}
	iidISpellCheckerFactory  = windows.GUID{Data1: 0x8E018A9D, Data2: 0x2415, Data3: 0x4677, Data4: [8]byte{0xBF, 0x08, 0x79, 0x4E, 0xA6, 0x1F, 0x94, 0xBB}}
)

const (
	sOK                 = 0
	clsctxAll           = 0x17
	coinitMultithreaded = 0x0
	rpcEChangedMode     = 0x80010106

	correctiveActionNone           = 0
	correctiveActionGetSuggestions = 1
	correctiveActionReplace        = 2
	correctiveActionDelete         = 3
)

var (
	ole32            = windows.NewLazySystemDLL("ole32.dll")
	coInitializeEx   = ole32.NewProc("CoInitializeEx")
	coCreateInstance = ole32.NewProc("CoCreateInstance")
	coTaskMemFree    = ole32.NewProc("CoTaskMemFree")

	kernel32                 = windows.NewLazySystemDLL("kernel32.dll")
	getUserDefaultLocaleName = kernel32.NewProc("GetUserDefaultLocaleName")
)

type iUnknownVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
}

type iSpellCheckerFactory struct {
	vtbl *iSpellCheckerFactoryVtbl
}

type iSpellCheckerFactoryVtbl struct {
	iUnknownVtbl
	GetSupportedLanguages uintptr
	IsSupported           uintptr
	CreateSpellChecker    uintptr
}

type iSpellChecker struct {
	vtbl *iSpellCheckerVtbl
}

// method order per msspellcheck.h
type iSpellCheckerVtbl struct {
	iUnknownVtbl
	GetLanguageTag            uintptr
	Check                     uintptr
	Suggest                   uintptr
	Add                       uintptr
	Ignore                    uintptr
	AutoCorrect               uintptr
	GetOptionValue            uintptr
	GetOptionIds              uintptr
	GetID                     uintptr
	GetLocalizedName          uintptr
	AddSpellCheckerChanged    uintptr
	RemoveSpellCheckerChanged uintptr
	GetOptionDescription      uintptr
	ComprehensiveCheck        uintptr
}

type iEnumSpellingError struct {
	vtbl *iEnumSpellingErrorVtbl
}

type iEnumSpellingErrorVtbl struct {
	iUnknownVtbl
	Next uintptr
}

type iSpellingError struct {
	vtbl *iSpellingErrorVtbl
}

type iSpellingErrorVtbl struct {
	iUnknownVtbl
	GetStartIndex       uintptr
	GetLength           uintptr
	GetCorrectiveAction uintptr
	GetReplacement      uintptr
}

type iEnumString struct {
	vtbl *iEnumStringVtbl
}

type iEnumStringVtbl struct {
	iUnknownVtbl
	Next  uintptr
	Skip  uintptr
	Reset uintptr
	Clone uintptr
}

func release(obj unsafe.Pointer) {
	if obj == nil {
		return
	}
	vtbl := *(**iUnknownVtbl)(obj)
	syscall.SyscallN(vtbl.Release, uintptr(obj))
}

func hrErr(op string, hr uintptr) error {
	return fmt.Errorf("%s failed with HRESULT 0x%08X: %w", op, uint32(hr), ErrBackendUnavailable)
}

// freeCoString converts a CoTaskMemAlloc'd wide string to a Go
// string and frees it.
func freeCoString(p *uint16) string {
	if p == nil {
		return ""
	}
	s := windows.UTF16PtrToString(p)
	coTaskMemFree.Call(uintptr(unsafe.Pointer(p)))
	return s
}

// windowsChecker wraps an ISpellChecker for one locale. The session
// word list is kept as COM Ignore calls, which are scoped to this
// checker instance, plus a shadow set so that removal can re-create
// the instance without the removed word.
type windowsChecker struct {
	factory *iSpellCheckerFactory
	checker *iSpellChecker
	lang    string
	ignored map[string]bool
}

func newOSChecker(tag string) (Checker, error) {
	hr, _, _ := coInitializeEx.Call(0, coinitMultithreaded)
	if int32(hr) < 0 && uint32(hr) != rpcEChangedMode {
		return nil, hrErr("CoInitializeEx", hr)
	}
	var factory *iSpellCheckerFactory
	hr, _, _ = coCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsidSpellCheckerFactory)), 0, clsctxAll,
		uintptr(unsafe.Pointer(&iidISpellCheckerFactory)),
		uintptr(unsafe.Pointer(&factory)))
	if int32(hr) < 0 {
		return nil, hrErr("CoCreateInstance(SpellCheckerFactory)", hr)
	}
	if tag == "" {
		tag = userDefaultLocale()
	}
	ck := &windowsChecker{factory: factory, ignored: map[string]bool{}}
	sc, err := ck.create(tag)
	if err != nil {
		release(unsafe.Pointer(factory))
		return nil, fmt.Errorf("spell: no checker for locale %q: %w", tag, ErrLanguageInit)
	}
	ck.checker = sc
	ck.lang = tag
	return ck, nil
}

func userDefaultLocale() string {
	var buf [85]uint16 // LOCALE_NAME_MAX_LENGTH
	n, _, _ := getUserDefaultLocaleName.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if n == 0 {
		return "en-US"
	}
	return windows.UTF16ToString(buf[:])
}

// create makes an ISpellChecker for the given locale, checking
// support first.
func (ck *windowsChecker) create(tag string) (*iSpellChecker, error) {
	wtag, err := windows.UTF16PtrFromString(tag)
	if err != nil {
		return nil, err
	}
	var supported int32
	hr, _, _ := syscall.SyscallN(ck.factory.vtbl.IsSupported,
		uintptr(unsafe.Pointer(ck.factory)),
		uintptr(unsafe.Pointer(wtag)),
		uintptr(unsafe.Pointer(&supported)))
	if int32(hr) < 0 {
		return nil, hrErr("ISpellCheckerFactory.IsSupported", hr)
	}
	if supported == 0 {
		return nil, fmt.Errorf("locale %q is not supported", tag)
	}
	var sc *iSpellChecker
	hr, _, _ = syscall.SyscallN(ck.factory.vtbl.CreateSpellChecker,
		uintptr(unsafe.Pointer(ck.factory)),
		uintptr(unsafe.Pointer(wtag)),
		uintptr(unsafe.Pointer(&sc)))
	if int32(hr) < 0 {
		return nil, hrErr("ISpellCheckerFactory.CreateSpellChecker", hr)
	}
	return sc, nil
}

// check runs ISpellChecker.Check on the text and returns the flagged
// extents, in UTF-16 code units, skipping errors whose corrective
// action is none or delete, as those have no usable correction.
func (ck *windowsChecker) check(text string) ([]textpos.Range, error) {
	wtext, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return nil, fmt.Errorf("encoding text: %w", err)
	}
	var enum *iEnumSpellingError
	hr, _, _ := syscall.SyscallN(ck.checker.vtbl.Check,
		uintptr(unsafe.Pointer(ck.checker)),
		uintptr(unsafe.Pointer(wtext)),
		uintptr(unsafe.Pointer(&enum)))
	if int32(hr) < 0 {
		return nil, hrErr("ISpellChecker.Check", hr)
	}
	defer release(unsafe.Pointer(enum))
	var ranges []textpos.Range
	for {
		var serr *iSpellingError
		hr, _, _ = syscall.SyscallN(enum.vtbl.Next,
			uintptr(unsafe.Pointer(enum)),
			uintptr(unsafe.Pointer(&serr)))
		if hr != sOK || serr == nil {
			break
		}
		var start, length, action uint32
		syscall.SyscallN(serr.vtbl.GetStartIndex, uintptr(unsafe.Pointer(serr)), uintptr(unsafe.Pointer(&start)))
		syscall.SyscallN(serr.vtbl.GetLength, uintptr(unsafe.Pointer(serr)), uintptr(unsafe.Pointer(&length)))
		syscall.SyscallN(serr.vtbl.GetCorrectiveAction, uintptr(unsafe.Pointer(serr)), uintptr(unsafe.Pointer(&action)))
		release(unsafe.Pointer(serr))
		if action == correctiveActionNone || action == correctiveActionDelete {
			continue
		}
		ranges = append(ranges, textpos.Range{Start: int(start), End: int(start + length)})
	}
	return ranges, nil
}

// Tokenize yields the extents that the checker flags in the text.
// The Windows API fuses segmentation and checking in one Check scan,
// so correctly spelled words are never surfaced; the result of
// assembling misspellings is the same.
func (ck *windowsChecker) Tokenize(text string) iter.Seq2[textpos.Range, error] {
	return func(yield func(textpos.Range, error) bool) {
		ranges, err := ck.check(text)
		if err != nil {
			yield(textpos.Range{}, err)
			return
		}
		for _, rg := range ranges {
			if !yield(rg, nil) {
				return
			}
		}
	}
}

func (ck *windowsChecker) IsCorrect(word string) (bool, error) {
	ranges, err := ck.check(word)
	if err != nil {
		return false, err
	}
	return len(ranges) == 0, nil
}

func (ck *windowsChecker) Suggest(word string) ([]string, error) {
	wword, err := windows.UTF16PtrFromString(word)
	if err != nil {
		return nil, fmt.Errorf("encoding word: %w", err)
	}
	var enum *iEnumString
	hr, _, _ := syscall.SyscallN(ck.checker.vtbl.Suggest,
		uintptr(unsafe.Pointer(ck.checker)),
		uintptr(unsafe.Pointer(wword)),
		uintptr(unsafe.Pointer(&enum)))
	if int32(hr) < 0 {
		return nil, hrErr("ISpellChecker.Suggest", hr)
	}
	defer release(unsafe.Pointer(enum))
	var sugg []string
	for {
		var p *uint16
		var fetched uint32
		hr, _, _ = syscall.SyscallN(enum.vtbl.Next,
			uintptr(unsafe.Pointer(enum)), 1,
			uintptr(unsafe.Pointer(&p)),
			uintptr(unsafe.Pointer(&fetched)))
		if hr != sOK || fetched == 0 || p == nil {
			break
		}
		sugg = append(sugg, freeCoString(p))
	}
	return sugg, nil
}

func (ck *windowsChecker) Languages() []string {
	var enum *iEnumString
	hr, _, _ := syscall.SyscallN(ck.factory.vtbl.GetSupportedLanguages,
		uintptr(unsafe.Pointer(ck.factory)),
		uintptr(unsafe.Pointer(&enum)))
	if int32(hr) < 0 {
		return nil
	}
	defer release(unsafe.Pointer(enum))
	var langs []string
	for {
		var p *uint16
		var fetched uint32
		hr, _, _ = syscall.SyscallN(enum.vtbl.Next,
			uintptr(unsafe.Pointer(enum)), 1,
			uintptr(unsafe.Pointer(&p)),
			uintptr(unsafe.Pointer(&fetched)))
		if hr != sOK || fetched == 0 || p == nil {
			break
		}
		langs = append(langs, freeCoString(p))
	}
	return langs
}

func (ck *windowsChecker) Language() string {
	return ck.lang
}

func (ck *windowsChecker) SetLanguage(tag string) bool {
	sc, err := ck.create(tag)
	if err != nil {
		return false
	}
	release(unsafe.Pointer(ck.checker))
	ck.checker = sc
	ck.lang = tag
	ck.reignore()
	return true
}

func (ck *windowsChecker) AddWords(words ...string) {
	for _, w := range words {
		if ck.ignored[w] {
			continue
		}
		ck.ignored[w] = true
		ck.ignore(w)
	}
}

// RemoveWords drops words from the session word list. COM has no
// un-ignore, so the checker instance is re-created and the remaining
// session words are re-applied.
func (ck *windowsChecker) RemoveWords(words ...string) {
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
	sc, err := ck.create(ck.lang)
	if err != nil {
		return
	}
	release(unsafe.Pointer(ck.checker))
	ck.checker = sc
	ck.reignore()
}

func (ck *windowsChecker) ignore(word string) {
	wword, err := windows.UTF16PtrFromString(word)
	if err != nil {
		return
	}
	syscall.SyscallN(ck.checker.vtbl.Ignore,
		uintptr(unsafe.Pointer(ck.checker)),
		uintptr(unsafe.Pointer(wword)))
}

func (ck *windowsChecker) reignore() {
	for w := range ck.ignored {
		ck.ignore(w)
	}
}

func (ck *windowsChecker) Close() error {
	release(unsafe.Pointer(ck.checker))
	release(unsafe.Pointer(ck.factory))
	ck.checker = nil
	ck.factory = nil
	return nil
}
