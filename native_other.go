// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !windows && !darwin

package spell

// newOSChecker returns [Stub] on platforms without a native spell
// checking facility, so spell checking degrades to disabled.
func newOSChecker(tag string) (Checker, error) {
	return Stub{}, nil
}
