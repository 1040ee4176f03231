// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import "errors"

var (
	// ErrBackendUnavailable indicates that the native OS spell checking
	// facility could not be reached (for example a COM call failed).
	// It is fatal for the current call but not for the session.
	ErrBackendUnavailable = errors.New("native spell checking backend unavailable")

	// ErrLanguageInit indicates a construction-time failure to establish
	// any active spell checking language.
	ErrLanguageInit = errors.New("no spell checking language could be established")
)
