// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Checker = Stub{}

func TestStub(t *testing.T) {
	ss := NewSession(Stub{})

	res, err := ss.CheckAndSuggest("enny wrds at al, evn massplled")
	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	correct, err := ss.CheckWord("massplled")
	assert.NoError(t, err)
	assert.True(t, correct)

	sugg, err := ss.Suggest("massplled")
	assert.NoError(t, err)
	assert.Empty(t, sugg)

	assert.Empty(t, ss.Languages())
	assert.Equal(t, "", ss.Language())
	assert.False(t, ss.SetLanguage("en-US"))

	ss.AddWords("massplled")
	ss.RemoveWords("massplled")
	assert.NoError(t, ss.Close())
}
