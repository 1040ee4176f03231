// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command spell checks the spelling of text with the native OS spell
// checker, printing misspelled words with their byte offsets and
// suggested corrections.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/cli"
	"cogentcore.org/spell"
	"cogentcore.org/spell/dict"
)

// Config is the configuration information for the spell cli.
type Config struct {

	// Text is the text to check. If no text is given,
	// it is read from standard input.
	Text []string `posarg:"leftover" required:"-"`

	// Lang is the language tag to check in, such as en-US.
	// It defaults to the system locale.
	Lang string `flag:"l,lang"`

	// Add is a list of words to accept for this run.
	Add []string `flag:"a,add"`

	// Embedded uses the bundled dictionary checker instead of the
	// native OS spell checker, which also works on platforms
	// without one.
	Embedded bool `flag:"e,embedded"`

	// JSON prints the results as JSON.
	JSON bool `flag:"j,json"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("spell", "Spell checks text using the native OS spell checker, reporting misspelled words with suggested corrections.")
	cli.Run(opts, &Config{}, Check)
}

// Check checks the spelling of the configured text and prints any
// misspellings found.
func Check(c *Config) error { //cli:cmd -root
	var ss *spell.Session
	if c.Embedded {
		ck, err := dict.New(c.Lang)
		if err != nil {
			return err
		}
		ss = spell.NewSession(ck)
	} else {
		var err error
		ss, err = spell.New(c.Lang)
		if err != nil {
			return err
		}
	}
	defer func() { errors.Log(ss.Close()) }()
	ss.AddWords(c.Add...)

	text := strings.Join(c.Text, " ")
	if text == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		text = string(b)
	}
	res, err := ss.CheckAndSuggest(text)
	if err != nil {
		return err
	}
	if c.JSON {
		return jsonx.Write(res, os.Stdout)
	}
	for _, ms := range res {
		fmt.Printf("%d:%d\t%s\t%s\n", ms.Start, ms.End, ms.Word, strings.Join(ms.Suggestions, ", "))
	}
	if len(res) == 0 {
		fmt.Println("no misspellings")
	}
	return nil
}
