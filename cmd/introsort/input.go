// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

// A token is one whitespace-separated value and where it came from.
type token struct {
	text string
	pos  string // file:line
}

// readTokens reads the tokens of each named file in order, or of stdin if
// there are no files.
func readTokens(files []string, stdin io.Reader) ([]token, error) {
	if len(files) == 0 {
		return scanTokens("<stdin>", stdin, nil)
	}
	var tokens []token
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return nil, xerrors.Errorf("reading input: %w", err)
		}
		tokens, err = scanTokens(name, f, tokens)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

// scanTokens appends the tokens of r to tokens. Lines may be of any length.
func scanTokens(name string, r io.Reader, tokens []token) ([]token, error) {
	br := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, err := br.ReadString('\n')
		for _, f := range strings.Fields(text) {
			tokens = append(tokens, token{text: f, pos: fmt.Sprintf("%s:%d", name, line)})
		}
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, xerrors.Errorf("reading %s: %w", name, err)
		}
	}
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid int %q: %w", s, unwrapNum(err))
	}
	return v, nil
}

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid float %q: %w", s, unwrapNum(err))
	}
	return v, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseString(s string) (string, error) { return s, nil }

func formatString(s string) string { return s }

// unwrapNum drops the strconv.NumError wrapper, whose message repeats the
// function name and input.
func unwrapNum(err error) error {
	var ne *strconv.NumError
	if xerrors.As(err, &ne) {
		return ne.Err
	}
	return err
}
