// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompt implements the interactive line prompts the export shell
// uses. All reads go through one Prompter so buffered input is never lost
// between questions, and both ends are plain io interfaces so tests drive
// the dialogue from strings.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

// New returns a Prompter over the given streams.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints msg and returns the next input line, trimmed. EOF with a
// partial line yields that line; bare EOF yields io.EOF.
func (p *Prompter) Line(msg string) (string, error) {
	if msg != "" {
		fmt.Fprint(p.w, msg)
	}
	line, err := p.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// NonEmpty asks msg until the user enters a non-blank line, printing
// onEmpty after each blank attempt.
func (p *Prompter) NonEmpty(msg, onEmpty string) (string, error) {
	for {
		line, err := p.Line(msg)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(p.w, onEmpty)
	}
}

// Choice presents numbered options and returns the selected index. When
// def is a valid index, an empty answer accepts it; otherwise the user is
// re-asked until the answer is a valid option number.
func (p *Prompter) Choice(msg string, options []string, def int) (int, error) {
	fmt.Fprintln(p.w, msg)
	for i, opt := range options {
		fmt.Fprintf(p.w, "%d) %s\n", i+1, opt)
	}
	hasDefault := def >= 0 && def < len(options)
	if hasDefault {
		fmt.Fprintf(p.w, "Press Enter for default (%s).\n", options[def])
	}

	for {
		line, err := p.Line("Your choice: ")
		if err != nil {
			return 0, err
		}
		if line == "" && hasDefault {
			return def, nil
		}
		for i := range options {
			if line == fmt.Sprintf("%d", i+1) {
				return i, nil
			}
		}
		fmt.Fprintf(p.w, "Invalid input. Please enter a number between 1 and %d.\n", len(options))
	}
}
