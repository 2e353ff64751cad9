// © 2026 Kars. All rights reserved.
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE.md file.

// Package prompt asks the user simple questions on the terminal.
//
// When stdin is an interactive terminal, questions are asked through survey;
// otherwise a plain read-a-line fallback is used so that the tool stays
// scriptable and testable with redirected streams.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"golang.org/x/term"
)

// Prompter asks questions on the given streams. Ask several questions
// through the same Prompter; it shares one buffered reader in the fallback
// path so no input is lost between questions.
type Prompter struct {
	in  io.Reader
	out io.Writer
	br  *bufio.Reader
}

// New returns a Prompter reading answers from in and writing questions to
// out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out}
}

// interactive reports whether the streams belong to a terminal that survey
// can drive directly.
func (p *Prompter) interactive() (terminal.FileReader, terminal.FileWriter, bool) {
	fin, ok := p.in.(terminal.FileReader)
	if !ok {
		return nil, nil, false
	}
	fout, ok := p.out.(terminal.FileWriter)
	if !ok {
		return nil, nil, false
	}
	return fin, fout, term.IsTerminal(int(fin.Fd()))
}

// Input asks for a single line of text, offering def as the default answer.
func (p *Prompter) Input(message, def string) (string, error) {
	if fin, fout, ok := p.interactive(); ok {
		var answer string
		q := &survey.Input{Message: message, Default: def}
		if err := survey.AskOne(q, &answer, survey.WithStdio(fin, fout, fout)); err != nil {
			return "", err
		}
		return answer, nil
	}

	fmt.Fprintf(p.out, "%s [%s]: ", message, def)
	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(message string) (bool, error) {
	if fin, fout, ok := p.interactive(); ok {
		var answer bool
		q := &survey.Confirm{Message: message}
		if err := survey.AskOne(q, &answer, survey.WithStdio(fin, fout, fout)); err != nil {
			return false, err
		}
		return answer, nil
	}

	fmt.Fprintf(p.out, "%s (y/n): ", message)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func (p *Prompter) readLine() (string, error) {
	if p.br == nil {
		p.br = bufio.NewReader(p.in)
	}
	line, err := p.br.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
