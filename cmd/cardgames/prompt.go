package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// prompter asks questions on out and reads one answer per line from in
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (p *prompter) ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)
	str, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && str != "") {
		return "", err
	}

	return strings.TrimRight(str, "\r\n"), nil
}

// askInt repeats the question until the answer is a whole number of at least min
// An empty answer picks defaultValue.
func (p *prompter) askInt(question string, min, defaultValue int) (int, error) {
	for {
		str, err := p.ask(question)
		if err != nil {
			return 0, err
		}

		str = strings.TrimSpace(str)
		if str == "" {
			return defaultValue, nil
		}

		val, err := strconv.Atoi(str)
		if err != nil || val < min {
			_, _ = fmt.Fprintf(p.out, "Please enter a whole number of at least %d.\n", min)
			continue
		}

		return val, nil
	}
}

// askStand returns true when the answer starts with "s"
func (p *prompter) askStand(question string) (bool, error) {
	str, err := p.ask(question)
	if err != nil {
		return false, err
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(str)), "s"), nil
}
