package main

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/xerrors"
)

const (
	prompt       = ">>> "
	answerMarker = "<<< "
)

// typed alone on a line, these end the session
var exitWords = map[string]bool{
	"exit": true,
	"q":    true,
}

var tokenDumper = spew.ConfigState{Indent: "  ", DisableCapacities: true}

var reBeforeComment = regexp.MustCompile(`(?mU)^(?P<res1>.*)#.*$`)

type calculator struct {
	opts   runOptions
	out    io.Writer
	errOut io.Writer // warnings
}

// evalLine runs one expression through infix2rpn and rpnEval and returns
// the answer or error text. lineNum is -1 outside batch mode.
func (c *calculator) evalLine(line string, lineNum int) string {
	line = normalizeInput(line)
	if c.opts.warn {
		if logOut := syntaxWarning(line); logOut != "" {
			fmt.Fprint(c.errOut, logOutError(logOut, lineNum, "WARNING"))
		}
	}
	tokens := infix2rpn(line)
	if c.opts.showRpn {
		tokenDumper.Fdump(c.out, tokens)
	}
	answer, err := rpnEval(tokens)
	if err != nil {
		return err.Error()
	}
	return value2Str(answer, c.opts.formatStr)
}

// repl reads one expression per line until an exit word or EOF.
// The prompt is only written when in is a terminal.
func (c *calculator) repl(in io.Reader, showPrompt bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if showPrompt {
			fmt.Fprint(c.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if exitWords[line] {
			return nil
		}
		fmt.Fprintln(c.out, answerMarker+c.evalLine(line, -1))
	}
	if showPrompt {
		fmt.Fprintln(c.out)
	}
	if err := scanner.Err(); err != nil {
		return xerrors.Errorf("reading input: %w", err)
	}
	return nil
}

// batch evaluates every line of a file. Text after # is a comment and
// blank lines are skipped.
func (c *calculator) batch(inString string) {
	for i, line := range strings.Split(inString, "\n") {
		if reBeforeComment.MatchString(line) {
			line = reBeforeComment.FindStringSubmatch(line)[1] // strip off comments after #
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if exitWords[line] {
			return
		}
		fmt.Fprintln(c.out, answerMarker+c.evalLine(line, i))
	}
}
