package main

import (
	"bytes"
	"strings"

	gc "gopkg.in/check.v1"
)

type replSuite struct {
	out    bytes.Buffer
	errOut bytes.Buffer
}

var _ = gc.Suite(&replSuite{})

func (s *replSuite) SetUpTest(c *gc.C) {
	s.out.Reset()
	s.errOut.Reset()
}

func (s *replSuite) calculator(opts runOptions) *calculator {
	return &calculator{opts: opts, out: &s.out, errOut: &s.errOut}
}

func (s *replSuite) TestReplStopsAtExitWord(c *gc.C) {
	for _, word := range []string{"q", "exit", "  exit  "} {
		s.out.Reset()
		err := s.calculator(runOptions{}).repl(strings.NewReader("7+2\n  sqrt49 \n"+word+"\n3+3\n"), false)
		c.Assert(err, gc.IsNil)
		c.Check(s.out.String(), gc.Equals, "<<< 9.0\n<<< 7.0\n")
	}
}

func (s *replSuite) TestReplExitWordsAreCaseSensitive(c *gc.C) {
	err := s.calculator(runOptions{}).repl(strings.NewReader("Exit\nQ\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, "<<< nothing to evaluate\n<<< nothing to evaluate\n")
}

func (s *replSuite) TestReplErrors(c *gc.C) {
	err := s.calculator(runOptions{}).repl(strings.NewReader("\n+\n21!\n5 % 2\n1+1\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, strings.Join([]string{
		"<<< nothing to evaluate",
		"<<< +: not enough operands",
		"<<< 21! is above 20!: factorial overflow",
		"<<< unknown operator %",
		"<<< 2.0",
		"",
	}, "\n"))
}

func (s *replSuite) TestReplPrompt(c *gc.C) {
	err := s.calculator(runOptions{}).repl(strings.NewReader("7+2\nq\n"), true)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, ">>> <<< 9.0\n>>> ")

	s.out.Reset()
	err = s.calculator(runOptions{}).repl(strings.NewReader("7+2"), true)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, ">>> <<< 9.0\n>>> \n")
}

func (s *replSuite) TestShowRpn(c *gc.C) {
	err := s.calculator(runOptions{showRpn: true}).repl(strings.NewReader("sqrt49\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Matches, `(?s)\(\[\]string\) \(len=2\) \{.*"49".*"sqrt".*\}\n<<< 7\.0\n`)
}

func (s *replSuite) TestFormat(c *gc.C) {
	err := s.calculator(runOptions{formatStr: "D2"}).repl(strings.NewReader("1/3\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, "<<< 0.33\n")
}

func (s *replSuite) TestNormalizedInput(c *gc.C) {
	err := s.calculator(runOptions{}).repl(strings.NewReader("６ × ７\n√４９\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, "<<< 42.0\n<<< 7.0\n")
}

func (s *replSuite) TestWarnings(c *gc.C) {
	err := s.calculator(runOptions{warn: true}).repl(strings.NewReader("(1+2\n1+2\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.out.String(), gc.Equals, "<<< (: not enough operands\n<<< 3.0\n")
	c.Check(s.errOut.String(), gc.Equals, "WARNING: -- Unmatched brackets: more ( than ) --\n")
}

func (s *replSuite) TestWarningsNeedFlag(c *gc.C) {
	err := s.calculator(runOptions{}).repl(strings.NewReader("(1+2\n"), false)
	c.Assert(err, gc.IsNil)
	c.Check(s.errOut.String(), gc.Equals, "")
}

func (s *replSuite) TestBatch(c *gc.C) {
	s.calculator(runOptions{warn: true}).batch("1+1 # two\n\n# only a comment\n(2*3\r\n2*3\nexit\n5\n")
	c.Check(s.out.String(), gc.Equals, "<<< 2.0\n<<< (: not enough operands\n<<< 6.0\n")
	c.Check(s.errOut.String(), gc.Equals, "WARNING: -- Unmatched brackets: more ( than ) -- - Line number: 4\n")
}
