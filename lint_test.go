package main

import (
	gc "gopkg.in/check.v1"
)

type lintSuite struct{}

var _ = gc.Suite(&lintSuite{})

func (*lintSuite) TestBracketCheck(c *gc.C) {
	c.Check(bracketCheck("(1+2)*(3)", "("), gc.Equals, "")
	c.Check(bracketCheck("(1+2", "("), gc.Equals, "-- Unmatched brackets: more ( than ) --")
	c.Check(bracketCheck("1+2)(", "("), gc.Equals, "-- Unmatched brackets: more ) than ( --")
	c.Check(bracketCheck("[1", "["), gc.Equals, "-- Unmatched brackets: more [ than ] --")
}

func (*lintSuite) TestWordCheck(c *gc.C) {
	c.Check(wordCheck("sqrtsin 30 + arccot 1"), gc.Equals, "")
	c.Check(wordCheck("x + sqrt 4"), gc.Equals, "-- xsqrt is not a function and is ignored --")
	c.Check(wordCheck("a 2 sin 30"), gc.Equals, "-- asin is not a function and is ignored --")
	c.Check(wordCheck("sin 30 a"), gc.Equals, "-- a is not a function and is ignored --")
	c.Check(wordCheck("sinh 1"), gc.Equals, "-- h is not a function and is ignored --")
}

func (*lintSuite) TestWordCheckAgreesWithTranslator(c *gc.C) {
	// the pending letters swallow sin, so only the numbers reach the output
	c.Check(infix2rpn("a 2 sin 30"), gc.DeepEquals, []string{"2", "30"})
}

func (*lintSuite) TestCharCheck(c *gc.C) {
	c.Check(charCheck("3 + 4 * 2 / (1 - 5)^2!"), gc.Equals, "")
	c.Check(charCheck("5 % 2 = 1"), gc.Equals, "-- character(s) % = should not be in an expression --")
}

func (*lintSuite) TestSyntaxWarning(c *gc.C) {
	c.Check(syntaxWarning("3 + sqrt49^2"), gc.Equals, "")
	c.Check(syntaxWarning("(x"), gc.Equals,
		"-- Unmatched brackets: more ( than ) ---- x is not a function and is ignored --")
}

func (*lintSuite) TestLogOutError(c *gc.C) {
	c.Check(logOutError("bad", 2, "WARNING"), gc.Equals, "WARNING: bad - Line number: 3\n")
	c.Check(logOutError("bad", -1, ""), gc.Equals, "bad\n")
}
