package main

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/xerrors"
)

// scanMode says whether the next "-" is a sign or a subtraction.
type scanMode int

const (
	expectOperand scanMode = iota // start, after "(", a binary operator or a function name
	afterOperand                  // after a number, ")" or "!"
)

// translator holds the working state of a single infix2rpn call.
type translator struct {
	out   []string // postfix output (append only)
	stack []string // operators and "(" waiting to be written out
	num   strings.Builder
	word  strings.Builder // letters not yet matching a function name
}

// infix2rpn converts an infix expression to postfix tokens with the
// shunting-yard algorithm. It never fails: malformed input gives a token
// sequence that rpnEval rejects.
func infix2rpn(inString string) []string {
	var tr translator
	mode := expectOperand
	for _, c := range inString {
		mode = tr.step(c, mode)
	}
	tr.flushNumber()
	for len(tr.stack) > 0 {
		tr.out = append(tr.out, tr.pop())
	}
	return tr.out
}

// step consumes one character and returns the mode for the next one.
func (tr *translator) step(c rune, mode scanMode) scanMode {
	switch {
	case unicode.IsSpace(c):
		return mode
	case isDigit(c) || c == '.':
		tr.num.WriteRune(c)
		return afterOperand
	case c == '-' && mode == expectOperand && tr.num.Len() == 0:
		tr.num.WriteRune(c) // sign of the number that follows
		return expectOperand
	}
	tr.flushNumber()

	if unicode.IsLetter(c) {
		tr.word.WriteRune(c)
		if name := tr.word.String(); ops.isPrefix(name) {
			tr.stack = append(tr.stack, name)
			tr.word.Reset()
			return expectOperand
		}
		return mode
	}

	token := string(c)
	switch ops.kind(token) {
	case kindPostfix:
		tr.out = append(tr.out, token)
		return afterOperand
	case kindGroupOpen:
		tr.stack = append(tr.stack, token)
		return expectOperand
	case kindGroupClose:
		tr.closeGroup()
		return afterOperand
	case kindNone:
		tr.pushOperator(token) // not an operator, so the sign context stays as it was
		return mode
	}
	tr.pushOperator(token)
	return expectOperand
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (tr *translator) flushNumber() {
	if tr.num.Len() == 0 {
		return
	}
	tr.out = append(tr.out, tr.num.String())
	tr.num.Reset()
}

func (tr *translator) pop() string {
	top := tr.stack[len(tr.stack)-1]
	tr.stack = tr.stack[:len(tr.stack)-1]
	return top
}

// closeGroup writes out everything above the matching "(".
// A missing "(" just empties the stack.
func (tr *translator) closeGroup() {
	for len(tr.stack) > 0 {
		top := tr.pop()
		if ops.kind(top) == kindGroupOpen {
			return
		}
		tr.out = append(tr.out, top)
	}
}

// pushOperator writes out pending functions and every operator that
// binds at least as tight as token, then pushes token.
func (tr *translator) pushOperator(token string) {
	prec := ops.prec(token)
	for len(tr.stack) > 0 {
		top := tr.stack[len(tr.stack)-1]
		if !ops.isPrefix(top) && ops.prec(top) < prec {
			break
		}
		tr.out = append(tr.out, tr.pop())
	}
	tr.stack = append(tr.stack, token)
}

type evalStack []float64

func (s *evalStack) push(x float64) {
	*s = append(*s, x)
}

func (s *evalStack) pop() (float64, bool) {
	n := len(*s)
	if n == 0 {
		return 0, false
	}
	x := (*s)[n-1]
	*s = (*s)[:n-1]
	return x, true
}

// rpnEval evaluates postfix tokens. Operands left over at the end are
// multiplied together (implicit multiplication, as in "2(3)").
// Operands are popped before the token is looked up, so a short stack
// reports errInsufficientOperands even for a token that is not an operator.
func rpnEval(tokens []string) (answer float64, err error) {
	var stack evalStack
	for _, token := range tokens {
		if x, ok := parseNumber(token); ok {
			stack.push(x)
			continue
		}
		op := ops[token]
		var a, b float64
		var ok bool
		if op.kind != kindPrefix && op.kind != kindPostfix {
			if b, ok = stack.pop(); !ok {
				return math.NaN(), insufficientOperands(token)
			}
		}
		if a, ok = stack.pop(); !ok {
			return math.NaN(), insufficientOperands(token)
		}
		switch op.kind {
		case kindBinary:
			stack.push(op.two(a, b))
		case kindPrefix, kindPostfix:
			x, err := op.one(a)
			if err != nil {
				return math.NaN(), err
			}
			stack.push(x)
		default:
			return math.NaN(), &unknownOperatorError{name: token}
		}
	}
	if len(stack) == 0 {
		return math.NaN(), errEmptyResult
	}
	for len(stack) > 1 {
		b, okB := stack.pop()
		a, okA := stack.pop()
		if !okA || !okB {
			return math.NaN(), insufficientOperands("*")
		}
		stack.push(a * b)
	}
	answer, _ = stack.pop()
	return answer, nil
}

// parseNumber accepts anything strconv.ParseFloat does (1e3, +5, inf).
// A literal out of float64 range becomes ±Inf.
func parseNumber(token string) (float64, bool) {
	x, err := strconv.ParseFloat(token, 64)
	if err != nil && !xerrors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return x, true
}
