package main

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/xerrors"
)

type opKind int

const (
	kindNone opKind = iota // not in the table
	kindBinary
	kindPrefix  // named function written before its operand (sqrt 25)
	kindPostfix // written after its operand (5!)
	kindGroupOpen
	kindGroupClose
)

type opInfo struct {
	prec int // precedence value (higher is more priority)
	kind opKind
	one  func(float64) (float64, error) // prefix and postfix operators
	two  func(float64, float64) float64 // binary operators
}

// opTable maps an operator name to its precedence, arity class and
// applier. It is built once by newOpTable and only read afterwards.
type opTable map[string]opInfo

var ops = mustOpTable(map[string]opInfo{
	"!": {5, kindPostfix, factorial, nil},

	"sqrt":   {4, kindPrefix, plain(math.Sqrt), nil},
	"sin":    {4, kindPrefix, plain(sind), nil},
	"cos":    {4, kindPrefix, plain(cosd), nil},
	"tan":    {4, kindPrefix, plain(tand), nil},
	"cot":    {4, kindPrefix, plain(cotd), nil},
	"sec":    {4, kindPrefix, plain(secd), nil},
	"csc":    {4, kindPrefix, plain(cscd), nil},
	"arcsin": {4, kindPrefix, plain(asind), nil},
	"arccos": {4, kindPrefix, plain(acosd), nil},
	"arctan": {4, kindPrefix, plain(atand), nil},
	"arccot": {4, kindPrefix, plain(acotd), nil},
	"arcsec": {4, kindPrefix, plain(asecd), nil},
	"arccsc": {4, kindPrefix, plain(acscd), nil},

	"^": {3, kindBinary, nil, pow},
	"*": {2, kindBinary, nil, mult},
	"/": {2, kindBinary, nil, div},
	"+": {1, kindBinary, nil, add},
	"-": {1, kindBinary, nil, sub},

	"(": {0, kindGroupOpen, nil, nil},
	")": {0, kindGroupClose, nil, nil},
})

// newOpTable checks that every entry can be applied the way its kind
// says and that the translator can recognise every name without
// lookahead: symbols are a single character and no function name is a
// proper prefix of another one.
func newOpTable(entries map[string]opInfo) (opTable, error) {
	var funcNames []string
	for name, op := range entries {
		switch op.kind {
		case kindBinary:
			if op.two == nil || op.one != nil {
				return nil, xerrors.Errorf("operator %q: binary operator needs a two operand function", name)
			}
		case kindPrefix, kindPostfix:
			if op.one == nil || op.two != nil {
				return nil, xerrors.Errorf("operator %q: unary operator needs a one operand function", name)
			}
		case kindGroupOpen, kindGroupClose:
		default:
			return nil, xerrors.Errorf("operator %q: no kind given", name)
		}
		if op.kind == kindPrefix {
			if strings.IndexFunc(name, func(r rune) bool { return !unicode.IsLetter(r) }) != -1 || name == "" {
				return nil, xerrors.Errorf("function %q: name must be letters only", name)
			}
			funcNames = append(funcNames, name)
			continue
		}
		if utf8.RuneCountInString(name) != 1 {
			return nil, xerrors.Errorf("operator %q: symbol must be a single character", name)
		}
		if r, _ := utf8.DecodeRuneInString(name); unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' {
			return nil, xerrors.Errorf("operator %q: symbol can not be a letter, digit or .", name)
		}
	}
	// after sorting, a name that is a prefix of another sorts right before it
	sort.Strings(funcNames)
	for i := 1; i < len(funcNames); i++ {
		if strings.HasPrefix(funcNames[i], funcNames[i-1]) {
			return nil, xerrors.Errorf("function %q hides %q: a function name can not start with another function name", funcNames[i-1], funcNames[i])
		}
	}
	t := make(opTable, len(entries))
	for name, op := range entries {
		t[name] = op
	}
	return t, nil
}

func mustOpTable(entries map[string]opInfo) opTable {
	t, err := newOpTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// prec is 0 for names not in the table and for grouping markers.
func (t opTable) prec(name string) int {
	return t[name].prec
}

func (t opTable) kind(name string) opKind {
	return t[name].kind
}

func (t opTable) isPrefix(name string) bool {
	return t.kind(name) == kindPrefix
}

func (t opTable) isPostfix(name string) bool {
	return t.kind(name) == kindPostfix
}
