package main

import (
	"regexp"
	"strconv"
	"strings"
)

// syntaxWarning checks things that infix2rpn silently accepts but that
// are likely typos. It never changes how the expression is evaluated.
func syntaxWarning(statement string) (logOut string) {
	logOut = bracketCheck(statement, "(")
	logOut = logOut + bracketCheck(statement, "[")
	logOut = logOut + bracketCheck(statement, "{")
	logOut = logOut + wordCheck(statement)
	logOut = logOut + charCheck(statement)
	return
}

func bracketCheck(inString string, leftBrac string) (logOut string) {
	var rightBrac string
	var count int
	switch leftBrac {
	case "(":
		rightBrac = ")"
	case "[":
		rightBrac = "]"
	case "{":
		rightBrac = "}"
	default:
	}
	count = 0
	for i := range inString {
		if string(inString[i]) == leftBrac {
			count++
		}
		if string(inString[i]) == rightBrac {
			count--
		}
		if count < 0 {
			logOut = "-- Unmatched brackets: more " + rightBrac + " than " + leftBrac + " --"
			return
		}
	}
	if count > 0 {
		logOut = "-- Unmatched brackets: more " + leftBrac + " than " + rightBrac + " --"
	}
	return
}

// wordCheck reports letters that never spell a function name.
// infix2rpn keeps unmatched letters pending across numbers and spaces,
// so the letters of the whole line are read as one run (a 2 sin 30
// reads asin, which is not a function).
func wordCheck(inString string) (logOut string) {
	var reWord = regexp.MustCompile(`\pL+`)
	var pending string
	for _, c := range strings.Join(reWord.FindAllString(inString, -1), "") {
		pending = pending + string(c)
		if ops.isPrefix(pending) {
			pending = ""
		}
	}
	if pending != "" {
		logOut = "-- " + pending + " is not a function and is ignored --"
	}
	return
}

// charCheck reports characters that are neither part of a number,
// a function name nor an operator in the ops table.
func charCheck(inString string) (logOut string) {
	var reValid = regexp.MustCompile(`[\pL\d.\s]`)
	shouldBeBlank := reValid.ReplaceAllString(inString, "")
	var bad []string
	for _, c := range shouldBeBlank {
		if ops.kind(string(c)) == kindNone {
			bad = append(bad, string(c))
		}
	}
	if len(bad) > 0 {
		logOut = "-- character(s) " + strings.Join(bad, " ") + " should not be in an expression --"
	}
	return
}

// add line number and type to logOut info and add carriage return
func logOutError(logOut string, lineNum int, typeErr string) string {
	var outString string
	if lineNum != -1 { // dont include line number if lineNum = -1
		logOut = logOut + " - Line number: " + strconv.Itoa(lineNum+1)
	}
	if typeErr == "" {
		outString = logOut + "\n"
	} else {
		outString = typeErr + ": " + logOut + "\n"
	}
	return outString
}
