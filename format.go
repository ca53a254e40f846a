package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// value2Str formats an answer for printing.
// formatStr is empty (shortest exact form) or a letter followed by a digit:
// D decimal places, S scientific, E engineering, U SI prefix (ex: D4, S3)
func value2Str(x float64, formatStr string) (outString string) {
	var formatType, sigDigits string
	if math.IsInf(x, 0) || math.IsNaN(x) || formatStr == "" {
		return plainStr(x)
	}
	formatType, sigDigits, _ = parseFormat(formatStr)
	places, _ := strconv.Atoi(sigDigits)
	mantissa := places - 1 // digits after the point in d.ddde±x form
	if mantissa < 0 {
		mantissa = 0
	}
	switch formatType {
	case "E": // engineering notation (powers of 3 for exponent)
		significand, exponent := float2Parts(x, mantissa)
		if exponent == 0 {
			outString = significand
		} else {
			outString = significand + "e" + strconv.Itoa(exponent)
		}
	case "S": // scientific notation
		outString = fmt.Sprintf("%.*e", mantissa, x)
	case "D": // decimal notation
		outString = removeTrailingZeros(fmt.Sprintf("%.*f", places, x))
	case "U": // SI prefix appended to the significand (ex: 4.7k)
		significand, exponent := float2Parts(x, mantissa)
		if prefix, ok := siPrefix[exponent]; ok {
			outString = significand + prefix
		} else {
			outString = significand + "e" + strconv.Itoa(exponent)
		}
	default:
		outString = "format not recognized: " + formatType
	}
	return
}

// plainStr gives the shortest string that reads back as x, with ".0"
// on whole numbers so an answer always looks like a float.
func plainStr(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	}
	abs := math.Abs(x)
	if abs != 0 && (abs >= 1e16 || abs < 1e-5) {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	outString := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.Contains(outString, ".") {
		outString = outString + ".0"
	}
	return outString
}

// float2Parts splits a finite x into engineering form: a significand
// (ex: 2.354, 23.54 or 235.4) and an exponent that is a multiple of 3.
func float2Parts(x float64, mantissa int) (significand string, exponent int) {
	parts := strings.SplitN(fmt.Sprintf("%.*e", mantissa, x), "e", 2)
	signifFloat, _ := strconv.ParseFloat(parts[0], 64)
	exponent, _ = strconv.Atoi(parts[1])
	if exponent == -1 { // 0.1 reads better than 100m
		exponent = 0
		signifFloat = signifFloat / 10
	}
	for exponent%3 != 0 {
		exponent--
		signifFloat = 10 * signifFloat
	}
	significand = removeTrailingZeros(fmt.Sprintf("%f", signifFloat))
	return
}

// removes .00000 if at end of a string to make a number look better
func removeTrailingZeros(inString string) string {
	var reZeros = regexp.MustCompile(`(?m)\.?0+$`)
	if !strings.Contains(inString, ".") {
		return inString
	}
	return reZeros.ReplaceAllString(inString, "")
}

var siPrefix = map[int]string{
	-18: "a", -15: "f", -12: "p", -9: "n", -6: "u", -3: "m",
	0: "", 3: "k", 6: "M", 9: "G", 12: "T", 15: "P",
}
