package main

import (
	"flag"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/xerrors"
)

// runOptions is everything the driver needs from the command line.
type runOptions struct {
	inFile    string // batch file; empty means read stdin
	formatStr string // see value2Str
	showRpn   bool   // dump postfix tokens before each answer
	warn      bool   // print syntaxWarning output to stderr
}

// get flag info and argument
// NOTE: arg MUST occur AFTER flags when calling program
// rpncalc -rpn -format=D4 infilename.calc
func commandFlags(args []string, stderr io.Writer) (opts runOptions, showVersion bool, err error) {
	fs := flag.NewFlagSet("rpncalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.showRpn, "rpn", false, "Print the postfix (RPN) tokens of each expression")
	fs.StringVar(&opts.formatStr, "format", "", "Answer format: D<n> decimal, S<n> scientific, E<n> engineering, U<n> SI prefix\nLeave empty for the shortest exact form")
	fs.BoolVar(&opts.warn, "warn", false, "Print warnings about unmatched brackets and unknown words")
	fs.BoolVar(&showVersion, "version", false, "Print out version")

	if err = fs.Parse(args); err != nil {
		return
	}
	if fs.NArg() > 1 {
		err = xerrors.Errorf("only one input file can be given, got %d", fs.NArg())
		return
	}
	opts.inFile = fs.Arg(0)
	if logOut := checkFormat(opts.formatStr); logOut != "" {
		err = xerrors.New(logOut)
	}
	return
}

func checkFormat(formatStr string) string {
	if formatStr == "" {
		return ""
	}
	formatType, _, logOut := parseFormat(formatStr)
	if logOut != "" {
		return logOut
	}
	switch formatType {
	case "D", "S", "E", "U":
	default:
		logOut = "format should start with D, S, E or U"
	}
	return logOut
}

func parseFormat(formatStr string) (string, string, string) {
	var formatType, sigDigits, logOut string
	var result []string
	var re0 = regexp.MustCompile(`(?m)^(?P<res1>\w)(?P<res2>\d)$`)
	if re0.MatchString(formatStr) {
		result = re0.FindStringSubmatch(formatStr)
		formatType = result[1]
		sigDigits = result[2]
	} else {
		logOut = "format: " + formatStr + " is not a valid format"
	}
	return formatType, sigDigits, logOut
}

func fileReadString(fileNameandPath string) (string, error) {
	inbytes, err := os.ReadFile(fileNameandPath)
	if err != nil {
		return "", xerrors.Errorf("cannot read input file: %w", err)
	}
	fileString, _ := convertIfUtf16(string(inbytes))
	return fileString, nil
}

// Checks if file is utf16 encoded and if so, it converts it to utf8
func convertIfUtf16(inString string) (string, bool) {
	var inBytes []byte
	var codeUtf16 bool
	var endian unicode.Endianness = unicode.LittleEndian
	inBytes = []byte(inString)
	switch {
	case len(inBytes) > 1 && inBytes[0] == 0xFF && inBytes[1] == 0xFE:
		codeUtf16 = true
	case len(inBytes) > 1 && inBytes[0] == 0xFE && inBytes[1] == 0xFF:
		codeUtf16 = true
		endian = unicode.BigEndian
	case len(inBytes) > 7:
		if inBytes[1] == 0 && inBytes[3] == 0 && inBytes[5] == 0 && inBytes[7] == 0 { // VERY likely utf16 encoded so need to change to utf8
			codeUtf16 = true
		}
	}
	if codeUtf16 {
		decoder := unicode.UTF16(endian, unicode.UseBOM).NewDecoder()
		inString, _ = decoder.String(inString)
	}
	return inString, codeUtf16
}

// symbols people paste from documents that mean an ASCII operator
var operatorLookalikes = strings.NewReplacer(
	"−", "-", // minus sign
	"×", "*", // multiplication sign
	"÷", "/", // division sign
	"∙", "*", // bullet operator
	"√", "sqrt", // square root
)

// normalizeInput folds full width digits and operators (１＋２) to
// ASCII so they evaluate like the ordinary ones.
func normalizeInput(inString string) string {
	return operatorLookalikes.Replace(norm.NFKC.String(inString))
}
