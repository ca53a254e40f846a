package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
	"golang.org/x/xerrors"
)

// input file name is an optional command line arg (no flag) (path/infile.calc)
// without it expressions are read from stdin one per line until "exit" or "q"
// answers are written to stdout after "<<< ", warnings go to stderr

// version is set at build time via -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("rpncalc: ")

	opts, showVersion, err := commandFlags(os.Args[1:], os.Stderr)
	if xerrors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}
	if showVersion {
		fmt.Println("rpncalc: ", version)
		return
	}

	c := &calculator{opts: opts, out: os.Stdout, errOut: os.Stderr}
	if opts.inFile != "" {
		inFileStr, err := fileReadString(opts.inFile)
		if err != nil {
			log.Fatal(err)
		}
		c.batch(inFileStr)
		return
	}
	if err := c.repl(os.Stdin, term.IsTerminal(int(os.Stdin.Fd()))); err != nil {
		log.Fatal(err)
	}
}
