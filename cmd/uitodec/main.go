package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/calebcase/romdec"
	"github.com/calebcase/romdec/decimal"
)

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func runWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("uitodec", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sweep := fs.Bool("sweep", false, "test every bit position instead of jumping to set bits")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [options] [value ...]\n\n", fs.Name())
		fmt.Fprintln(stderr, "Prints the decimal digits of each 32-bit value, one per line.")
		fmt.Fprintln(stderr, "With no arguments, values are read one per line from stdin.")
		fmt.Fprintln(stderr)
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	schema := romdec.Schema{
		Strategy: romdec.Jump,
	}
	if *sweep {
		schema.Strategy = romdec.Sweep
	}

	enc := romdec.NewEncoder(schema, stdout)

	if len(fs.Args()) == 0 {
		dec := romdec.NewDecoder(stdin)

		for {
			var v uint32

			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				return 0
			}
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				return 1
			}

			err = enc.Encode(v)
			if err != nil {
				fmt.Fprintf(stderr, "error: %v\n", err)
				return 1
			}
		}
	}

	for _, arg := range fs.Args() {
		var d decimal.Decimal

		err := d.UnmarshalText([]byte(arg))
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			fs.Usage()

			return 2
		}

		err = enc.Encode(d.Uint32())
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)

			return 1
		}
	}

	return 0
}
