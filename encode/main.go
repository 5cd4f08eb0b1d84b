package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/TylerBloom/furor"
	"github.com/TylerBloom/furor/internal/cliflag"
)

var coderFlags = cliflag.Register(flag.CommandLine)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] < message\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(os.Stdout, os.Stdin); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(w io.Writer, r io.Reader) error {
	coder, err := coderFlags.Coder()
	if err != nil {
		return errors.Wrap(err, "")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "")
	}
	msg := strings.TrimSuffix(string(b), "\n")

	state, err := furor.EncodeString(coder, msg)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := fmt.Fprintln(w, state.String()); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
