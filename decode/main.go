package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/TylerBloom/furor"
	"github.com/TylerBloom/furor/internal/cliflag"
)

var coderFlags = cliflag.Register(flag.CommandLine)

func main() {
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
	state, ok := new(big.Int).SetString(strings.TrimSpace(string(b)), 10)
	if !ok {
		return errors.Wrapf(furor.ErrInvalidState, "not a decimal integer: %q", b)
	}

	msg, err := furor.DecodeString(coder, state)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := fmt.Fprintln(w, msg); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
