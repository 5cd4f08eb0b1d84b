// Package cliflag parses the coder flags shared by the furor binaries.
package cliflag

import (
	"flag"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/TylerBloom/furor"
)

const (
	SentinelExact = "exact"
	SentinelRun   = "run"
)

// CoderFlags are the flags describing how to build a coder.
type CoderFlags struct {
	Labeling string
	Probs    string
	Length   int
	Sentinel string
}

// Register defines the coder flags on fs.
func Register(fs *flag.FlagSet) *CoderFlags {
	cf := &CoderFlags{}
	fs.StringVar(&cf.Labeling, "labeling", "", "labeling given literally, e.g. aab; takes precedence over -probs")
	fs.StringVar(&cf.Probs, "probs", "", "comma separated symbol frequencies, e.g. a=0.5,b=0.25,c=0.25")
	fs.IntVar(&cf.Length, "length", 32, "labeling length when spreading -probs")
	fs.StringVar(&cf.Sentinel, "sentinel", SentinelExact, "initial state: exact (derived from the labeling) or run (length of the leading run, never loses symbols)")
	return cf
}

// Coder builds the coder described by the flags.
func (cf *CoderFlags) Coder() (*furor.Coder[rune], error) {
	labeling := []rune(cf.Labeling)
	if len(labeling) == 0 {
		freqs, err := ParseProbs(cf.Probs)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
		labeling, err = furor.Spread(freqs, cf.Length)
		if err != nil {
			return nil, errors.Wrap(err, "")
		}
	}

	opts, err := SentinelOptions(cf.Sentinel, labeling)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	coder, err := furor.New(labeling, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return coder, nil
}

// SentinelOptions returns the coder options selecting the initial state named by sentinel.
func SentinelOptions(sentinel string, labeling []rune) ([]furor.Option, error) {
	switch sentinel {
	case SentinelExact:
		return nil, nil
	case SentinelRun:
		if len(labeling) == 0 {
			return nil, nil
		}
		return []furor.Option{furor.WithInitialState(big.NewInt(int64(furor.LeadingRun(labeling))))}, nil
	}
	return nil, errors.Wrapf(furor.ErrConfiguration, "unknown sentinel %q", sentinel)
}

// ParseProbs parses a list such as "a=0.5,b=0.25,c=0.25".
// Symbols keep the order in which they are listed.
func ParseProbs(s string) ([]furor.Frequency[rune], error) {
	if strings.TrimSpace(s) == "" {
		return nil, errors.Wrap(furor.ErrConfiguration, "no symbol frequencies given")
	}

	var freqs []furor.Frequency[rune]
	for _, field := range strings.Split(s, ",") {
		sym, weight, ok := strings.Cut(field, "=")
		if !ok {
			return nil, errors.Wrapf(furor.ErrConfiguration, "missing '=' in %q", field)
		}
		if utf8.RuneCountInString(sym) != 1 {
			return nil, errors.Wrapf(furor.ErrConfiguration, "symbol %q is not a single character", sym)
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(weight), 64)
		if err != nil {
			return nil, errors.Wrapf(furor.ErrInvalidFrequency, "%q: %v", field, err)
		}
		r, _ := utf8.DecodeRuneInString(sym)
		freqs = append(freqs, furor.Frequency[rune]{Symbol: r, Weight: w})
	}
	return freqs, nil
}
