package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/pkg/errors"

	"github.com/TylerBloom/furor"
	"github.com/TylerBloom/furor/internal/cliflag"
	"github.com/TylerBloom/furor/sample"
)

var (
	symbols  = flag.String("symbols", "abc", "alphabet to draw random probabilities for")
	length   = flag.Int("length", 32, "labeling length")
	n        = flag.Int("n", 40000, "number of symbols in the random message")
	seed     = flag.Int64("seed", 0, "random seed, 0 seeds from the clock")
	sentinel = flag.String("sentinel", cliflag.SentinelRun, "initial state: exact or run")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if err := run(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run() error {
	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(s))

	probs := sample.Probabilities(rng, []rune(*symbols))
	labeling, err := furor.SpreadMap(probs, *length)
	if err != nil {
		return errors.Wrap(err, "")
	}
	log.Printf("seed: %d", s)
	log.Printf("given probs: %s", formatProbs(sortedFreqs(probs)))
	log.Printf("generated labeling: %q", string(labeling))
	log.Printf("labeling probs: %s", formatProbs(furor.LabelingProbabilities(labeling)))

	opts, err := cliflag.SentinelOptions(*sentinel, labeling)
	if err != nil {
		return errors.Wrap(err, "")
	}
	coder, err := furor.New(labeling, opts...)
	if err != nil {
		return errors.Wrap(err, "")
	}
	log.Printf("coder: block size %d, initial state %s", coder.BlockSize(), coder.InitialState())

	sampler, err := sample.NewSampler(sortedFreqs(probs), rng)
	if err != nil {
		return errors.Wrap(err, "")
	}
	msg := sampler.Take(*n)
	info, err := furor.InformationContent(msg, probs)
	if err != nil {
		return errors.Wrap(err, "")
	}

	start := time.Now()
	state, err := coder.Encode(msg)
	if err != nil {
		return errors.Wrap(err, "")
	}
	log.Printf("information content: %f", info)
	log.Printf("code length: %d, encoded in %v", furor.CodeLength(state), time.Since(start))

	start = time.Now()
	decoded, err := coder.Decode(state)
	if err != nil {
		return errors.Wrap(err, "")
	}
	log.Printf("decoded in %v", time.Since(start))
	if len(decoded) != len(msg) {
		return errors.Errorf("mismatching lengths, expected %d, found %d", len(msg), len(decoded))
	}
	if !slices.Equal(decoded, msg) {
		return errors.Errorf("decoded message differs from the original")
	}
	return nil
}

func sortedFreqs(probs map[rune]float64) []furor.Frequency[rune] {
	freqs := make([]furor.Frequency[rune], 0, len(probs))
	for s, p := range probs {
		freqs = append(freqs, furor.Frequency[rune]{Symbol: s, Weight: p})
	}
	slices.SortFunc(freqs, func(a, b furor.Frequency[rune]) int { return int(a.Symbol - b.Symbol) })
	return freqs
}

func formatProbs(freqs []furor.Frequency[rune]) string {
	out := ""
	for i, f := range freqs {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%c:%.4f", f.Symbol, f.Weight)
	}
	return out
}
