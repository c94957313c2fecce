// Command analysis folds a long witness chain and charts how dense the
// accumulated slack term becomes over time.
package main

import (
	"flag"
	"fmt"
	"log"

	"qfold/analysis"
	"qfold/fp2"
	"qfold/modpoly"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

func main() {
	steps := flag.Int("steps", 200, "number of folding steps")
	seed := flag.String("seed", "qfold-analysis", "PRNG seed")
	html := flag.String("html", "slack_growth.html", "output chart path")
	flag.Parse()

	key := make([]byte, 32)
	h := sha3.NewShake256()
	h.Write([]byte("qfold/analysis/seed"))
	h.Write([]byte(*seed))
	h.Read(key)

	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		log.Fatalf("prng: %v", err)
	}

	var pairs [][2]fp2.Element
	for i := uint64(1); i <= 8; i++ {
		x, y := modpoly.DiagonalPair(fp2.FromUint64(i*7, i*13))
		pairs = append(pairs, [2]fp2.Element{x, y})
		x, y = modpoly.MirrorPair(fp2.FromUint64(i*11, i*17))
		pairs = append(pairs, [2]fp2.Element{x, y})
	}

	samples, _, err := analysis.Run(modpoly.Symmetric2(), pairs, *steps, prng)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	for _, checkpoint := range []int{1, 10, 100, len(samples)} {
		if checkpoint >= 1 && checkpoint <= len(samples) {
			s := samples[checkpoint-1]
			fmt.Printf("step %d: hamming weight %d\n", s.Step, s.HammingWeight)
		}
	}

	if err := analysis.RenderHTML(samples, "Accumulated slack growth", *html); err != nil {
		log.Fatalf("render: %v", err)
	}
	fmt.Printf("wrote %s\n", *html)
}
