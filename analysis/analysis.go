// Package analysis measures how the accumulated slack term evolves while
// a chain of witnesses is folded, and renders the trace as an HTML chart.
// All randomness is threaded in by the caller as a keyed PRNG; nothing
// here keeps ambient state between runs.
package analysis

import (
	"fmt"
	"math/bits"
	"os"

	"qfold/folding"
	"qfold/fp2"
	"qfold/transcript"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// Sample records the slack density after one folding step.
type Sample struct {
	Step          int
	HammingWeight int
}

// HammingWeight counts the set bits across both components of e.
func HammingWeight(e fp2.Element) int {
	hw := 0
	for i := range e.C0 {
		hw += bits.OnesCount64(e.C0[i])
		hw += bits.OnesCount64(e.C1[i])
	}
	return hw
}

// Run folds `steps` witnesses drawn from `pairs` into a single
// accumulator, deriving every challenge from a Fiat–Shamir transcript,
// and returns the per-step slack trace together with the final witness.
// The PRNG only chooses which pair to fold next; the challenges are fully
// determined by the transcript.
func Run(o folding.Oracle, pairs [][2]fp2.Element, steps int, prng utils.PRNG) ([]Sample, folding.Witness, error) {
	if len(pairs) == 0 {
		return nil, folding.Witness{}, fmt.Errorf("analysis: no valid pairs to fold")
	}

	acc := folding.NewWitness(pairs[0][0], pairs[0][1])
	tr := transcript.New()
	tr.AbsorbWitness(acc)

	samples := make([]Sample, 0, steps)
	var idxBuf [8]byte
	for i := 1; i <= steps; i++ {
		if _, err := prng.Read(idxBuf[:]); err != nil {
			return nil, folding.Witness{}, fmt.Errorf("analysis: prng: %w", err)
		}
		var idx uint64
		for j := 0; j < 8; j++ {
			idx |= uint64(idxBuf[j]) << (8 * j)
		}
		p := pairs[idx%uint64(len(pairs))]
		next := folding.NewWitness(p[0], p[1])

		tr.AbsorbWitness(next)
		r := tr.Squeeze()
		if r.IsZero() {
			r = fp2.One()
		}

		acc = folding.Fold(o, acc, next, r)
		if !folding.Verify(o, acc) {
			return samples, acc, fmt.Errorf("analysis: step %d: folded witness failed verification", i)
		}
		samples = append(samples, Sample{Step: i, HammingWeight: HammingWeight(acc.U)})
	}
	return samples, acc, nil
}

// RenderHTML writes the trace as a go-echarts line chart.
func RenderHTML(samples []Sample, title, path string) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Hamming weight of the accumulated slack term per folding step",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "step"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "hamming weight"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)

	xs := make([]int, len(samples))
	items := make([]opts.LineData, len(samples))
	for i, s := range samples {
		xs[i] = s.Step
		items[i] = opts.LineData{Value: s.HammingWeight}
	}
	line.SetXAxis(xs).AddSeries("slack", items)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("analysis: create %s: %w", path, err)
	}
	defer f.Close()
	if err := line.Render(f); err != nil {
		return fmt.Errorf("analysis: render chart: %w", err)
	}
	return nil
}
