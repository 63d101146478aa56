package nn

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// deviationBands are the upper bounds, in percent, of each reported band.
// Anything above the last bound lands in "100%+".
var deviationBands = []struct {
	label string
	upper float64
}{
	{"0-10%", 10},
	{"10-20%", 20},
	{"20-30%", 30},
	{"30-40%", 40},
	{"40-50%", 50},
	{"50-100%", 100},
	{"100%+", math.Inf(1)},
}

// RowResult is the network's answer for one corpus row
type RowResult struct {
	Index     int       `json:"index"`
	Input     []float64 `json:"input"`
	Target    float64   `json:"target"`
	Output    float64   `json:"output"`
	Deviation float64   `json:"deviation"` // percent, or absolute*100 for a zero target
	Band      string    `json:"band"`
	Correct   bool      `json:"correct"`
}

// DeviationMetrics summarizes how a network answers a corpus: how many rows
// round to the right LED state and how far the raw outputs sit from the targets.
type DeviationMetrics struct {
	Rows          []RowResult    `json:"rows"`
	Bands         map[string]int `json:"bands"`
	TotalSamples  int            `json:"total_samples"`
	Correct       int            `json:"correct"`
	Accuracy      float64        `json:"accuracy"` // percent of correct rows
	MeanDeviation float64        `json:"mean_deviation"`
}

// RoundOutput converts a network output into the binary value driven onto a pin
func RoundOutput(v float64) int {
	return int(v + 0.5)
}

// deviationPercent measures output against target as a percentage of the target.
// A zero target has no scale, so the absolute miss is scaled by 100 instead.
func deviationPercent(target, output float64) float64 {
	miss := math.Abs(output - target)
	if math.Abs(target) < 1e-10 {
		miss *= 100
	} else {
		miss = miss / math.Abs(target) * 100
	}
	if math.IsNaN(miss) || math.IsInf(miss, 0) {
		return 100
	}
	return miss
}

func bandFor(deviation float64) string {
	for _, b := range deviationBands {
		if deviation <= b.upper {
			return b.label
		}
	}
	return deviationBands[len(deviationBands)-1].label
}

// scoreRow grades a single output against its target
func scoreRow(index int, input []float64, target, output float64) RowResult {
	dev := deviationPercent(target, output)
	return RowResult{
		Index:     index,
		Input:     append([]float64(nil), input...),
		Target:    target,
		Output:    output,
		Deviation: dev,
		Band:      bandFor(dev),
		Correct:   float64(RoundOutput(output)) == target,
	}
}

func newDeviationMetrics() *DeviationMetrics {
	m := &DeviationMetrics{Bands: make(map[string]int, len(deviationBands))}
	for _, b := range deviationBands {
		m.Bands[b.label] = 0
	}
	return m
}

func (m *DeviationMetrics) add(row RowResult) {
	m.Rows = append(m.Rows, row)
	m.Bands[row.Band]++
	m.TotalSamples++
	if row.Correct {
		m.Correct++
	}
}

func (m *DeviationMetrics) finish() {
	if m.TotalSamples == 0 {
		return
	}
	total := 0.0
	for _, row := range m.Rows {
		total += row.Deviation
	}
	m.MeanDeviation = total / float64(m.TotalSamples)
	m.Accuracy = float64(m.Correct) / float64(m.TotalSamples) * 100
}

// Evaluate predicts every input and compares the first output value with the first
// target value. Rows beyond the shorter of the two slices are ignored.
func (n *Network) Evaluate(inputs, targets [][]float64) *DeviationMetrics {
	metrics := newDeviationMetrics()
	for i := 0; i < min(len(inputs), len(targets)); i++ {
		output := n.Predict(inputs[i])
		metrics.add(scoreRow(i, inputs[i], firstOrZero(targets[i]), firstOrZero(output)))
	}
	metrics.finish()
	return metrics
}

// EvaluateTraining evaluates the network on its stored training corpus
func (n *Network) EvaluateTraining() *DeviationMetrics {
	return n.Evaluate(n.inputs, n.targets)
}

func firstOrZero(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[0]
}

// Misclassified returns the rows whose rounded output is wrong, worst first
func (m *DeviationMetrics) Misclassified() []RowResult {
	var wrong []RowResult
	for _, row := range m.Rows {
		if !row.Correct {
			wrong = append(wrong, row)
		}
	}
	sort.SliceStable(wrong, func(i, j int) bool {
		return wrong[i].Deviation > wrong[j].Deviation
	})
	return wrong
}

// PrintSummary writes accuracy, the deviation bands and every misclassified row
func (m *DeviationMetrics) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, "\n=== Model Evaluation Summary ===\n")
	fmt.Fprintf(w, "Total Samples: %d\n", m.TotalSamples)
	if m.TotalSamples == 0 {
		fmt.Fprintln(w)
		return
	}
	fmt.Fprintf(w, "Accuracy: %d/%d (%.1f%%)\n", m.Correct, m.TotalSamples, m.Accuracy)
	fmt.Fprintf(w, "Mean Deviation: %.2f%%\n", m.MeanDeviation)

	fmt.Fprintf(w, "\nDeviation Distribution:\n")
	for _, b := range deviationBands {
		count := m.Bands[b.label]
		share := float64(count) / float64(m.TotalSamples) * 100
		fmt.Fprintf(w, "  %8s: %4d rows (%.1f%%) %s\n", b.label, count, share, strings.Repeat("█", int(share/2)))
	}

	if wrong := m.Misclassified(); len(wrong) > 0 {
		fmt.Fprintf(w, "\nMisclassified:\n")
		for _, row := range wrong {
			fmt.Fprintf(w, "  row %2d [%s] target %g output %.4f\n",
				row.Index, FormatValues(row.Input, 0, 0.5), row.Target, row.Output)
		}
	}
	fmt.Fprintln(w)
}
