package nn

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestRoundOutput(t *testing.T) {
	cases := map[float64]int{0: 0, 0.49: 0, 0.5: 1, 0.97: 1, -0.3: 0}
	for in, want := range cases {
		if got := RoundOutput(in); got != want {
			t.Errorf("RoundOutput(%v) = %d, want %d", in, got, want)
		}
	}
}

func TestScoreRow(t *testing.T) {
	tests := []struct {
		name    string
		target  float64
		output  float64
		band    string
		correct bool
	}{
		{"close to one", 1, 0.95, "0-10%", true},
		{"zero target scales absolute miss", 0, 0.25, "20-30%", true},
		{"wrong sign", 1, -0.5, "100%+", false},
		{"rounds the wrong way", 0, 0.8, "50-100%", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := scoreRow(3, []float64{1, 0}, tt.target, tt.output)
			if r.Band != tt.band || r.Correct != tt.correct || r.Index != 3 {
				t.Errorf("Unexpected result %+v", r)
			}
		})
	}

	if dev := deviationPercent(1, math.NaN()); dev != 100 {
		t.Errorf("NaN output: expected 100, got %f", dev)
	}
}

func TestScoreRowCopiesInput(t *testing.T) {
	input := []float64{1, 0, 1, 1}
	r := scoreRow(0, input, 1, 1)
	input[0] = 0

	if r.Input[0] != 1 {
		t.Error("RowResult shares its input with the caller")
	}
}

func TestEvaluateCountsAndMisclassified(t *testing.T) {
	n := NewNetwork(2, 1, 2, 1, WithSeed(1))
	zeroNetwork(n)
	// A zeroed network answers 0 for every row, so targets of 1 are wrong
	inputs := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	targets := [][]float64{{0}, {1}, {1}, {0}}

	m := n.Evaluate(inputs, targets)
	if m.TotalSamples != 4 || m.Correct != 2 {
		t.Fatalf("Expected 2/4 correct, got %d/%d", m.Correct, m.TotalSamples)
	}
	if math.Abs(m.Accuracy-50) > 1e-9 {
		t.Errorf("Expected 50%% accuracy, got %f", m.Accuracy)
	}
	if m.Bands["0-10%"] != 2 || m.Bands["50-100%"] != 2 {
		t.Errorf("Unexpected bands %v", m.Bands)
	}

	wrong := m.Misclassified()
	if len(wrong) != 2 || wrong[0].Index != 1 || wrong[1].Index != 2 {
		t.Errorf("Expected rows 1 and 2 misclassified, got %+v", wrong)
	}
}

func TestNetworkEvaluateTruncates(t *testing.T) {
	n := NewNetwork(4, 1, 4, 1, WithSeed(1))
	m := n.Evaluate(fourBitInputs, fourBitParity[:5])

	if m.TotalSamples != 5 {
		t.Errorf("Expected 5 evaluated rows, got %d", m.TotalSamples)
	}
}

func TestEvaluateEmpty(t *testing.T) {
	n := NewNetwork(2, 1, 2, 1, WithSeed(1))
	m := n.EvaluateTraining()

	if m.TotalSamples != 0 || m.Accuracy != 0 || len(m.Misclassified()) != 0 {
		t.Errorf("Unexpected metrics for an empty corpus: %+v", m)
	}

	var buf bytes.Buffer
	m.PrintSummary(&buf)
	if !strings.Contains(buf.String(), "Total Samples: 0") {
		t.Errorf("Unexpected empty summary:\n%s", buf.String())
	}
}

func TestDeviationMetricsJSON(t *testing.T) {
	m := newDeviationMetrics()
	m.add(scoreRow(0, []float64{1}, 1, -0.5))
	m.finish()

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"100%+":1`) {
		t.Errorf("Missing failure band in %s", data)
	}
}

func TestPrintSummary(t *testing.T) {
	n := NewNetwork(2, 1, 2, 1, WithSeed(1))
	zeroNetwork(n)
	m := n.Evaluate([][]float64{{0, 0}, {1, 1}}, [][]float64{{0}, {1}})

	var buf bytes.Buffer
	m.PrintSummary(&buf)
	out := buf.String()
	if !strings.Contains(out, "Accuracy: 1/2 (50.0%)") {
		t.Errorf("Unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "row  1 [1 1] target 1 output 0.0000") {
		t.Errorf("Missing misclassified row:\n%s", out)
	}
}
