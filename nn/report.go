package nn

import (
	"fmt"
	"io"
)

// Report predicts every sample and writes input and output vectors to w, one blank
// line between samples, bracketed by divider lines. An empty sample set writes nothing.
func (n *Network) Report(w io.Writer, samples [][]float64, decimals int, threshold float64) {
	if len(samples) == 0 {
		return
	}

	fmt.Fprintf(w, "%s\n", dividerLine)

	for i, input := range samples {
		fmt.Fprint(w, " Input: ")
		writeValues(w, input, decimals, threshold)

		fmt.Fprint(w, "Output: ")
		writeValues(w, n.Predict(input), decimals, threshold)

		if i < len(samples)-1 {
			fmt.Fprint(w, "\n")
		}
	}

	fmt.Fprintf(w, "%s\n\n", dividerLine)
}

// Print reports predictions for every stored training input with one decimal,
// printing values within ±0.001 as zero
func (n *Network) Print(w io.Writer) {
	n.Report(w, n.inputs, DefaultDecimals, DefaultThreshold)
}
