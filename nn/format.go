package nn

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// DefaultDecimals is the precision used by Print
	DefaultDecimals = 1
	// DefaultThreshold is the magnitude under which values are printed as 0
	DefaultThreshold = 0.001

	dividerLine = "-----------------------------------------------------------------"
)

// RoundNearZero returns 0 when -threshold < value < threshold, otherwise value
func RoundNearZero(value, threshold float64) float64 {
	if value > -threshold && value < threshold {
		return 0
	}
	return value
}

// FormatValues renders values as space separated fixed-point text with the given
// number of decimals. Values strictly inside (-threshold, threshold) render as "0".
func FormatValues(values []float64, decimals int, threshold float64) string {
	if decimals < 0 {
		decimals = 0
	}

	parts := make([]string, len(values))
	for i, v := range values {
		r := RoundNearZero(v, threshold)
		if r == 0 {
			parts[i] = "0"
			continue
		}
		parts[i] = strconv.FormatFloat(r, 'f', decimals, 64)
	}
	return strings.Join(parts, " ")
}

// writeValues writes one formatted line
func writeValues(w io.Writer, values []float64, decimals int, threshold float64) {
	fmt.Fprintf(w, "%s\n", FormatValues(values, decimals, threshold))
}

// Print writes the layer's size, state and parameters to w
func (l *Layer) Print(w io.Writer) {
	fmt.Fprintf(w, "%s\n", dividerLine)
	fmt.Fprintf(w, "Number of nodes: %d\n", l.NumNodes())
	fmt.Fprintf(w, "Number of weights per node: %d\n\n", l.NumWeights())

	fmt.Fprint(w, "Output: ")
	writeValues(w, l.Output, DefaultDecimals, DefaultThreshold)

	fmt.Fprint(w, "Error: ")
	writeValues(w, l.Error, DefaultDecimals, DefaultThreshold)

	fmt.Fprint(w, "Bias: ")
	writeValues(w, l.Bias, DefaultDecimals, DefaultThreshold)

	fmt.Fprint(w, "\nWeights:\n")
	for i := 0; i < l.NumNodes(); i++ {
		fmt.Fprintf(w, "Node %d: ", i+1)
		writeValues(w, l.Weights[i], DefaultDecimals, DefaultThreshold)
	}

	fmt.Fprintf(w, "%s\n\n", dividerLine)
}
