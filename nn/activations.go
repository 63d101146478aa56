package nn

import (
	"math"
)

// DerivativeMode selects how the tanh derivative is evaluated during backpropagation
type DerivativeMode int

const (
	DerivativeLegacy     DerivativeMode = 0 // 1 - tanh(output)^2, tanh applied to the stored activation again
	DerivativeFromOutput DerivativeMode = 1 // 1 - output^2, exact derivative given the stored activation
)

// String returns the mode name used in logs and reports
func (m DerivativeMode) String() string {
	switch m {
	case DerivativeLegacy:
		return "legacy"
	case DerivativeFromOutput:
		return "from-output"
	default:
		return "unknown"
	}
}

// activate applies the tanh activation to a node's weighted sum
func activate(sum float64) float64 {
	return math.Tanh(sum)
}

// activateDerivative evaluates the tanh derivative for a node given its post-activation output.
// The legacy mode feeds the output through tanh a second time, which is what the
// reference training curves were produced with.
func activateDerivative(output float64, mode DerivativeMode) float64 {
	switch mode {
	case DerivativeFromOutput:
		return 1.0 - output*output
	default:
		t := math.Tanh(output)
		return 1.0 - t*t
	}
}
