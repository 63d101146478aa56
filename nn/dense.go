package nn

import (
	"gonum.org/v1/gonum/floats"
)

// Layer is a fully-connected layer of tanh nodes.
// Weights[i][j] is the weight from input feature j to node i.
type Layer struct {
	Output  []float64   // Last computed activations [nodes]
	Error   []float64   // Error signal from the latest backward pass [nodes]
	Bias    []float64   // One bias per node [nodes]
	Weights [][]float64 // Incoming weights [nodes][fanIn]

	// Derivative selects the tanh derivative used by both backward forms
	Derivative DerivativeMode
}

// NewLayer creates a layer with the given node count and fan-in, drawing every
// bias and weight uniformly from [0, 1)
func NewLayer(numNodes, numWeights int, rng RandomSource) *Layer {
	l := &Layer{}
	l.Resize(numNodes, numWeights, rng)
	return l
}

// NumNodes returns the number of nodes in the layer
func (l *Layer) NumNodes() int {
	return len(l.Output)
}

// NumWeights returns the number of weights per node (fan-in)
func (l *Layer) NumWeights() int {
	if len(l.Weights) == 0 {
		return 0
	}
	return len(l.Weights[0])
}

// Clear empties every slice of the layer
func (l *Layer) Clear() {
	l.Output = l.Output[:0]
	l.Error = l.Error[:0]
	l.Bias = l.Bias[:0]
	l.Weights = l.Weights[:0]
}

// Resize reallocates the layer and draws fresh random parameters.
// Output and Error start at zero.
func (l *Layer) Resize(numNodes, numWeights int, rng RandomSource) {
	if numNodes < 0 {
		numNodes = 0
	}
	if numWeights < 0 {
		numWeights = 0
	}
	if rng == nil {
		rng = NewRandomSource(0)
	}

	l.Output = make([]float64, numNodes)
	l.Error = make([]float64, numNodes)
	l.Bias = make([]float64, numNodes)
	l.Weights = make([][]float64, numNodes)

	for i := 0; i < numNodes; i++ {
		l.Bias[i] = rng.Float64()

		l.Weights[i] = make([]float64, numWeights)
		for j := 0; j < numWeights; j++ {
			l.Weights[i][j] = rng.Float64()
		}
	}
}

// Forward computes Output[i] = tanh(Bias[i] + Weights[i]·input).
// Only the first min(fanIn, len(input)) features take part in the sum.
func (l *Layer) Forward(input []float64) {
	n := min(l.NumWeights(), len(input))

	for i := 0; i < l.NumNodes(); i++ {
		sum := l.Bias[i] + floats.Dot(l.Weights[i][:n], input[:n])
		l.Output[i] = activate(sum)
	}
}

// BackwardOutput computes the error of a terminal layer from the expected output.
// Nodes past len(target) keep the error from the previous pass.
func (l *Layer) BackwardOutput(target []float64) {
	n := min(l.NumNodes(), len(target))

	for i := 0; i < n; i++ {
		dev := target[i] - l.Output[i]
		l.Error[i] = dev * activateDerivative(l.Output[i], l.Derivative)
	}
}

// BackwardHidden computes the error of an interior layer from its successor.
// Only valid for hidden layers, see BackwardOutput for the output layer.
func (l *Layer) BackwardHidden(next *Layer) {
	for i := 0; i < l.NumNodes(); i++ {
		dev := 0.0

		for j := 0; j < next.NumNodes(); j++ {
			if i < len(next.Weights[j]) {
				dev += next.Error[j] * next.Weights[j][i]
			}
		}

		l.Error[i] = dev * activateDerivative(l.Output[i], l.Derivative)
	}
}

// Update applies one gradient step using the stored error and the input this layer
// consumed during the forward pass
func (l *Layer) Update(input []float64, learningRate float64) {
	n := min(l.NumWeights(), len(input))

	for i := 0; i < l.NumNodes(); i++ {
		step := l.Error[i] * learningRate
		l.Bias[i] += step
		floats.AddScaled(l.Weights[i][:n], step, input[:n])
	}
}
