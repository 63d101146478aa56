package nn

import (
	"math/rand/v2"
	"time"
)

// RandomSource supplies the randomness used for parameter initialization and
// shuffling. *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	Float64() float64 // uniform in [0, 1)
	IntN(n int) int   // uniform in [0, n)
}

// NewRandomSource returns a PCG-backed generator seeded with seed
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Network is a stack of equally wide hidden layers followed by an output layer,
// together with the training corpus it is fitted to
type Network struct {
	InputSize  int // Width of the network input
	HiddenSize int // Nodes per hidden layer
	OutputSize int // Nodes in the output layer

	hiddenLayers []*Layer
	outputLayer  *Layer

	// Training corpus, always of equal length
	inputs      [][]float64
	targets     [][]float64
	sampleOrder []int

	rng        RandomSource
	observer   LayerObserver
	derivative DerivativeMode
	legacy     bool
	stepCount  uint64
}

// Option configures a Network at construction
type Option func(*Network)

// WithRandomSource injects the generator used for initialization and shuffling
func WithRandomSource(rng RandomSource) Option {
	return func(n *Network) {
		if rng != nil {
			n.rng = rng
		}
	}
}

// WithSeed seeds a private PCG generator
func WithSeed(seed uint64) Option {
	return func(n *Network) {
		n.rng = NewRandomSource(seed)
	}
}

// WithObserver attaches an observer notified on every layer pass
func WithObserver(observer LayerObserver) Option {
	return func(n *Network) {
		n.observer = observer
	}
}

// WithDerivative selects the tanh derivative used during backpropagation
func WithDerivative(mode DerivativeMode) Option {
	return func(n *Network) {
		n.derivative = mode
	}
}

// WithLegacyHiddenLayers builds exactly one hidden layer whatever count is
// requested. Older builds never appended the extra hidden layers, and their
// training curves can only be reproduced with this topology.
func WithLegacyHiddenLayers() Option {
	return func(n *Network) {
		n.legacy = true
	}
}

// NewNetwork creates a network with numHiddenLayers hidden layers of numHiddenNodes
// nodes each. The first hidden layer consumes numInputs features, the output layer
// produces numOutputs values. Counts below 1 hidden layer are raised to 1.
func NewNetwork(numInputs, numHiddenLayers, numHiddenNodes, numOutputs int, opts ...Option) *Network {
	n := &Network{
		InputSize:  numInputs,
		HiddenSize: numHiddenNodes,
		OutputSize: numOutputs,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.rng == nil {
		n.rng = NewRandomSource(uint64(time.Now().UnixNano()))
	}

	if numHiddenLayers < 1 || n.legacy {
		numHiddenLayers = 1
	}

	n.hiddenLayers = append(n.hiddenLayers, n.newLayer(numHiddenNodes, numInputs))
	for i := 1; i < numHiddenLayers; i++ {
		n.hiddenLayers = append(n.hiddenLayers, n.newLayer(numHiddenNodes, numHiddenNodes))
	}
	n.outputLayer = n.newLayer(numOutputs, numHiddenNodes)

	return n
}

func (n *Network) newLayer(numNodes, numWeights int) *Layer {
	l := NewLayer(numNodes, numWeights, n.rng)
	l.Derivative = n.derivative
	return l
}

// HiddenLayers returns the hidden layers in forward order
func (n *Network) HiddenLayers() []*Layer {
	return n.hiddenLayers
}

// OutputLayer returns the terminal layer
func (n *Network) OutputLayer() *Layer {
	return n.outputLayer
}

// TotalLayers returns the number of hidden layers plus the output layer
func (n *Network) TotalLayers() int {
	return len(n.hiddenLayers) + 1
}

// Legacy reports whether the network was built with WithLegacyHiddenLayers
func (n *Network) Legacy() bool {
	return n.legacy
}

// Derivative returns the tanh derivative mode used by every layer
func (n *Network) Derivative() DerivativeMode {
	return n.derivative
}

// TrainingInputs returns the stored training inputs
func (n *Network) TrainingInputs() [][]float64 {
	return n.inputs
}

// TrainingTargets returns the stored training targets
func (n *Network) TrainingTargets() [][]float64 {
	return n.targets
}

// SampleOrder returns a copy of the current visiting order of the training rows
func (n *Network) SampleOrder() []int {
	return append([]int(nil), n.sampleOrder...)
}

// SetTrainingData stores the training corpus. When the slices differ in length both
// are truncated to the shorter one. The sample order is reset to the identity.
func (n *Network) SetTrainingData(inputs, targets [][]float64) {
	numSets := min(len(inputs), len(targets))

	n.inputs = append([][]float64(nil), inputs[:numSets]...)
	n.targets = append([][]float64(nil), targets[:numSets]...)

	n.sampleOrder = make([]int, numSets)
	for i := range n.sampleOrder {
		n.sampleOrder[i] = i
	}
}

// firstHiddenLayer and lastHiddenLayer rely on the at-least-one invariant
func (n *Network) firstHiddenLayer() *Layer {
	return n.hiddenLayers[0]
}

func (n *Network) lastHiddenLayer() *Layer {
	return n.hiddenLayers[len(n.hiddenLayers)-1]
}
