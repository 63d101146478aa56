package nn

// Forward feeds input through every hidden layer and then the output layer.
// The result is left in OutputLayer().Output.
func (n *Network) Forward(input []float64) {
	n.stepCount++

	first := n.firstHiddenLayer()
	first.Forward(input)
	n.notify(eventForward, 0, first, input, first.Output)

	for i := 1; i < len(n.hiddenLayers); i++ {
		prev := n.hiddenLayers[i-1].Output
		n.hiddenLayers[i].Forward(prev)
		n.notify(eventForward, i, n.hiddenLayers[i], prev, n.hiddenLayers[i].Output)
	}

	last := n.lastHiddenLayer().Output
	n.outputLayer.Forward(last)
	n.notify(eventForward, len(n.hiddenLayers), n.outputLayer, last, n.outputLayer.Output)
}

// Predict runs a forward pass and returns a copy of the output layer's activations
func (n *Network) Predict(input []float64) []float64 {
	n.Forward(input)
	out := make([]float64, len(n.outputLayer.Output))
	copy(out, n.outputLayer.Output)
	return out
}
