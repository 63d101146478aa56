package nn

// Backward computes the error of every layer in reverse order: the output layer
// against target, then each hidden layer from its successor
func (n *Network) Backward(target []float64) {
	n.outputLayer.BackwardOutput(target)
	n.notify(eventBackward, len(n.hiddenLayers), n.outputLayer, target, n.outputLayer.Error)

	last := len(n.hiddenLayers) - 1
	n.hiddenLayers[last].BackwardHidden(n.outputLayer)
	n.notify(eventBackward, last, n.hiddenLayers[last], n.outputLayer.Error, n.hiddenLayers[last].Error)

	for i := last; i > 0; i-- {
		n.hiddenLayers[i-1].BackwardHidden(n.hiddenLayers[i])
		n.notify(eventBackward, i-1, n.hiddenLayers[i-1], n.hiddenLayers[i].Error, n.hiddenLayers[i-1].Error)
	}
}
