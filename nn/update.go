package nn

// ApplyGradients updates every layer from its stored error. The first hidden layer
// learns from the network input, every later layer from its predecessor's output.
func (n *Network) ApplyGradients(input []float64, learningRate float64) {
	n.firstHiddenLayer().Update(input, learningRate)

	for i := 1; i < len(n.hiddenLayers); i++ {
		n.hiddenLayers[i].Update(n.hiddenLayers[i-1].Output, learningRate)
	}

	n.outputLayer.Update(n.lastHiddenLayer().Output, learningRate)
}
