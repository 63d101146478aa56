// Package nn provides a small multilayer perceptron trained with per-sample backpropagation.
//
// A network is a stack of fully-connected layers:
//   - One or more hidden layers of equal width (the first consumes the network input)
//   - One output layer consuming the last hidden layer's output
//
// Every node uses tanh as activation. Training is plain stochastic gradient
// ascent on error = target - output, one sample at a time, visiting the
// corpus in a freshly shuffled order every epoch.
//
// Length mismatches never fail: paired corpus slices are truncated to the
// shorter one and layers ignore input features beyond their fan-in.
//
// Example usage:
//
//	network := nn.NewNetwork(4, 1, 4, 1, nn.WithSeed(42))
//	network.SetTrainingData(inputs, targets)
//	network.Train(500, 0.1)
//
//	// Prediction
//	output := network.Predict([]float64{1, 0, 1, 1})
//
//	// Report every training row
//	network.Print(os.Stdout)
package nn
