package nn

import (
	"fmt"
	"math"
	"time"
)

// TrainingConfig holds configuration for training
type TrainingConfig struct {
	Epochs          int
	LearningRate    float64
	Verbose         bool
	PrintEveryEpoch int // Print progress every N epochs (0 = only print the summary)
}

// TrainingResult contains training statistics
type TrainingResult struct {
	FinalLoss     float64
	BestLoss      float64
	TotalTime     time.Duration
	AvgThroughput float64   // samples per second
	LossHistory   []float64 // mean squared error per epoch
}

// DefaultTrainingConfig returns the settings the LED classifier ships with
func DefaultTrainingConfig() *TrainingConfig {
	return &TrainingConfig{
		Epochs:          80000,
		LearningRate:    0.03,
		Verbose:         false,
		PrintEveryEpoch: 0,
	}
}

// Train runs numEpochs epochs of per-sample gradient steps over the stored corpus,
// reshuffling the visiting order before every epoch
func (n *Network) Train(numEpochs int, learningRate float64) {
	for epoch := 0; epoch < numEpochs; epoch++ {
		n.shuffle()
		n.trainEpoch(learningRate)
	}
}

// TrainWithConfig trains like Train and records per-epoch loss and timing
func (n *Network) TrainWithConfig(config *TrainingConfig) *TrainingResult {
	if config == nil {
		config = DefaultTrainingConfig()
	}

	result := &TrainingResult{
		BestLoss:    math.MaxFloat64,
		LossHistory: make([]float64, 0, max(config.Epochs, 0)),
	}

	if config.Verbose {
		fmt.Printf("\n=== Training Configuration ===\n")
		fmt.Printf("Epochs: %d\n", config.Epochs)
		fmt.Printf("Learning Rate: %.6f\n", config.LearningRate)
		fmt.Printf("Samples per Epoch: %d\n", len(n.sampleOrder))
		fmt.Printf("Hidden Layers: %d x %d nodes\n", len(n.HiddenLayers()), n.HiddenSize)
		if n.Legacy() {
			fmt.Printf("Legacy topology: single hidden layer\n")
		}
		fmt.Printf("Derivative: %s\n", n.Derivative())
		fmt.Println()
	}

	startTime := time.Now()
	samplesProcessed := 0

	for epoch := 0; epoch < config.Epochs; epoch++ {
		n.shuffle()
		avgLoss := n.trainEpoch(config.LearningRate)
		samplesProcessed += len(n.sampleOrder)

		result.LossHistory = append(result.LossHistory, avgLoss)
		if avgLoss < result.BestLoss {
			result.BestLoss = avgLoss
		}

		if config.Verbose && config.PrintEveryEpoch > 0 && (epoch+1)%config.PrintEveryEpoch == 0 {
			fmt.Printf("  Epoch %d/%d - Loss: %.6f\n", epoch+1, config.Epochs, avgLoss)
		}
	}

	result.TotalTime = time.Since(startTime)
	if len(result.LossHistory) > 0 {
		result.FinalLoss = result.LossHistory[len(result.LossHistory)-1]
	} else {
		result.BestLoss = 0
	}
	if secs := result.TotalTime.Seconds(); secs > 0 {
		result.AvgThroughput = float64(samplesProcessed) / secs
	}

	if config.Verbose {
		fmt.Printf("\n✓ Training complete in %v\n", result.TotalTime)
		fmt.Printf("  Final Loss: %.6f | Best Loss: %.6f | %.0f samples/sec\n",
			result.FinalLoss, result.BestLoss, result.AvgThroughput)
	}

	return result
}

// trainEpoch visits every sample in the current order once and returns the mean
// squared error measured before each sample's update
func (n *Network) trainEpoch(learningRate float64) float64 {
	if len(n.sampleOrder) == 0 {
		return 0
	}

	totalLoss := 0.0
	for _, index := range n.sampleOrder {
		input := n.inputs[index]
		target := n.targets[index]

		n.Forward(input)
		totalLoss += meanSquaredError(n.outputLayer.Output, target)
		n.Backward(target)
		n.ApplyGradients(input, learningRate)
	}
	return totalLoss / float64(len(n.sampleOrder))
}

// shuffle swaps every position with a uniformly drawn one. The result is always a
// permutation, though not every permutation is equally likely.
func (n *Network) shuffle() {
	size := len(n.sampleOrder)
	if size == 0 {
		return
	}
	for i := 0; i < size; i++ {
		r := n.rng.IntN(size)
		n.sampleOrder[i], n.sampleOrder[r] = n.sampleOrder[r], n.sampleOrder[i]
	}
}
