package main

// buttonPatterns are the four-bit button states the classifier learns. The
// pattern 1000 appears twice with the same target and 0110 is absent.
var buttonPatterns = [][]float64{
	{0, 0, 0, 0}, {0, 0, 0, 1}, {0, 0, 1, 0}, {0, 0, 1, 1},
	{0, 1, 0, 0}, {0, 1, 0, 1}, {0, 1, 1, 1}, {1, 0, 0, 0},
	{1, 0, 0, 0}, {1, 0, 0, 1}, {1, 0, 1, 0}, {1, 0, 1, 1},
	{1, 1, 0, 0}, {1, 1, 0, 1}, {1, 1, 1, 0}, {1, 1, 1, 1},
}

// ledStates lights the LED for an odd number of pressed buttons
var ledStates = [][]float64{
	{0}, {1}, {1}, {0},
	{1}, {0}, {1}, {1},
	{1}, {0}, {0}, {1},
	{0}, {1}, {1}, {0},
}
