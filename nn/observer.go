package nn

import (
	"fmt"
	"io"
	"os"
)

const (
	eventForward  = "forward"
	eventBackward = "backward"
)

// LayerStats summarizes one layer's activations (forward) or errors (backward)
type LayerStats struct {
	AvgActivation float64 `json:"avg"`
	MaxActivation float64 `json:"max"`
	MinActivation float64 `json:"min"`
	ActiveNeurons int     `json:"active"` // Values above the activity threshold
	TotalNeurons  int     `json:"total"`
	LayerType     string  `json:"layer_type"` // "hidden" or "output"
}

// LayerEvent is delivered to a LayerObserver after every layer pass
type LayerEvent struct {
	Type      string     `json:"type"` // "forward" or "backward"
	LayerIdx  int        `json:"layer_idx"`
	Stats     LayerStats `json:"stats"`
	Input     []float64  `json:"input,omitempty"`
	Output    []float64  `json:"output,omitempty"`
	StepCount uint64     `json:"step"`
}

// LayerObserver receives layer events while the network runs
type LayerObserver interface {
	OnForward(event LayerEvent)
	OnBackward(event LayerEvent)
}

// computeLayerStats calculates summary statistics for an activation slice
func computeLayerStats(data []float64, layerType string, threshold float64) LayerStats {
	if len(data) == 0 {
		return LayerStats{LayerType: layerType}
	}

	activeCount := 0
	for _, v := range data {
		if v > threshold {
			activeCount++
		}
	}

	return LayerStats{
		AvgActivation: Mean(data),
		MaxActivation: Max(data),
		MinActivation: Min(data),
		ActiveNeurons: activeCount,
		TotalNeurons:  len(data),
		LayerType:     layerType,
	}
}

// notify sends an event to the network's observer if one exists
func (n *Network) notify(eventType string, layerIdx int, layer *Layer, input, output []float64) {
	if n.observer == nil {
		return
	}

	layerType := "hidden"
	if layer == n.outputLayer {
		layerType = "output"
	}

	event := LayerEvent{
		Type:      eventType,
		LayerIdx:  layerIdx,
		Stats:     computeLayerStats(output, layerType, 0.0),
		Input:     input,
		Output:    output,
		StepCount: n.stepCount,
	}

	if eventType == eventForward {
		n.observer.OnForward(event)
	} else {
		n.observer.OnBackward(event)
	}
}

// SetObserver attaches obs to the network, replacing any earlier observer.
// A nil obs stops notifications.
func (n *Network) SetObserver(obs LayerObserver) {
	n.observer = obs
}

// ConsoleObserver prints layer events to Out (stdout when nil)
type ConsoleObserver struct {
	Out     io.Writer
	Verbose bool // If true, print the layer's values too
}

func (o *ConsoleObserver) writer() io.Writer {
	if o.Out == nil {
		return os.Stdout
	}
	return o.Out
}

func (o *ConsoleObserver) OnForward(event LayerEvent) {
	w := o.writer()
	fmt.Fprintf(w, "[FWD] Layer %d (%s): avg=%.4f max=%.4f active=%d/%d\n",
		event.LayerIdx, event.Stats.LayerType,
		event.Stats.AvgActivation, event.Stats.MaxActivation,
		event.Stats.ActiveNeurons, event.Stats.TotalNeurons)

	if o.Verbose && len(event.Output) <= 20 {
		fmt.Fprintf(w, "       Output: %s\n", FormatValues(event.Output, 4, 0))
	}
}

func (o *ConsoleObserver) OnBackward(event LayerEvent) {
	fmt.Fprintf(o.writer(), "[BWD] Layer %d (%s): err_avg=%.4f err_max=%.4f\n",
		event.LayerIdx, event.Stats.LayerType,
		event.Stats.AvgActivation, event.Stats.MaxActivation)
}
