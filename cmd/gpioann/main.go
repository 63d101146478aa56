package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/openfluke/gpioann/gpio"
	"github.com/openfluke/gpioann/nn"
)

type config struct {
	Chip         string
	LED          int
	Buttons      []int
	Epochs       int
	LearningRate float64
	HiddenLayers int
	HiddenNodes  int
	Seed         uint64
	Legacy       bool
	Exact        bool
	Sim          bool
	PollMS       int
	Verbose      bool
	MetricsJSON  bool
	Trace        bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("gpioann: %v", err)
	}
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("gpioann", flag.ContinueOnError)

	cfg := &config{}
	defaults := nn.DefaultTrainingConfig()
	buttons := fs.String("buttons", "24,23,22,27", "Button line offsets, one per network input in order")
	fs.StringVar(&cfg.Chip, "chip", gpio.DefaultChip, "GPIO chip name")
	fs.IntVar(&cfg.LED, "led", 17, "LED line offset")
	fs.IntVar(&cfg.Epochs, "epochs", defaults.Epochs, "Training epochs")
	fs.Float64Var(&cfg.LearningRate, "lr", defaults.LearningRate, "Learning rate")
	fs.IntVar(&cfg.HiddenLayers, "hidden-layers", 1, "Number of hidden layers")
	fs.IntVar(&cfg.HiddenNodes, "hidden-nodes", 4, "Nodes per hidden layer")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = time based)")
	fs.BoolVar(&cfg.Legacy, "legacy", false, "Always build a single hidden layer, as older builds did")
	fs.BoolVar(&cfg.Exact, "exact-derivative", false, "Use 1 - output^2 as tanh derivative")
	fs.BoolVar(&cfg.Sim, "sim", false, "Drive in-memory lines through every pattern instead of real GPIO")
	fs.IntVar(&cfg.PollMS, "poll-ms", 10, "Delay between button polls in milliseconds")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print training progress")
	fs.BoolVar(&cfg.MetricsJSON, "metrics-json", false, "Print evaluation metrics as JSON")
	fs.BoolVar(&cfg.Trace, "trace", false, "Print per-layer statistics while reporting and simulating")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	pins, err := parsePins(*buttons)
	if err != nil {
		return nil, err
	}
	cfg.Buttons = pins

	if cfg.Epochs < 0 {
		return nil, fmt.Errorf("epochs must not be negative, got %d", cfg.Epochs)
	}
	if cfg.HiddenNodes < 1 {
		return nil, fmt.Errorf("hidden-nodes must be at least 1, got %d", cfg.HiddenNodes)
	}
	return cfg, nil
}

// parsePins parses a comma separated list of line offsets
func parsePins(s string) ([]int, error) {
	var pins []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		pin, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid line offset %q: %w", field, err)
		}
		if pin < 0 {
			return nil, fmt.Errorf("invalid line offset %d", pin)
		}
		pins = append(pins, pin)
	}
	if len(pins) == 0 {
		return nil, fmt.Errorf("no button lines given")
	}
	return pins, nil
}

func buildNetwork(cfg *config) *nn.Network {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	opts := []nn.Option{nn.WithSeed(seed)}
	if cfg.Legacy {
		opts = append(opts, nn.WithLegacyHiddenLayers())
	}
	if cfg.Exact {
		opts = append(opts, nn.WithDerivative(nn.DerivativeFromOutput))
	}

	network := nn.NewNetwork(len(cfg.Buttons), cfg.HiddenLayers, cfg.HiddenNodes, 1, opts...)
	network.SetTrainingData(buttonPatterns, ledStates)
	return network
}

func run(ctx context.Context, cfg *config, out io.Writer) error {
	network := buildNetwork(cfg)

	log.Printf("training %d epochs at lr=%g (%d hidden layer(s) x %d nodes)",
		cfg.Epochs, cfg.LearningRate, len(network.HiddenLayers()), cfg.HiddenNodes)
	result := network.TrainWithConfig(&nn.TrainingConfig{
		Epochs:          cfg.Epochs,
		LearningRate:    cfg.LearningRate,
		Verbose:         cfg.Verbose,
		PrintEveryEpoch: max(cfg.Epochs/10, 1),
	})
	log.Printf("training done in %v, final loss %.6f", result.TotalTime, result.FinalLoss)

	if cfg.Trace {
		network.SetObserver(&nn.ConsoleObserver{Out: out, Verbose: cfg.Verbose})
	}
	network.Print(out)

	metrics := network.EvaluateTraining()
	metrics.PrintSummary(out)
	if cfg.MetricsJSON {
		data, err := json.MarshalIndent(metrics, "", "  ")
		if err != nil {
			return fmt.Errorf("encode metrics: %w", err)
		}
		fmt.Fprintf(out, "%s\n", data)
	}

	if cfg.Sim {
		return simulate(network, cfg, out)
	}
	// Polling predicts every few milliseconds, too often to trace
	network.SetObserver(nil)

	led, err := gpio.Open(cfg.Chip, cfg.LED, gpio.DirectionOut, "led")
	if err != nil {
		return err
	}
	defer led.Close()

	buttons, err := gpio.OpenButtonBank(cfg.Chip, cfg.Buttons)
	if err != nil {
		return err
	}
	defer buttons.Close()

	return poll(ctx, network, buttons, led, cfg.PollMS)
}

// poll mirrors the buttons onto the LED until ctx is cancelled
func poll(ctx context.Context, network *nn.Network, buttons *gpio.ButtonBank, led gpio.Line, pollMS int) error {
	input := make([]float64, len(buttons.Lines))
	last := -1

	for {
		select {
		case <-ctx.Done():
			log.Printf("stopping: %v", ctx.Err())
			return nil
		default:
		}

		if err := buttons.Read(input); err != nil {
			return err
		}
		state := nn.RoundOutput(network.Predict(input)[0])
		if err := led.SetValue(state); err != nil {
			return err
		}
		if state != last {
			log.Printf("buttons %s -> led %d", nn.FormatValues(input, 0, 0.5), state)
			last = state
		}

		gpio.Delay(pollMS)
	}
}

// simulate drives in-memory buttons through every distinct pattern once
func simulate(network *nn.Network, cfg *config, out io.Writer) error {
	lines := make([]*gpio.MemoryLine, len(cfg.Buttons))
	bank := &gpio.ButtonBank{}
	for i := range lines {
		lines[i] = gpio.NewMemoryLine(0)
		bank.Lines = append(bank.Lines, lines[i])
	}
	led := gpio.NewMemoryLine(0)
	defer led.Close()
	defer bank.Close()

	input := make([]float64, len(lines))
	width := len(lines)
	for pattern := 0; pattern < 1<<width; pattern++ {
		for i, l := range lines {
			// Element 0 is the most significant bit
			bit := (pattern >> (width - 1 - i)) & 1
			if err := l.SetValue(bit); err != nil {
				return err
			}
		}

		if err := bank.Read(input); err != nil {
			return err
		}
		if err := led.SetValue(nn.RoundOutput(network.Predict(input)[0])); err != nil {
			return err
		}
		state, err := led.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "buttons %s -> led %d\n", nn.FormatValues(input, 0, 0.5), state)
	}
	return nil
}
