package gpio

import (
	"errors"
	"fmt"
)

// ButtonBank reads a group of input lines into a network input vector.
// Lines[i] fills element i.
type ButtonBank struct {
	Lines []Line
}

// OpenButtonBank requests every offset on chip as an input
func OpenButtonBank(chip string, offsets []int) (*ButtonBank, error) {
	bank := &ButtonBank{}
	for i, offset := range offsets {
		l, err := Open(chip, offset, DirectionIn, fmt.Sprintf("button%d", i+1))
		if err != nil {
			bank.Close()
			return nil, err
		}
		bank.Lines = append(bank.Lines, l)
	}
	return bank, nil
}

// Read stores 1 for every line that reads high and 0 otherwise. Only
// min(len(Lines), len(dst)) elements are written.
func (b *ButtonBank) Read(dst []float64) error {
	for i := 0; i < min(len(b.Lines), len(dst)); i++ {
		v, err := b.Lines[i].Value()
		if err != nil {
			return fmt.Errorf("button %d: %w", i+1, err)
		}
		if v != 0 {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
	return nil
}

// Close releases every line in the bank
func (b *ButtonBank) Close() error {
	var errs []error
	for _, l := range b.Lines {
		if err := l.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
