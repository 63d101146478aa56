package gpio

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
)

// DefaultChip is the first GPIO chip on a Raspberry Pi
const DefaultChip = "gpiochip0"

// cdevLine is a line requested through the Linux GPIO character device
type cdevLine struct {
	line *gpiocdev.Line
}

// Open requests line offset on chip as input or output. Outputs start low.
// consumer is the label shown by gpioinfo.
func Open(chip string, offset int, dir Direction, consumer string) (Line, error) {
	if chip == "" {
		chip = DefaultChip
	}

	opts := []gpiocdev.LineReqOption{gpiocdev.WithConsumer(consumer)}
	switch dir {
	case DirectionOut:
		opts = append(opts, gpiocdev.AsOutput(0))
	default:
		opts = append(opts, gpiocdev.AsInput)
	}

	l, err := gpiocdev.RequestLine(chip, offset, opts...)
	if err != nil {
		return nil, fmt.Errorf("request %s line %d as %s: %w", chip, offset, dir, err)
	}
	return &cdevLine{line: l}, nil
}

func (c *cdevLine) Value() (int, error) {
	v, err := c.line.Value()
	if err != nil {
		return 0, fmt.Errorf("read line %d: %w", c.line.Offset(), err)
	}
	return v, nil
}

func (c *cdevLine) SetValue(value int) error {
	if err := c.line.SetValue(value); err != nil {
		return fmt.Errorf("write line %d: %w", c.line.Offset(), err)
	}
	return nil
}

func (c *cdevLine) Close() error {
	return c.line.Close()
}
