package gpio

import "sync"

// MemoryLine is an in-process line used for simulation and tests
type MemoryLine struct {
	mu     sync.Mutex
	value  int
	writes int
	closed bool
}

// NewMemoryLine returns an open line holding initial
func NewMemoryLine(initial int) *MemoryLine {
	return &MemoryLine{value: initial}
}

func (m *MemoryLine) Value() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, ErrClosed
	}
	return m.value, nil
}

// SetValue stores value, any non-zero value reads back as 1
func (m *MemoryLine) SetValue(value int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	if value != 0 {
		value = 1
	}
	m.value = value
	m.writes++
	return nil
}

// Writes returns how many times SetValue succeeded
func (m *MemoryLine) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *MemoryLine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
