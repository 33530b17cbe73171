package entities

import (
	"errors"
	"insurance/internal/domain/validation"
	"sync"
)

var ErrCounterAtZero = errors.New("counter cannot go below zero")

// Counter is a non-negative counter safe for concurrent use.
type Counter struct {
	mu    sync.Mutex
	count int
}

func NewCounter(start int) (*Counter, error) {
	if start < 0 {
		return nil, validation.New("count", "gte=0", start)
	}
	return &Counter{count: start}, nil
}

func (c *Counter) Increment() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.count++
}

// Decrement fails with ErrCounterAtZero and leaves the count unchanged when
// it is already zero.
func (c *Counter) Decrement() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.count == 0 {
		return ErrCounterAtZero
	}
	c.count--
	return nil
}

func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.count
}
