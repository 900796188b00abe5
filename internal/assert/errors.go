package assert

import (
	"fmt"
	"strings"
)

// Collector gathers definition-time validation errors so a caller can report every
// problem in one pass instead of stopping at the first.
//
// A Collector is itself an error and unwraps to everything it gathered, so [errors.Is]
// and [errors.As] still classify the individual failures. Not concurrency safe.
type Collector struct {
	errs []error
}

// CollectErrors creates an empty Collector.
func CollectErrors() *Collector {
	return &Collector{}
}

// Add gathers err, ignoring nil.
func (c *Collector) Add(err error) *Collector {
	if err != nil {
		c.errs = append(c.errs, err)
	}
	return c
}

// AddString gathers an error built with [fmt.Errorf], so "%w" wrapping works.
func (c *Collector) AddString(format string, args ...any) *Collector {
	return c.Add(fmt.Errorf(format, args...))
}

// Result reports nil when nothing was gathered, else the Collector itself.
// Returning an empty Collector directly would be a non-nil error, so use this instead.
func (c *Collector) Result() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c
}

func (c *Collector) Error() string {
	msgs := make([]string, len(c.errs))
	for i, err := range c.errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (c *Collector) Unwrap() []error {
	return c.errs
}
