package puzzle

import (
	"fmt"
	"slices"
	"sync"
)

// Entry describes a registered day.
type Entry struct {
	Day   int
	Title string
	New   Factory
}

var (
	registryMu sync.RWMutex
	registry   = make(map[int]Entry)
)

// Register makes a solver available under the given day number.
// It panics if the day is out of range, the factory is nil, or the day is
// already registered; registration happens from init() so these are
// programming errors.
func Register(day int, title string, factory Factory) {
	if day < 1 || day > 25 {
		panic(fmt.Sprintf("puzzle: day %d out of range [1, 25]", day))
	}
	if factory == nil {
		panic(fmt.Sprintf("puzzle: nil factory for day %d", day))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	registry[day] = Entry{Day: day, Title: title, New: factory}
}

// Lookup returns the entry registered for day.
func Lookup(day int) (Entry, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[day]
	return e, ok
}

// Days returns all registered day numbers in ascending order.
func Days() []int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// unregister removes a day. Only used by tests.
func unregister(day int) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, day)
}
