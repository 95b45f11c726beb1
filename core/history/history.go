// Package history holds the bounded list of command names entered into the
// shell.
package history

import "iter"

// DefaultCapacity is the number of entries kept when no limit is configured.
const DefaultCapacity = 100

// Stack is a capacity-bounded FIFO of command names. Once full, recording a
// new name drops the oldest one.
type Stack struct {
	entries  []string
	capacity int
}

// New creates an empty Stack that holds at most capacity entries.
// Non-positive capacities fall back to DefaultCapacity.
func New(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Record appends a copy of name, evicting the oldest entry if the stack is
// at capacity.
func (s *Stack) Record(name string) {
	name = string([]byte(name))

	if len(s.entries) < s.capacity {
		s.entries = append(s.entries, name)
		return
	}

	copy(s.entries, s.entries[1:])
	s.entries[len(s.entries)-1] = name
}

// List yields the entries oldest first.
func (s *Stack) List() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, e := range s.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of recorded entries.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Cap returns the maximum number of entries.
func (s *Stack) Cap() int {
	return s.capacity
}
