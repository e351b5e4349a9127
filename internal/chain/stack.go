// Package chain implements the LIFO chain stack, the pending-response
// queue, the SEGOC sort hook, and the outer chain/trigger loop that drains
// both to quiescence (spec.md §4.3, §4.7). This is component E of
// spec.md §2.
package chain

import "github.com/chesedcore/Evesses/internal/model"

// Entry is a Requested-but-unresolved effect sitting on the chain stack
// (spec.md §3 invariant 4): the effect, its selected targets, and the
// context it was activated with.
type Entry struct {
	Effect  *model.Effect
	Targets model.Targets
	Ctx     model.Context
}

// Stack is the LIFO chain stack.
type Stack struct {
	entries []Entry
}

// NewStack returns an empty chain stack.
func NewStack() *Stack {
	return &Stack{}
}

// Push appends e to the top of the stack.
func (s *Stack) Push(e Entry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the topmost entry. ok is false on an empty
// stack.
func (s *Stack) Pop() (Entry, bool) {
	if len(s.entries) == 0 {
		return Entry{}, false
	}
	last := len(s.entries) - 1
	e := s.entries[last]
	s.entries = s.entries[:last]
	return e, true
}

// Empty reports whether the stack has no entries.
func (s *Stack) Empty() bool { return len(s.entries) == 0 }

// Len returns the number of entries currently on the stack.
func (s *Stack) Len() int { return len(s.entries) }
