package dictbreak

// BreakStack collects absolute break positions. Engines push positions in
// increasing order, so the top is the rightmost break found so far.
type BreakStack struct {
	positions []int
}

func NewBreakStack() *BreakStack {
	return &BreakStack{}
}

func (s *BreakStack) Push(pos int) {
	s.positions = append(s.positions, pos)
}

// Peek returns the top of the stack, or -1 if it is empty.
func (s *BreakStack) Peek() int {
	if len(s.positions) == 0 {
		return -1
	}
	return s.positions[len(s.positions)-1]
}

// Pop removes the top of the stack and returns it, or -1 if it is empty.
func (s *BreakStack) Pop() int {
	if len(s.positions) == 0 {
		return -1
	}
	p := s.positions[len(s.positions)-1]
	s.positions = s.positions[:len(s.positions)-1]
	return p
}

// PeekBottom returns the oldest position, or -1 if the stack is empty.
func (s *BreakStack) PeekBottom() int {
	if len(s.positions) == 0 {
		return -1
	}
	return s.positions[0]
}

// PopBottom removes the oldest position and returns it, or -1 if the stack
// is empty.
func (s *BreakStack) PopBottom() int {
	if len(s.positions) == 0 {
		return -1
	}
	p := s.positions[0]
	s.positions = s.positions[1:]
	return p
}

func (s *BreakStack) Contains(pos int) bool {
	for _, p := range s.positions {
		if p == pos {
			return true
		}
	}
	return false
}

func (s *BreakStack) Len() int {
	return len(s.positions)
}

// Positions returns the positions from bottom to top. The slice is shared
// with the stack.
func (s *BreakStack) Positions() []int {
	return s.positions
}

func (s *BreakStack) Reset() {
	s.positions = s.positions[:0]
}
