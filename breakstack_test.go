package dictbreak

import "testing"

func TestBreakStack(t *testing.T) {
	s := NewBreakStack()
	if got := s.Peek(); got != -1 {
		t.Errorf("got %v, expected %v", got, -1)
	}
	if got := s.Pop(); got != -1 {
		t.Errorf("got %v, expected %v", got, -1)
	}
	for _, p := range []int{2, 5, 9} {
		s.Push(p)
	}
	if got, expected := s.Len(), 3; got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if got, expected := s.Peek(), 9; got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if got, expected := s.PeekBottom(), 2; got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if !s.Contains(5) || s.Contains(4) {
		t.Errorf("unexpected containment: %v", s.Positions())
	}
	if got, expected := s.Pop(), 9; got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if got, expected := s.PopBottom(), 2; got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
	if got, expected := s.Positions(), []int{5}; len(got) != 1 || got[0] != expected[0] {
		t.Errorf("got %v, expected %v", got, expected)
	}
	s.Reset()
	if got := s.PopBottom(); got != -1 {
		t.Errorf("got %v, expected %v", got, -1)
	}
}
