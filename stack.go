package traverse

// Stack is the ordered set of in-progress polylines. It behaves as a LIFO
// with one exception: Rotate moves the top element to the bottom instead of
// off the stack. Only the top polyline may be appended to or popped from.
type Stack struct {
	polys []*Polyline
}

// NewStack creates an empty polyline stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of polylines on the stack.
func (s *Stack) Len() int {
	return len(s.polys)
}

// Push puts a polyline on top of the stack.
func (s *Stack) Push(pl *Polyline) {
	s.polys = append(s.polys, pl)
	tracer().Debugf("stack push, depth now %d", len(s.polys))
}

// Pop removes and returns the top polyline. The stack must not be empty.
func (s *Stack) Pop() *Polyline {
	last := len(s.polys) - 1
	pl := s.polys[last]
	s.polys = s.polys[:last]
	tracer().Debugf("stack pop, depth now %d", len(s.polys))
	return pl
}

// Top returns the top polyline without removing it. The stack must not be
// empty.
func (s *Stack) Top() *Polyline {
	return s.polys[len(s.polys)-1]
}

// Rotate moves the top polyline to the bottom of the stack, making the
// second-from-top polyline the active one.
func (s *Stack) Rotate() {
	last := len(s.polys) - 1
	pl := s.polys[last]
	copy(s.polys[1:], s.polys[:last])
	s.polys[0] = pl
	tracer().Debugf("stack rotate, depth %d", len(s.polys))
}

// All returns the polylines in stack order, bottom to top. The returned
// slice is owned by the stack and must not be mutated.
func (s *Stack) All() []*Polyline {
	return s.polys
}
