package internal

// MinStackSize is the capacity a Stack allocates on its first Push.
const MinStackSize = 256

// Stack is a growable staging arena local to one parse call.
//
// Regions returned by Push and Pop alias the backing array and stay valid only
// until the next Push, so callers copy popped regions into their own storage.
type Stack[T any] struct {
	buf []T
	top int
}

// Push reserves n elements at the top and returns them for writing.
// Capacity grows by a factor of 1.5 starting at MinStackSize; growth happens
// before the region is handed out.
func (s *Stack[T]) Push(n int) []T {
	if n < 0 {
		panic("internal.Stack: negative push")
	}
	if need := s.top + n; need > len(s.buf) {
		size := len(s.buf)
		if size == 0 {
			size = MinStackSize
		}
		for size < need {
			size += size >> 1
		}
		grown := make([]T, size)
		copy(grown, s.buf[:s.top])
		s.buf = grown
	}
	region := s.buf[s.top : s.top+n]
	s.top += n
	return region
}

// PushOne appends a single element.
func (s *Stack[T]) PushOne(v T) {
	s.Push(1)[0] = v
}

// Pop removes the last n elements and returns them as one contiguous block.
func (s *Stack[T]) Pop(n int) []T {
	if n < 0 || n > s.top {
		panic("internal.Stack: pop beyond top")
	}
	s.top -= n
	return s.buf[s.top : s.top+n]
}

// Top returns the logical top, usable as a mark for Rewind.
func (s *Stack[T]) Top() int {
	return s.top
}

// Rewind drops everything above mark and clears the dropped slots so the
// arena does not keep staged references alive.
func (s *Stack[T]) Rewind(mark int) {
	if mark < 0 || mark > s.top {
		panic("internal.Stack: rewind beyond top")
	}
	clear(s.buf[mark:s.top])
	s.top = mark
}

// Cap returns the current capacity of the arena.
func (s *Stack[T]) Cap() int {
	return len(s.buf)
}

// Reset empties the stack and releases the arena if it grew past maxRetain.
func (s *Stack[T]) Reset(maxRetain int) {
	if len(s.buf) > maxRetain {
		s.buf = nil
	} else {
		clear(s.buf[:s.top])
	}
	s.top = 0
}
