package workbench

type listenerSet[T any] struct {
	next    int
	entries []listenerEntry[T]
}

type listenerEntry[T any] struct {
	id int
	fn T
}

func (s *listenerSet[T]) add(fn T) func() {
	s.next++
	id := s.next
	s.entries = append(s.entries, listenerEntry[T]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *listenerSet[T]) remove(id int) {
	for i, e := range s.entries {
		if e.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

// snapshot lets listeners unsubscribe while being notified.
func (s *listenerSet[T]) snapshot() []T {
	out := make([]T, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.fn)
	}
	return out
}

func (s *listenerSet[T]) len() int {
	return len(s.entries)
}
