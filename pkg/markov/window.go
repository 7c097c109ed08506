package markov

import "strconv"

// window is a fixed-capacity sliding buffer. It always holds exactly its
// construction length of elements; push evicts the oldest.
type window[T any] struct {
	buf []T
}

// newWindow returns a window of the given length with every slot set to fill.
func newWindow[T any](length int, fill T) window[T] {
	buf := make([]T, length)
	for i := range buf {
		buf[i] = fill
	}
	return window[T]{buf: buf}
}

// push appends v to the end of the window, dropping the oldest element.
func (w *window[T]) push(v T) {
	copy(w.buf, w.buf[1:])
	w.buf[len(w.buf)-1] = v
}

// last returns a view of the n most recent elements, oldest first.
func (w *window[T]) last(n int) []T {
	return w.buf[len(w.buf)-n:]
}

// tail returns the most recent element.
func (w *window[T]) tail() T {
	return w.buf[len(w.buf)-1]
}

// appendKey renders interned token ids into buf as a transition table key,
// space-joined decimals, and returns the extended buffer.
func appendKey(buf []byte, ids []int) []byte {
	for i, id := range ids {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}
	return buf
}
