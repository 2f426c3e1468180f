package queue

import (
	"fmt"
	"strings"
)

// Fixed is a queue holding up to a fixed number of items. The
// capacity is chosen at construction and never changes; the backing
// store is a single heap allocation made by NewFixed.
//
// WARNING: Fixed is a single-owner data structure. It performs no
// locking and is NOT safe for concurrent use. If a producer and a
// consumer run on separate goroutines, the surrounding code must
// provide the handoff protocol; Fixed supplies only the data
// movement.
//
// Contract violations (over-committing a window, non-positive
// capacity) panic. This catches bugs early instead of silently
// corrupting the cursors.
type Fixed[T any] struct {
	buf    []T
	read   int // physical index of the head item
	length int // number of occupied slots
}

var _ Queue[int] = (*Fixed[int])(nil)

// NewFixed creates a Fixed queue with the given capacity.
//
// Panics if capacity is not positive: a zero-capacity queue would be
// full and empty at the same time, so construction rejects it
// outright.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity <= 0 {
		panic("queue: NewFixed requires a positive capacity")
	}
	return &Fixed[T]{buf: make([]T, capacity)}
}

// writeTo returns the physical index of the next slot to write.
func (f *Fixed[T]) writeTo() int {
	w := f.read + f.length
	if w >= len(f.buf) {
		w -= len(f.buf)
	}
	return w
}

// contiguous reports whether the occupied region ends before the
// physical end of the backing store.
func (f *Fixed[T]) contiguous() bool {
	return f.read+f.length < len(f.buf)
}

// readableRun returns the length of the first contiguous run of
// occupied slots starting at the read cursor.
func (f *Fixed[T]) readableRun() int {
	if f.contiguous() {
		return f.length
	}
	return len(f.buf) - f.read
}

// writableRun returns the length of the first contiguous run of free
// slots starting at the write cursor.
func (f *Fixed[T]) writableRun() int {
	if f.length == len(f.buf) {
		return 0
	}
	if f.contiguous() {
		return len(f.buf) - f.writeTo()
	}
	return f.read - f.writeTo()
}

// Len returns the number of items currently in the queue.
func (f *Fixed[T]) Len() int {
	return f.length
}

// Cap returns the capacity the queue was created with.
//
// The number of free slots at any time is Cap() - Len().
func (f *Fixed[T]) Cap() int {
	return len(f.buf)
}

// Free returns the number of unoccupied slots.
func (f *Fixed[T]) Free() int {
	return len(f.buf) - f.length
}

// Push adds an item at the tail of the queue.
// Returns false if the queue is full.
func (f *Fixed[T]) Push(v T) bool {
	if f.length == len(f.buf) {
		return false
	}
	f.buf[f.writeTo()] = v
	f.length++
	return true
}

// Pop removes and returns the item at the head of the queue.
// Returns false if the queue is empty.
func (f *Fixed[T]) Pop() (T, bool) {
	if f.length == 0 {
		var zero T
		return zero, false
	}
	v := f.buf[f.read]
	f.read++
	if f.read == len(f.buf) {
		f.read = 0
	}
	f.length--
	return v, true
}

// WriteSlots exposes the next contiguous run of free slots for the
// caller to fill, to be followed by CommitWrite.
//
// The window is capped at the physical end of the backing store, so
// it may be shorter than Free(). Returns a zero-length slice if the
// queue is full.
func (f *Fixed[T]) WriteSlots() []T {
	w := f.writeTo()
	return f.buf[w : w+f.writableRun()]
}

// CommitWrite records that n items were written into the first n
// slots of the window most recently returned by WriteSlots.
//
// CommitWrite(0) is a no-op. Panics if n is negative or exceeds the
// exposed window.
func (f *Fixed[T]) CommitWrite(n int) {
	if n < 0 || n > f.writableRun() {
		panic("queue: CommitWrite beyond the exposed window")
	}
	f.length += n
}

// ReadSlots exposes the next contiguous run of queued items, to be
// followed by CommitRead.
//
// The window is capped at the physical end of the backing store, so
// it may be shorter than Len(). Returns a zero-length slice if the
// queue is empty.
func (f *Fixed[T]) ReadSlots() []T {
	return f.buf[f.read : f.read+f.readableRun()]
}

// CommitRead records that the first n items of the window most
// recently returned by ReadSlots were consumed.
//
// CommitRead(0) is a no-op. Panics if n is negative or exceeds the
// exposed window.
func (f *Fixed[T]) CommitRead(n int) {
	if n < 0 || n > f.readableRun() {
		panic("queue: CommitRead beyond the exposed window")
	}
	f.read += n
	if f.read >= len(f.buf) {
		f.read -= len(f.buf)
	}
	f.length -= n
}

// String renders the capacity, length, and queued items in FIFO
// order, e.g. "Fixed{cap: 4, len: 3, items: [7 21 196]}".
func (f *Fixed[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Fixed{cap: %d, len: %d, items: [", len(f.buf), f.length)
	for i := 0; i < f.length; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		idx := f.read + i
		if idx >= len(f.buf) {
			idx -= len(f.buf)
		}
		fmt.Fprintf(&sb, "%v", f.buf[idx])
	}
	sb.WriteString("]}")
	return sb.String()
}
