// Package queue provides non-blocking, infallible, bounded FIFO queues
// that support bulk enqueueing and dequeueing, not just single-item
// Push/Pop.
//
// This package offers one implementation of the Queue interface:
//   - Fixed: a heap-allocated ring buffer of unchanging capacity
//
// Planned future implementations include an elastic queue that grows
// and shrinks its capacity under load.
//
// # Bulk transfer (IMPORTANT)
//
// The bulk methods are split into an expose step and a commit step so
// that callers can perform the actual copy themselves, with no
// intermediate buffer and no extra copy:
//
//	slots := q.WriteSlots() // contiguous free slots
//	n := copy(slots, src)   // caller writes directly
//	q.CommitWrite(n)        // queue advances its cursors
//
// ReadSlots/CommitRead are the symmetric dequeue-side pair. Because
// the free (or occupied) region may wrap around the physical end of
// the backing store, a single window may be shorter than Free() (or
// Len()); callers that want the whole region call expose+commit twice
// in a loop, or use PushAll/PopAll. This is the expected usage
// pattern, not a bug.
//
// An exposed window is a borrowed view into the queue's own storage.
// It is valid only until the next call on the same queue; holding a
// window across another operation is a contract violation.
package queue

// Queue is a bounded first-in-first-out queue.
//
// Implementations are non-blocking and infallible: no operation ever
// blocks or returns an error. Push reports fullness through its
// boolean result, Pop reports emptiness through its ok result, and
// the window methods return zero-length slices when nothing can be
// transferred. Callers needing backpressure poll Len/Free (or the
// returned window lengths) themselves.
//
// Implementations are single-owner: they provide no internal locking.
type Queue[T any] interface {
	// Len returns the number of items currently in the queue.
	Len() int

	// Cap returns the capacity of the queue.
	Cap() int

	// Free returns the number of unoccupied slots,
	// always Cap() - Len().
	Free() int

	// Push adds an item at the tail of the queue.
	// Returns false if the queue is full.
	Push(v T) bool

	// Pop removes and returns the item at the head of the queue.
	// Returns false if the queue is empty.
	Pop() (T, bool)

	// WriteSlots exposes the next contiguous run of free slots for
	// the caller to fill. Returns a zero-length slice if the queue is
	// full. To be used together with CommitWrite.
	WriteSlots() []T

	// CommitWrite records that n items were written into the first n
	// slots of the window most recently returned by WriteSlots. The
	// semantics are those of Push being called once per item.
	//
	// CommitWrite(0) is a no-op. Panics if n is negative or larger
	// than the most recently exposed window.
	CommitWrite(n int)

	// ReadSlots exposes the next contiguous run of queued items for
	// the caller to read. Returns a zero-length slice if the queue is
	// empty. To be used together with CommitRead.
	ReadSlots() []T

	// CommitRead records that the first n items of the window most
	// recently returned by ReadSlots were consumed. The semantics are
	// those of Pop being called n times.
	//
	// CommitRead(0) is a no-op. Panics if n is negative or larger
	// than the most recently exposed window.
	CommitRead(n int)
}

// BulkPush copies items from src into the queue's next writable
// window and commits them, returning how many items were enqueued.
//
// Returns 0 if the queue is full or src is empty. A single call
// transfers at most one contiguous window; use PushAll to keep going
// across a wrap of the backing store.
func BulkPush[T any](q Queue[T], src []T) int {
	n := copy(q.WriteSlots(), src)
	q.CommitWrite(n)
	return n
}

// BulkPop copies items from the queue's next readable window into dst
// and commits them, returning how many items were dequeued.
//
// Returns 0 if the queue is empty or dst is empty. A single call
// transfers at most one contiguous window; use PopAll to keep going
// across a wrap of the backing store.
func BulkPop[T any](q Queue[T], dst []T) int {
	n := copy(dst, q.ReadSlots())
	q.CommitRead(n)
	return n
}

// PushAll enqueues items from src until src is exhausted or the queue
// is full, returning how many items were enqueued. It loops BulkPush
// across window boundaries, so a wrap of the backing store does not
// stop the transfer.
func PushAll[T any](q Queue[T], src []T) int {
	total := 0
	for total < len(src) {
		n := BulkPush(q, src[total:])
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// PopAll dequeues items into dst until dst is full or the queue is
// empty, returning how many items were dequeued. It loops BulkPop
// across window boundaries, so a wrap of the backing store does not
// stop the transfer.
func PopAll[T any](q Queue[T], dst []T) int {
	total := 0
	for total < len(dst) {
		n := BulkPop(q, dst[total:])
		if n == 0 {
			break
		}
		total += n
	}
	return total
}
