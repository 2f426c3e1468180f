package queue_test

import (
	"testing"

	queue "github.com/randomizedcoder/go-bulk-queue"
)

// These tests intentionally violate the queue contract to verify that
// misuse panics instead of silently corrupting the cursors.

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewFixed_ZeroCapacity_Panics(t *testing.T) {
	mustPanic(t, "NewFixed(0)", func() {
		queue.NewFixed[int](0)
	})
}

func TestNewFixed_NegativeCapacity_Panics(t *testing.T) {
	mustPanic(t, "NewFixed(-1)", func() {
		queue.NewFixed[int](-1)
	})
}

func TestFixed_CommitWrite_BeyondWindow_Panics(t *testing.T) {
	q := queue.NewFixed[int](4)
	q.Push(1)

	window := q.WriteSlots()
	mustPanic(t, "CommitWrite(len+1)", func() {
		q.CommitWrite(len(window) + 1)
	})
}

func TestFixed_CommitWrite_Negative_Panics(t *testing.T) {
	q := queue.NewFixed[int](4)
	mustPanic(t, "CommitWrite(-1)", func() {
		q.CommitWrite(-1)
	})
}

func TestFixed_CommitWrite_OnFullQueue_Panics(t *testing.T) {
	q := queue.NewFixed[int](2)
	q.Push(1)
	q.Push(2)

	// The exposed window is zero-length; committing anything is a bug.
	mustPanic(t, "CommitWrite on full queue", func() {
		q.CommitWrite(1)
	})
}

func TestFixed_CommitRead_BeyondWindow_Panics(t *testing.T) {
	q := queue.NewFixed[int](4)
	q.Push(1)
	q.Push(2)

	window := q.ReadSlots()
	mustPanic(t, "CommitRead(len+1)", func() {
		q.CommitRead(len(window) + 1)
	})
}

func TestFixed_CommitRead_Negative_Panics(t *testing.T) {
	q := queue.NewFixed[int](4)
	mustPanic(t, "CommitRead(-1)", func() {
		q.CommitRead(-1)
	})
}

func TestFixed_CommitRead_OnEmptyQueue_Panics(t *testing.T) {
	q := queue.NewFixed[int](2)
	mustPanic(t, "CommitRead on empty queue", func() {
		q.CommitRead(1)
	})
}

// Committing exactly the exposed window is legal, including after a
// wrap, and must not panic.
func TestFixed_CommitFullWindow_Legal(t *testing.T) {
	q := queue.NewFixed[int](4)

	window := q.WriteSlots()
	for i := range window {
		window[i] = i
	}
	q.CommitWrite(len(window))

	if q.Len() != 4 {
		t.Fatalf("expected Len() = 4, got %d", q.Len())
	}

	q.CommitRead(len(q.ReadSlots()))
	if q.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", q.Len())
	}
}
