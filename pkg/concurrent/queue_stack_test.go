package concurrent

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vireo-dev/vireo/pkg/collections"
)

func TestQueueContract(t *testing.T) {
	q := NewQueueOf([]int{1, 2})

	if v, err := q.Dequeue(); err != nil || v != 1 {
		t.Fatalf("Dequeue = %d, %v; want 1, nil", v, err)
	}
	if v, err := q.Peek(); err != nil || v != 2 {
		t.Fatalf("Peek = %d, %v; want 2, nil", v, err)
	}
	if _, err := NewQueue[int]().Dequeue(); !errors.Is(err, collections.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}

	q.EnqueueAll([]int{3, 4})
	if q.Len() != 3 {
		t.Errorf("expected Len 3, got %d", q.Len())
	}
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("expected empty queue, got %d", q.Len())
	}
}

func TestStackContract(t *testing.T) {
	s := NewStackOf([]int{1, 2})

	if v, err := s.Pop(); err != nil || v != 2 {
		t.Fatalf("Pop = %d, %v; want 2, nil", v, err)
	}
	if v, err := s.Peek(); err != nil || v != 1 {
		t.Fatalf("Peek = %d, %v; want 1, nil", v, err)
	}
	if _, err := NewStack[int]().Pop(); !errors.Is(err, collections.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}

	s.PushAll([]int{5, 6})
	if v, _ := s.Peek(); v != 6 {
		t.Errorf("expected 6 on top, got %d", v)
	}
}

func TestQueueConcurrentProducersConsumers(t *testing.T) {
	const (
		producers = 4
		perWorker = 250
	)
	q := NewQueue[int]()
	var produced, consumed atomic.Int64
	var wg sync.WaitGroup

	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				q.Enqueue(i)
				produced.Add(1)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for consumed.Load() < int64(producers*perWorker) {
			if _, err := q.Dequeue(); err == nil {
				consumed.Add(1)
			}
			for range q.All() {
				// Snapshot iteration while producers are running.
			}
		}
	}()
	wg.Wait()

	if q.Len() != 0 {
		t.Errorf("expected drained queue, Len = %d", q.Len())
	}
}

func TestStackConcurrentPushPop(t *testing.T) {
	s := NewStack[int]()
	var wg sync.WaitGroup

	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.Push(i)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				s.Pop()
				_ = s.Snapshot()
			}
		}()
	}
	wg.Wait()
}
