package change

import (
	"sync"
	"testing"
)

func TestHubNotifyDeliversInOrder(t *testing.T) {
	var hub Hub[int]
	var got []int

	hub.Subscribe(func(n int) { got = append(got, n) })
	hub.Subscribe(func(n int) { got = append(got, n*10) })

	hub.Notify(1)
	hub.Notify(2)

	want := []int{1, 10, 2, 20}
	if len(got) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestHubCancelStopsDelivery(t *testing.T) {
	var hub Hub[string]
	count := 0

	sub := hub.Subscribe(func(string) { count++ })
	hub.Notify("a")
	sub.Cancel()
	hub.Notify("b")

	if count != 1 {
		t.Errorf("expected 1 delivery after cancel, got %d", count)
	}
	if hub.Len() != 0 {
		t.Errorf("expected 0 active subscriptions, got %d", hub.Len())
	}
}

func TestHubCancelIdempotent(t *testing.T) {
	var hub Hub[int]
	sub := hub.Subscribe(func(int) {})
	other := hub.Subscribe(func(int) {})

	sub.Cancel()
	sub.Cancel()
	sub.Cancel()

	if hub.Len() != 1 {
		t.Errorf("expected 1 remaining subscription, got %d", hub.Len())
	}
	other.Cancel()
}

func TestHubNilHandler(t *testing.T) {
	var hub Hub[int]
	sub := hub.Subscribe(nil)
	if hub.Len() != 0 {
		t.Errorf("nil handler should not subscribe, got %d", hub.Len())
	}
	sub.Cancel() // must not panic
	hub.Notify(1)
}

func TestHubCancelFromWithinHandler(t *testing.T) {
	var hub Hub[int]
	count := 0
	var sub *Subscription
	sub = hub.Subscribe(func(int) {
		count++
		sub.Cancel()
	})

	hub.Notify(1)
	hub.Notify(2)

	if count != 1 {
		t.Errorf("expected handler to run once, got %d", count)
	}
}

func TestHubConcurrentSubscribeNotify(t *testing.T) {
	var hub Hub[int]
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Subscribe(func(int) {}).Cancel()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hub.Notify(j)
			}
		}()
	}
	wg.Wait()
}

func TestChangeConstructors(t *testing.T) {
	add := NewAddAt(3, "x", "y")
	if add.Kind != KindAdd || add.Index != 3 || len(add.Items) != 2 {
		t.Errorf("unexpected add change: %+v", add)
	}

	rem := NewRemoveAt(0, "x")
	if rem.Kind != KindRemove || rem.Index != 0 || rem.Items[0] != "x" {
		t.Errorf("unexpected remove change: %+v", rem)
	}

	rep := NewReplace(1, "old", "new")
	if rep.Kind != KindReplace || rep.Old != "old" || rep.New != "new" || rep.Index != 1 {
		t.Errorf("unexpected replace change: %+v", rep)
	}

	mov := NewMove("m", 2, 5)
	if mov.Kind != KindMove || mov.OldIndex != 2 || mov.NewIndex != 5 || mov.Items[0] != "m" {
		t.Errorf("unexpected move change: %+v", mov)
	}

	rst := NewReset[string]()
	if rst.Kind != KindReset || rst.Index != NoIndex || len(rst.Items) != 0 {
		t.Errorf("unexpected reset change: %+v", rst)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindAdd:     "add",
		KindRemove:  "remove",
		KindReplace: "replace",
		KindMove:    "move",
		KindReset:   "reset",
		Kind(99):    "unknown",
	}
	for k, want := range cases {
		if k.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, k.String(), want)
		}
	}
}

func TestPropertyString(t *testing.T) {
	if Count.String() != "Count" {
		t.Errorf("Count.String() = %q", Count.String())
	}
	if Indexer.String() != "Item[]" {
		t.Errorf("Indexer.String() = %q", Indexer.String())
	}
	if Named("Value").String() != "Value" {
		t.Errorf("Named(\"Value\").String() = %q", Named("Value").String())
	}
}
