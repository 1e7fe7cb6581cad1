package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vireo-dev/vireo/pkg/collections"
)

func TestObserveCountsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(WithRegistry(reg), WithNamespace("test"))

	l := collections.NewList[int]()
	sub := Observe[int](c, "orders", l)
	defer sub.Cancel()

	l.Append(1)
	l.Append(2)
	l.Set(0, 3)
	l.Clear()

	if got := testutil.ToFloat64(c.changesTotal.WithLabelValues("orders", "add")); got != 2 {
		t.Errorf("add counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.changesTotal.WithLabelValues("orders", "replace")); got != 1 {
		t.Errorf("replace counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.changesTotal.WithLabelValues("orders", "reset")); got != 1 {
		t.Errorf("reset counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.size.WithLabelValues("orders")); got != 0 {
		t.Errorf("size gauge = %v, want 0", got)
	}
}

func TestObserveTracksSize(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(WithRegistry(reg))

	l := collections.NewListOf([]string{"a", "b"})
	sub := Observe[string](c, "tags", l)
	defer sub.Cancel()

	if got := testutil.ToFloat64(c.size.WithLabelValues("tags")); got != 2 {
		t.Errorf("initial size = %v, want 2", got)
	}

	l.Append("c")
	if got := testutil.ToFloat64(c.size.WithLabelValues("tags")); got != 3 {
		t.Errorf("size after append = %v, want 3", got)
	}
}

func TestObserveCancelStops(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(WithRegistry(reg))

	l := collections.NewList[int]()
	sub := Observe[int](c, "jobs", l)

	l.Append(1)
	sub.Cancel()
	l.Append(2)

	if got := testutil.ToFloat64(c.changesTotal.WithLabelValues("jobs", "add")); got != 1 {
		t.Errorf("add counter = %v, want 1 after cancel", got)
	}
}
