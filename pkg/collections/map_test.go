package collections

import (
	"errors"
	"testing"

	"github.com/vireo-dev/vireo/pkg/change"
)

func TestMapSetAddsThenReplaces(t *testing.T) {
	m := NewMap[string, int]()
	rec := newRecorder[KeyValue[string, int]]()
	m.OnCollectionChanged(rec.onChange)
	m.OnPropertyChanged(rec.onProperty)

	m.Set("a", 1)
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindAdd {
		t.Fatalf("expected Add for new key, got %v", rec.kinds())
	}
	if kv := rec.changes[0].Items[0]; kv.Key != "a" || kv.Value != 1 {
		t.Errorf("unexpected add payload: %+v", kv)
	}

	rec.reset()
	m.Set("a", 2)
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindReplace {
		t.Fatalf("expected Replace for existing key, got %v", rec.kinds())
	}
	c := rec.changes[0]
	if c.Old.Value != 1 || c.New.Value != 2 {
		t.Errorf("replace must carry previous value: %+v", c)
	}
	// Replace keeps size unchanged: only the indexer property fires.
	if len(rec.props) != 1 || rec.props[0] != change.Indexer {
		t.Errorf("expected only indexer property, got %v", rec.props)
	}
}

func TestMapAddDuplicateKey(t *testing.T) {
	m := NewMapOf(map[string]int{"a": 1})
	rec := newRecorder[KeyValue[string, int]]()
	m.OnCollectionChanged(rec.onChange)

	if err := m.Add("a", 2); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if len(rec.changes) != 0 {
		t.Errorf("failed Add must emit nothing, got %v", rec.kinds())
	}
	if v, _ := m.Get("a"); v != 1 {
		t.Errorf("failed Add must not mutate, got %d", v)
	}

	if err := m.Add("b", 2); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if m.Len() != 2 {
		t.Errorf("expected Len 2, got %d", m.Len())
	}
}

func TestMapRemove(t *testing.T) {
	m := NewMapOf(map[string]int{"a": 1})
	rec := newRecorder[KeyValue[string, int]]()
	m.OnCollectionChanged(rec.onChange)

	if m.Remove("missing") {
		t.Error("expected false removing absent key")
	}
	if len(rec.changes) != 0 {
		t.Errorf("absent removal must emit nothing, got %v", rec.kinds())
	}

	if !m.Remove("a") {
		t.Error("expected true removing present key")
	}
	c := rec.changes[0]
	if c.Kind != change.KindRemove || c.Items[0].Key != "a" || c.Items[0].Value != 1 {
		t.Errorf("unexpected remove event: %+v", c)
	}
}

func TestMapClear(t *testing.T) {
	m := NewMapOf(map[string]int{"a": 1, "b": 2})
	rec := newRecorder[KeyValue[string, int]]()
	m.OnCollectionChanged(rec.onChange)

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("expected empty map, got %d", m.Len())
	}
	if len(rec.changes) != 1 || rec.changes[0].Kind != change.KindReset {
		t.Errorf("expected one Reset, got %v", rec.kinds())
	}

	rec.reset()
	m.Clear()
	if len(rec.changes) != 0 {
		t.Errorf("clearing an empty map must emit nothing, got %v", rec.kinds())
	}
}

func TestMapAccessors(t *testing.T) {
	m := NewMapOf(map[string]int{"a": 1, "b": 2})

	if !m.ContainsKey("a") || m.ContainsKey("z") {
		t.Error("ContainsKey mismatch")
	}
	if len(m.Keys()) != 2 || len(m.Values()) != 2 || len(m.Snapshot()) != 2 {
		t.Error("accessor length mismatch")
	}

	total := 0
	for _, v := range m.All() {
		total += v
	}
	if total != 3 {
		t.Errorf("expected values to sum to 3, got %d", total)
	}
}
