package box

import (
	"testing"

	"github.com/vireo-dev/vireo/pkg/change"
)

func TestBoxEqualityGated(t *testing.T) {
	b := New(5)
	count := 0
	b.OnChange(func(ValueChange[int]) { count++ })

	b.Set(5)
	if count != 0 {
		t.Errorf("equal value must not notify, got %d", count)
	}

	b.Set(6)
	if count != 1 || b.Get() != 6 {
		t.Errorf("expected 1 notification and value 6, got %d / %d", count, b.Get())
	}
}

func TestBoxAlwaysNotify(t *testing.T) {
	b := New(5, WithAlwaysNotify())
	count := 0
	b.OnChange(func(ValueChange[int]) { count++ })

	b.Set(5)
	b.Set(5)
	if count != 2 {
		t.Errorf("always-notify box must fire on every Set, got %d", count)
	}
}

func TestBoxValueChangePayload(t *testing.T) {
	b := New("old")
	var got ValueChange[string]
	b.OnChange(func(vc ValueChange[string]) { got = vc })

	b.Set("new")
	if got.Old != "old" || got.New != "new" {
		t.Errorf("unexpected payload: %+v", got)
	}
}

func TestBoxPropertyChannel(t *testing.T) {
	b := New(0, WithName("Total"))
	var props []change.Property
	b.OnPropertyChanged(func(p change.Property) { props = append(props, p) })

	b.Set(1)
	if len(props) != 1 || props[0].Kind != change.PropertyNamed || props[0].Name != "Total" {
		t.Errorf("expected Named(Total), got %v", props)
	}
	if b.Name() != "Total" {
		t.Errorf("Name() = %q", b.Name())
	}

	// Default name.
	d := New(0)
	d.OnPropertyChanged(func(p change.Property) {
		if p.Name != "Value" {
			t.Errorf("default property name = %q, want Value", p.Name)
		}
	})
	d.Set(1)
}

func TestBoxUpdate(t *testing.T) {
	b := New(10)
	count := 0
	b.OnChange(func(ValueChange[int]) { count++ })

	b.Update(func(n int) int { return n * 2 })
	if b.Get() != 20 || count != 1 {
		t.Errorf("Update: value %d, notifications %d", b.Get(), count)
	}

	b.Update(func(n int) int { return n })
	if count != 1 {
		t.Errorf("identity Update must not notify, got %d", count)
	}
}

func TestBoxCustomEquals(t *testing.T) {
	type point struct{ X, Y int }
	b := New(point{1, 2}).WithEquals(func(a, b point) bool { return a.X == b.X })
	count := 0
	b.OnChange(func(ValueChange[point]) { count++ })

	// Same X: treated as equal even though Y differs.
	b.Set(point{1, 9})
	if count != 0 {
		t.Errorf("expected custom equality to gate, got %d", count)
	}
	b.Set(point{2, 9})
	if count != 1 {
		t.Errorf("expected notification on X change, got %d", count)
	}
}

func TestBoxSubscriptionCancel(t *testing.T) {
	b := New(0)
	count := 0
	sub := b.OnChange(func(ValueChange[int]) { count++ })

	b.Set(1)
	sub.Cancel()
	b.Set(2)

	if count != 1 {
		t.Errorf("expected 1 notification after cancel, got %d", count)
	}
}
