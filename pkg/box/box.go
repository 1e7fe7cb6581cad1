// Package box provides a single-slot observable cell.
//
// A Box notifies observers when its value is set. By default notification
// is equality-gated: setting an equal value emits nothing. Constructing
// with WithAlwaysNotify yields the force-refresh variant, which fires on
// every Set regardless of equality. Both behaviors share one type and
// differ only in that policy flag.
package box

import (
	"github.com/vireo-dev/vireo/internal/eq"
	"github.com/vireo-dev/vireo/pkg/change"
)

// Box is an observable value cell. The zero value is not usable; construct
// with New. A Box is not safe for concurrent use.
type Box[T any] struct {
	props change.Hub[change.Property]
	subs  change.Hub[ValueChange[T]]

	value        T
	name         string
	alwaysNotify bool
	equals       func(a, b T) bool
}

// ValueChange carries the previous and current value of a Box to observers.
type ValueChange[T any] struct {
	Old T
	New T
}

// BoxOption configures a Box at construction time.
type BoxOption func(*boxConfig)

type boxConfig struct {
	name         string
	alwaysNotify bool
}

// WithName sets the property name announced on the property channel.
// The default is "Value".
func WithName(name string) BoxOption {
	return func(c *boxConfig) {
		c.name = name
	}
}

// WithAlwaysNotify makes the box fire on every Set, even when the new
// value equals the current one.
func WithAlwaysNotify() BoxOption {
	return func(c *boxConfig) {
		c.alwaysNotify = true
	}
}

// New creates a Box holding initial.
func New[T any](initial T, opts ...BoxOption) *Box[T] {
	cfg := boxConfig{name: "Value"}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Box[T]{
		value:        initial,
		name:         cfg.name,
		alwaysNotify: cfg.alwaysNotify,
	}
}

// WithEquals configures the equality used to gate notifications. The
// default compares with == for comparable kinds and reflect.DeepEqual
// otherwise. It has no effect on a box constructed with WithAlwaysNotify.
func (b *Box[T]) WithEquals(fn func(a, b T) bool) *Box[T] {
	b.equals = fn
	return b
}

// Get returns the current value.
func (b *Box[T]) Get() T {
	return b.value
}

// Set stores value and notifies observers. Under the default policy an
// equal value emits nothing; under WithAlwaysNotify every Set notifies.
func (b *Box[T]) Set(value T) {
	old := b.value
	changed := b.alwaysNotify || !b.valueEquals(old, value)
	b.value = value
	if !changed {
		return
	}
	b.props.Notify(change.Named(b.name))
	b.subs.Notify(ValueChange[T]{Old: old, New: value})
}

// Update applies fn to the current value and stores the result, with the
// same notification policy as Set.
func (b *Box[T]) Update(fn func(T) T) {
	b.Set(fn(b.value))
}

// OnChange registers fn to observe value transitions.
func (b *Box[T]) OnChange(fn func(ValueChange[T])) *change.Subscription {
	return b.subs.Subscribe(fn)
}

// OnPropertyChanged registers fn on the property channel; it receives the
// box's named property on every notification.
func (b *Box[T]) OnPropertyChanged(fn func(change.Property)) *change.Subscription {
	return b.props.Subscribe(fn)
}

// Name returns the property name announced on the property channel.
func (b *Box[T]) Name() string {
	return b.name
}

func (b *Box[T]) valueEquals(a, c T) bool {
	if b.equals != nil {
		return b.equals(a, c)
	}
	return eq.Equal(a, c)
}
