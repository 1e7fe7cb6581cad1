package collections

import "github.com/vireo-dev/vireo/pkg/change"

// recorder captures every notification a container emits, preserving the
// interleaving of property and change events for ordering assertions.
type recorder[T any] struct {
	changes []change.Change[T]
	props   []change.Property
	order   []string
}

func newRecorder[T any]() *recorder[T] {
	return &recorder[T]{}
}

func (r *recorder[T]) onChange(c change.Change[T]) {
	r.changes = append(r.changes, c)
	r.order = append(r.order, "change:"+c.Kind.String())
}

func (r *recorder[T]) onProperty(p change.Property) {
	r.props = append(r.props, p)
	r.order = append(r.order, "prop:"+p.String())
}

func (r *recorder[T]) reset() {
	r.changes = nil
	r.props = nil
	r.order = nil
}

func (r *recorder[T]) kinds() []change.Kind {
	out := make([]change.Kind, len(r.changes))
	for i, c := range r.changes {
		out[i] = c.Kind
	}
	return out
}
