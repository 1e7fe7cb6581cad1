package change

// Notifier bundles the two notification channels every notifying container
// exposes: a change channel carrying Change descriptors and a property
// channel carrying Property identifiers. Container implementations embed a
// Notifier and publish through it; the zero value is ready to use.
type Notifier[T any] struct {
	changes Hub[Change[T]]
	props   Hub[Property]
}

// OnCollectionChanged registers fn on the change channel.
func (n *Notifier[T]) OnCollectionChanged(fn func(Change[T])) *Subscription {
	return n.changes.Subscribe(fn)
}

// OnPropertyChanged registers fn on the property channel.
func (n *Notifier[T]) OnPropertyChanged(fn func(Property)) *Subscription {
	return n.props.Subscribe(fn)
}

// Publish delivers c on the change channel.
func (n *Notifier[T]) Publish(c Change[T]) {
	n.changes.Notify(c)
}

// PublishProperty delivers p on the property channel.
func (n *Notifier[T]) PublishProperty(p Property) {
	n.props.Notify(p)
}

// PublishMutation announces a completed mutation in the canonical order:
// Count (when the size changed), then Indexer, then the change event.
// Observers of the change event may therefore read the container's count
// and see it already updated.
func (n *Notifier[T]) PublishMutation(sizeChanged bool, c Change[T]) {
	if sizeChanged {
		n.props.Notify(Count)
	}
	n.props.Notify(Indexer)
	n.changes.Notify(c)
}
