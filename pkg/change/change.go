package change

// Kind identifies which mutation a Change describes.
type Kind int

const (
	// KindAdd means one or more items were inserted.
	KindAdd Kind = iota

	// KindRemove means one or more items were removed.
	KindRemove

	// KindReplace means an existing item was overwritten in place.
	KindReplace

	// KindMove means an item was relocated to a different position.
	KindMove

	// KindReset means the contents changed wholesale and observers
	// should re-read everything.
	KindReset
)

var kindNames = [...]string{
	KindAdd:     "add",
	KindRemove:  "remove",
	KindReplace: "replace",
	KindMove:    "move",
	KindReset:   "reset",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// NoIndex is the Index value of a Change whose mutation has no meaningful
// position (map and set mutations, resets).
const NoIndex = -1

// Change describes one logical mutation of a container. It is immutable
// once published.
//
// Which fields are meaningful depends on Kind:
//
//	KindAdd      Items, Index (NoIndex for unpositioned containers)
//	KindRemove   Items, Index (NoIndex when removal was by value)
//	KindReplace  Old, New, Index
//	KindMove     Items[0], OldIndex, NewIndex
//	KindReset    none
type Change[T any] struct {
	Kind Kind

	// Items holds the added or removed items. For KindMove it holds the
	// single relocated item.
	Items []T

	// Old and New are the replaced and replacing items for KindReplace.
	Old T
	New T

	// Index is the position the mutation applied at, or NoIndex.
	Index int

	// OldIndex and NewIndex are the source and destination positions for
	// KindMove.
	OldIndex int
	NewIndex int
}

// NewAdd returns an Add change for items appended without a position.
func NewAdd[T any](items ...T) Change[T] {
	return Change[T]{Kind: KindAdd, Items: items, Index: NoIndex}
}

// NewAddAt returns an Add change for items inserted at index.
func NewAddAt[T any](index int, items ...T) Change[T] {
	return Change[T]{Kind: KindAdd, Items: items, Index: index}
}

// NewRemove returns a Remove change for items removed without a position.
func NewRemove[T any](items ...T) Change[T] {
	return Change[T]{Kind: KindRemove, Items: items, Index: NoIndex}
}

// NewRemoveAt returns a Remove change for an item removed at index.
func NewRemoveAt[T any](index int, item T) Change[T] {
	return Change[T]{Kind: KindRemove, Items: []T{item}, Index: index}
}

// NewReplace returns a Replace change recording the previous and current
// item at index.
func NewReplace[T any](index int, old, new T) Change[T] {
	return Change[T]{Kind: KindReplace, Old: old, New: new, Index: index}
}

// NewMove returns a Move change for item relocated from oldIndex to newIndex.
func NewMove[T any](item T, oldIndex, newIndex int) Change[T] {
	return Change[T]{
		Kind:     KindMove,
		Items:    []T{item},
		Index:    NoIndex,
		OldIndex: oldIndex,
		NewIndex: newIndex,
	}
}

// NewReset returns a payload-less Reset change.
func NewReset[T any]() Change[T] {
	return Change[T]{Kind: KindReset, Index: NoIndex}
}
