package change

// PropertyKind identifies which derived property a Property refers to.
type PropertyKind int

const (
	// PropertyCount is the container's element count.
	PropertyCount PropertyKind = iota

	// PropertyIndexer is the container's positional or keyed accessor.
	PropertyIndexer

	// PropertyNamed is an arbitrary named property, used by value boxes.
	PropertyNamed
)

// Property identifies a derived property announced on a container's
// property channel. Count and Indexer are the two structural properties
// every container has; Named covers arbitrary properties of value boxes.
type Property struct {
	Kind PropertyKind

	// Name is set only when Kind is PropertyNamed.
	Name string
}

// Count is the Property announced when a container's element count changed.
var Count = Property{Kind: PropertyCount}

// Indexer is the Property announced when any element value changed.
var Indexer = Property{Kind: PropertyIndexer}

// Named returns a Property for an arbitrary named property.
func Named(name string) Property {
	return Property{Kind: PropertyNamed, Name: name}
}

// String returns a human-readable identifier for the property.
func (p Property) String() string {
	switch p.Kind {
	case PropertyCount:
		return "Count"
	case PropertyIndexer:
		return "Item[]"
	default:
		return p.Name
	}
}
