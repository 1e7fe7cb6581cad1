package collections

import "errors"

// ErrIndexOutOfRange is returned when an index-based access or mutation
// targets a position outside the container's current bounds. It is always
// detected before any mutation, so a failed call never leaves partial state.
var ErrIndexOutOfRange = errors.New("collections: index out of range")

// ErrDuplicateKey is returned by Map.Add when the key is already present.
var ErrDuplicateKey = errors.New("collections: duplicate key")

// ErrEmpty is returned by Dequeue, Pop, and Peek on an empty Queue or Stack.
var ErrEmpty = errors.New("collections: container is empty")
