package stream

import (
	"encoding/json"

	"github.com/vireo-dev/vireo/pkg/change"
)

// Frame is the JSON wire representation of one change event, as delivered
// to WebSocket clients.
type Frame struct {
	// Container is the name the container was registered under.
	Container string `json:"container"`

	// Kind is the lowercase change kind ("add", "remove", ...).
	Kind string `json:"kind"`

	// Items carries added/removed/moved items, already JSON-encoded.
	Items []json.RawMessage `json:"items,omitempty"`

	// Old and New carry the replaced and replacing item for replaces.
	Old json.RawMessage `json:"old,omitempty"`
	New json.RawMessage `json:"new,omitempty"`

	// Index is the affected position, omitted when not meaningful.
	Index *int `json:"index,omitempty"`

	// OldIndex and NewIndex describe moves.
	OldIndex *int `json:"oldIndex,omitempty"`
	NewIndex *int `json:"newIndex,omitempty"`
}

// encodeFrame converts a change event to its wire form. Items that fail to
// marshal are dropped from the frame; the event itself is still delivered.
func encodeFrame[T any](container string, c change.Change[T]) Frame {
	f := Frame{Container: container, Kind: c.Kind.String()}

	for _, item := range c.Items {
		if data, err := json.Marshal(item); err == nil {
			f.Items = append(f.Items, data)
		}
	}
	if c.Kind == change.KindReplace {
		if data, err := json.Marshal(c.Old); err == nil {
			f.Old = data
		}
		if data, err := json.Marshal(c.New); err == nil {
			f.New = data
		}
	}
	if c.Index != change.NoIndex {
		idx := c.Index
		f.Index = &idx
	}
	if c.Kind == change.KindMove {
		oi, ni := c.OldIndex, c.NewIndex
		f.OldIndex = &oi
		f.NewIndex = &ni
	}
	return f
}
