// Package change defines the change-notification vocabulary shared by all
// notifying containers in vireo.
//
// A mutating container operation produces a Change describing exactly what
// happened (Add, Remove, Replace, Move, or Reset) and delivers it
// synchronously to every subscriber of the container's change channel.
// Alongside the change channel, containers expose a property channel that
// announces which derived property (Count, the indexer, or a named property)
// may have changed.
//
// # Subscribing
//
//	list := collections.NewList[string]()
//	sub := list.OnCollectionChanged(func(c change.Change[string]) {
//	    fmt.Println(c.Kind, c.Items)
//	})
//	defer sub.Cancel()
//
// Delivery is synchronous and fire-and-forget: handlers run inline on the
// mutating goroutine, in mutation order, and cannot veto the mutation.
package change
